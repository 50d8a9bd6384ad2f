package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// Queue consumer
	MessagesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "automation_messages_total",
			Help: "Total number of queue messages settled by the consumer",
		},
		[]string{"result"}, // "ack", "nack", "dropped"
	)

	ProcessDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "automation_process_duration_seconds",
			Help:    "Duration of processing one comment event",
			Buckets: prometheus.DefBuckets,
		},
	)

	// Per-automation outcomes
	OutcomesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "automation_outcomes_total",
			Help: "Total number of automation evaluations by DM and reply outcome",
		},
		[]string{"dm", "reply"},
	)

	// Graph API
	GraphAPIRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "instagram_graph_requests_total",
			Help: "Total number of Instagram Graph API requests",
		},
		[]string{"endpoint", "status"},
	)

	GraphAPIDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "instagram_graph_request_duration_seconds",
			Help:    "Duration of Instagram Graph API requests",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	ProfileCacheHits = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "profile_cache_hits_total",
			Help: "Total number of commenter profile cache hits",
		},
	)

	ProfileCacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "profile_cache_misses_total",
			Help: "Total number of commenter profile cache misses",
		},
	)

	// Circuit breaker
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=half-open, 2=open)",
		},
		[]string{"name"},
	)

	CircuitBreakerRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_requests_total",
			Help: "Total number of requests through the circuit breaker",
		},
		[]string{"name", "result"}, // "success", "failure", "rejected"
	)

	CircuitBreakerTransitions = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_transitions_total",
			Help: "Total number of circuit breaker state transitions",
		},
		[]string{"name", "from", "to"},
	)
)

// ObserveGraphRequest records one Graph API call.
func ObserveGraphRequest(endpoint, status string, start time.Time) {
	GraphAPIRequests.WithLabelValues(endpoint, status).Inc()
	GraphAPIDuration.WithLabelValues(endpoint).Observe(time.Since(start).Seconds())
}
