package instagram

import (
	"context"
	"errors"
	"time"

	"automation-srv/pkg/log"
	"automation-srv/pkg/metrics"

	gobreaker "github.com/sony/gobreaker/v2"
)

func newBreaker(l log.Logger, name string, maxFailures uint32, timeout time.Duration) *gobreaker.CircuitBreaker[response] {
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	return gobreaker.NewCircuitBreaker[response](gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= maxFailures
		},
		// 4xx answers mean the API is up; only transport errors, 429 and 5xx count.
		IsSuccessful: func(err error) bool {
			if err == nil {
				return true
			}
			var apiErr *APIError
			if errors.As(err, &apiErr) {
				return !apiErr.Retryable()
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			l.Warnf(context.Background(), "pkg.instagram.breaker: %s state %s -> %s", name, from, to)
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, from.String(), to.String()).Inc()
		},
	})
}

func (i *instagramImpl) execute(ctx context.Context, fn func() (response, error)) (response, error) {
	if err := i.limiter.Wait(ctx); err != nil {
		return response{}, errors.Join(ErrRateLimited, err)
	}

	res, err := i.cb.Execute(fn)
	name := i.cb.Name()
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(name, "rejected").Inc()
		return response{}, errors.Join(ErrBreakerOpen, err)
	case err != nil:
		metrics.CircuitBreakerRequests.WithLabelValues(name, "failure").Inc()
		return res, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(name, "success").Inc()
	return res, nil
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}
