package httpserver

import (
	"automation-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

// Health response constants (single source for version and service identity).
const (
	HealthVersion = "1.0.0"
	ServiceName   = "automation-srv"
)

const (
	statusConnected    = "connected"
	statusDisconnected = "disconnected"
)

// healthCheck reports that the process is up.
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "healthy",
		"version": HealthVersion,
		"service": ServiceName,
	})
}

// readyCheck probes Postgres, Redis, the broker connection and the consumer subscription.
// Kafka and MinIO are reported when configured but never make the worker unready.
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	ctx := c.Request.Context()
	checks := gin.H{
		"database": statusConnected,
		"redis":    statusConnected,
		"rabbitmq": statusConnected,
		"consumer": "subscribed",
	}
	ready := true

	if err := srv.postgresDB.PingContext(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: postgres: %v", err)
		checks["database"] = statusDisconnected
		ready = false
	}
	if err := srv.redisClient.Ping(ctx); err != nil {
		srv.l.Warnf(ctx, "httpserver.readyCheck: redis: %v", err)
		checks["redis"] = statusDisconnected
		ready = false
	}
	if !srv.rabbitMQ.IsReady() {
		checks["rabbitmq"] = statusDisconnected
		ready = false
	}
	if !srv.consumer.IsReady() {
		checks["consumer"] = "not subscribed"
		ready = false
	}

	if srv.kafkaProducer != nil {
		checks["kafka"] = statusConnected
		if err := srv.kafkaProducer.HealthCheck(); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: kafka: %v", err)
			checks["kafka"] = statusDisconnected
		}
	}
	if srv.minioClient != nil {
		checks["minio"] = statusConnected
		if err := srv.minioClient.HealthCheck(ctx); err != nil {
			srv.l.Warnf(ctx, "httpserver.readyCheck: minio: %v", err)
			checks["minio"] = statusDisconnected
		}
	}

	if !ready {
		checks["status"] = "not ready"
		response.Unavailable(c, "not ready", checks)
		return
	}

	checks["status"] = "ready"
	checks["service"] = ServiceName
	response.OK(c, checks)
}

// liveCheck handles liveness check requests
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"service": ServiceName,
	})
}
