package httpserver

import (
	"database/sql"
	"errors"

	"automation-srv/pkg/discord"
	pkgKafka "automation-srv/pkg/kafka"
	"automation-srv/pkg/log"
	"automation-srv/pkg/minio"
	pkgRedis "automation-srv/pkg/redis"

	"github.com/gin-gonic/gin"
)

// ReadinessChecker reports whether a long-running component can do work.
type ReadinessChecker interface {
	IsReady() bool
}

// HTTPServer serves health, readiness and metrics for the worker.
type HTTPServer struct {
	// Server Configuration
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	// Dependencies probed by /ready
	postgresDB  *sql.DB
	redisClient pkgRedis.IRedis
	rabbitMQ    ReadinessChecker
	consumer    ReadinessChecker

	// Optional backends, reported by /ready without gating it
	kafkaProducer pkgKafka.IProducer
	minioClient   minio.IMinIO

	// Monitoring & Notification (optional)
	discord discord.IDiscord
}

type Config struct {
	// Server Configuration
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	// Dependencies probed by /ready
	PostgresDB  *sql.DB
	RedisClient pkgRedis.IRedis
	RabbitMQ    ReadinessChecker
	Consumer    ReadinessChecker

	// Optional backends, reported by /ready without gating it
	KafkaProducer pkgKafka.IProducer
	MinIOClient   minio.IMinIO

	// Monitoring & Notification (optional)
	Discord discord.IDiscord
}

// New creates a new HTTPServer instance with the provided configuration.
func New(cfg Config) (*HTTPServer, error) {
	if cfg.Mode != "" {
		gin.SetMode(cfg.Mode)
	}

	srv := &HTTPServer{
		l:           cfg.Logger,
		gin:         gin.New(),
		host:        cfg.Host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,

		postgresDB:  cfg.PostgresDB,
		redisClient: cfg.RedisClient,
		rabbitMQ:    cfg.RabbitMQ,
		consumer:    cfg.Consumer,

		kafkaProducer: cfg.KafkaProducer,
		minioClient:   cfg.MinIOClient,

		discord: cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mapHandlers()
	return srv, nil
}

// validate validates that all required dependencies are provided.
func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	// host can be empty (listen on all interfaces)
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.postgresDB == nil {
		return errors.New("postgresDB is required")
	}
	if srv.redisClient == nil {
		return errors.New("redisClient is required")
	}
	if srv.rabbitMQ == nil {
		return errors.New("rabbitMQ is required")
	}
	if srv.consumer == nil {
		return errors.New("consumer is required")
	}
	return nil
}
