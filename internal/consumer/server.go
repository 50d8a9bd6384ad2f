package consumer

import (
	"context"
	"database/sql"
	"sync/atomic"

	"automation-srv/config"
	commentConsumer "automation-srv/internal/automation/delivery/rabbitmq/consumer"
	"automation-srv/pkg/discord"
	"automation-srv/pkg/encrypter"
	pkgKafka "automation-srv/pkg/kafka"
	"automation-srv/pkg/log"
	"automation-srv/pkg/minio"
	pkgRabbit "automation-srv/pkg/rabbitmq"
	"automation-srv/pkg/redis"
)

// ConsumerServer is the RabbitMQ consumer orchestrator
type ConsumerServer struct {
	// Core Configuration
	l               log.Logger
	rabbitMQConfig  config.RabbitMQConfig
	instagramConfig config.InstagramConfig
	archiveBucket   string

	// Infrastructure clients
	postgresDB    *sql.DB
	redisClient   redis.IRedis
	rabbitMQConn  pkgRabbit.IRabbitMQ
	kafkaProducer pkgKafka.IProducer
	minioClient   minio.IMinIO

	// Security
	encrypter encrypter.Encrypter

	// Monitoring & Notification
	discord discord.IDiscord

	comments atomic.Pointer[commentConsumer.Consumer]
}

// Config holds all dependencies for the consumer server
type Config struct {
	// Core Configuration
	Logger          log.Logger
	RabbitMQConfig  config.RabbitMQConfig
	InstagramConfig config.InstagramConfig
	ArchiveBucket   string

	// Infrastructure clients
	PostgresDB   *sql.DB
	RedisClient  redis.IRedis
	RabbitMQConn pkgRabbit.IRabbitMQ
	// KafkaProducer is optional; nil disables delivery events.
	KafkaProducer pkgKafka.IProducer
	// MinIOClient is optional; nil disables the drop archive.
	MinIOClient minio.IMinIO

	// Security
	Encrypter encrypter.Encrypter

	// Monitoring & Notification (optional)
	Discord discord.IDiscord
}

// IsReady reports whether the comment consumer holds a live subscription.
func (srv *ConsumerServer) IsReady() bool {
	c := srv.comments.Load()
	return c != nil && c.IsReady()
}

// Run starts the consumer server and blocks until context is cancelled.
// The in-flight message completes before the channel is closed.
func (srv *ConsumerServer) Run(ctx context.Context) error {
	consumers, err := srv.setupDomains(ctx)
	if err != nil {
		srv.l.Errorf(ctx, "Failed to setup domains: %v", err)
		return err
	}

	done := srv.startConsumers(ctx, consumers)
	srv.l.Info(ctx, "Consumer Server is running")

	select {
	case err = <-done:
		if err != nil {
			srv.l.Errorf(ctx, "Comment consumer stopped: %v", err)
		}
	case <-ctx.Done():
		srv.l.Info(ctx, "Shutdown signal received, stopping consumers...")
		err = <-done
	}

	srv.stopConsumers(ctx, consumers)

	srv.l.Info(ctx, "Consumer Server stopped gracefully")
	return err
}
