package consumer

import (
	"context"
	"fmt"

	"automation-srv/internal/automation"
	kafkaProducer "automation-srv/internal/automation/delivery/kafka/producer"
	commentConsumer "automation-srv/internal/automation/delivery/rabbitmq/consumer"
	automationPostgre "automation-srv/internal/automation/repository/postgre"
	automationRedis "automation-srv/internal/automation/repository/redis"
	automationUsecase "automation-srv/internal/automation/usecase"
	ledgerPostgre "automation-srv/internal/ledger/repository/postgre"
	"automation-srv/pkg/instagram"
	pkgRabbit "automation-srv/pkg/rabbitmq"
)

// domainConsumers holds references to all domain consumers for cleanup
type domainConsumers struct {
	channel  pkgRabbit.IChannel
	comments *commentConsumer.Consumer
}

// setupDomains initializes all domain layers (repositories, usecases, consumers)
func (srv *ConsumerServer) setupDomains(ctx context.Context) (*domainConsumers, error) {
	automationRepo := automationPostgre.New(srv.postgresDB, srv.l)
	profileCache := automationRedis.New(srv.redisClient, srv.l, srv.instagramConfig.ProfileCacheTTL)
	ledgerRepo := ledgerPostgre.New(srv.postgresDB, srv.l)

	igClient, err := instagram.New(srv.l, instagram.Config{
		GraphURL:           srv.instagramConfig.GraphURL,
		Timeout:            srv.instagramConfig.Timeout,
		RateLimitPerSecond: srv.instagramConfig.RateLimitPerSecond,
		RateLimitBurst:     srv.instagramConfig.RateLimitBurst,
		BreakerMaxFailures: srv.instagramConfig.BreakerMaxFailures,
		BreakerTimeout:     srv.instagramConfig.BreakerTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create instagram client: %w", err)
	}

	var publisher automation.Publisher
	if srv.kafkaProducer != nil {
		publisher = kafkaProducer.New(srv.l, srv.kafkaProducer)
	}

	uc := automationUsecase.New(
		srv.l,
		automationRepo,
		profileCache,
		ledgerRepo,
		srv.encrypter,
		igClient,
		publisher,
		srv.minioClient,
		srv.archiveBucket,
	)

	ch, err := srv.rabbitMQConn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open rabbitmq channel: %w", err)
	}

	comments, err := commentConsumer.New(commentConsumer.Config{
		Logger:      srv.l,
		Channel:     ch,
		UseCase:     uc,
		Queue:       srv.rabbitMQConfig.Queue,
		ConsumerTag: srv.rabbitMQConfig.ConsumerTag,
		Prefetch:    srv.rabbitMQConfig.Prefetch,
		Discord:     srv.discord,
	})
	if err != nil {
		_ = ch.Close()
		return nil, fmt.Errorf("failed to create comment consumer: %w", err)
	}
	srv.comments.Store(comments)

	srv.l.Infof(ctx, "Automation domain initialized")

	return &domainConsumers{
		channel:  ch,
		comments: comments,
	}, nil
}

// startConsumers runs the comment consumer in a background goroutine.
// The returned channel yields once when it stops.
func (srv *ConsumerServer) startConsumers(ctx context.Context, consumers *domainConsumers) <-chan error {
	done := make(chan error, 1)
	go func() {
		done <- consumers.comments.Consume(ctx)
	}()
	return done
}

// stopConsumers closes the consumer channel; the connection is closed by its owner.
func (srv *ConsumerServer) stopConsumers(ctx context.Context, consumers *domainConsumers) {
	if consumers.channel != nil {
		if err := consumers.channel.Close(); err != nil {
			srv.l.Errorf(ctx, "Error closing rabbitmq channel: %v", err)
		}
	}
	srv.l.Infof(ctx, "All consumers stopped")
}
