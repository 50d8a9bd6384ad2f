package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"automation-srv/config"
	"automation-srv/config/kafka"
	"automation-srv/config/minio"
	"automation-srv/config/postgre"
	"automation-srv/config/rabbitmq"
	"automation-srv/config/redis"
	"automation-srv/internal/consumer"
	"automation-srv/internal/httpserver"
	"automation-srv/pkg/discord"
	"automation-srv/pkg/encrypter"
	"automation-srv/pkg/log"

	"golang.org/x/sync/errgroup"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// Initialize logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	// Create context with signal handling for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Errorf(ctx, "Automation worker stopped with error: %v", err)
		os.Exit(1)
	}
	logger.Info(ctx, "Automation worker stopped gracefully")
}

func run(ctx context.Context, cfg *config.Config, logger log.Logger) error {
	logger.Info(ctx, "Starting Automation Worker...")

	// PostgreSQL
	postgresDB, err := postgre.Connect(ctx, cfg.Postgres)
	if err != nil {
		return fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}
	defer postgre.Disconnect(ctx, postgresDB)
	logger.Info(ctx, "PostgreSQL client initialized")

	// Redis
	redisClient, err := redis.Connect(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to Redis: %w", err)
	}
	defer redis.Disconnect(redisClient)
	logger.Info(ctx, "Redis client initialized")

	// RabbitMQ
	rabbitConn, err := rabbitmq.Connect(logger, cfg.RabbitMQ)
	if err != nil {
		return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	defer rabbitmq.Disconnect(rabbitConn)
	logger.Info(ctx, "RabbitMQ connection initialized")

	// Kafka producer (optional)
	kafkaProducer, err := kafka.ConnectProducer(cfg.Kafka)
	if err != nil {
		return fmt.Errorf("failed to connect to Kafka producer: %w", err)
	}
	if kafkaProducer != nil {
		defer kafka.DisconnectProducer(kafkaProducer)
		logger.Info(ctx, "Kafka producer initialized")
	}

	// MinIO (optional)
	minioClient, err := minio.Connect(ctx, cfg.MinIO)
	if err != nil {
		return fmt.Errorf("failed to connect to MinIO: %w", err)
	}
	if minioClient != nil {
		defer minio.Disconnect(minioClient)
		logger.Info(ctx, "MinIO client initialized")
	}

	// Discord (optional)
	var discordClient discord.IDiscord
	if cfg.Discord.WebhookID != "" {
		webhook, err := discord.NewDiscordWebhook(cfg.Discord.WebhookID, cfg.Discord.WebhookToken)
		if err == nil {
			discordClient, err = discord.New(logger, webhook)
		}
		if err != nil {
			logger.Warnf(ctx, "Discord webhook not configured (optional): %v", err)
		} else {
			defer discordClient.Close()
			logger.Info(ctx, "Discord client initialized")
		}
	}

	// Consumer server
	srv, err := consumer.New(consumer.Config{
		Logger:          logger,
		RabbitMQConfig:  cfg.RabbitMQ,
		InstagramConfig: cfg.Instagram,
		ArchiveBucket:   cfg.MinIO.Bucket,
		PostgresDB:      postgresDB,
		RedisClient:     redisClient,
		RabbitMQConn:    rabbitConn,
		KafkaProducer:   kafkaProducer,
		MinIOClient:     minioClient,
		Encrypter:       encrypter.New(cfg.Encrypter.Key),
		Discord:         discordClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create consumer server: %w", err)
	}

	// Health and metrics server
	httpSrv, err := httpserver.New(httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		PostgresDB:  postgresDB,
		RedisClient: redisClient,
		RabbitMQ:    rabbitConn,
		Consumer:    srv,

		KafkaProducer: kafkaProducer,
		MinIOClient:   minioClient,

		Discord: discordClient,
	})
	if err != nil {
		return fmt.Errorf("failed to create http server: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Run(gctx) })
	g.Go(func() error { return httpSrv.Run(gctx) })

	return g.Wait()
}
