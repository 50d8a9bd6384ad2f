package consumer

import (
	"fmt"
)

// New creates a new consumer server with dependency validation
func New(cfg Config) (*ConsumerServer, error) {
	srv := &ConsumerServer{
		l:               cfg.Logger,
		rabbitMQConfig:  cfg.RabbitMQConfig,
		instagramConfig: cfg.InstagramConfig,
		archiveBucket:   cfg.ArchiveBucket,
		postgresDB:      cfg.PostgresDB,
		redisClient:     cfg.RedisClient,
		rabbitMQConn:    cfg.RabbitMQConn,
		kafkaProducer:   cfg.KafkaProducer,
		minioClient:     cfg.MinIOClient,
		encrypter:       cfg.Encrypter,
		discord:         cfg.Discord,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

// validate validates that all required dependencies are provided
func (srv *ConsumerServer) validate() error {
	// Core Configuration
	if srv.l == nil {
		return fmt.Errorf("logger is required")
	}
	if srv.rabbitMQConfig.Queue == "" {
		return fmt.Errorf("rabbitmq queue is required")
	}
	if srv.instagramConfig.GraphURL == "" {
		return fmt.Errorf("instagram graph url is required")
	}

	// Infrastructure clients
	if srv.postgresDB == nil {
		return fmt.Errorf("postgres db is required")
	}
	if srv.redisClient == nil {
		return fmt.Errorf("redis client is required")
	}
	if srv.rabbitMQConn == nil {
		return fmt.Errorf("rabbitmq connection is required")
	}
	if srv.minioClient != nil && srv.archiveBucket == "" {
		return fmt.Errorf("archive bucket is required when minio is set")
	}

	// Security
	if srv.encrypter == nil {
		return fmt.Errorf("encrypter is required")
	}

	return nil
}
