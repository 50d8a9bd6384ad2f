package kafka

import (
	"fmt"

	"automation-srv/config"
	"automation-srv/pkg/kafka"
)

// ConnectProducer creates a Kafka producer for the delivery events topic.
// Returns (nil, nil) when no brokers are configured; publishing is optional.
func ConnectProducer(cfg config.KafkaConfig) (kafka.IProducer, error) {
	if len(cfg.Brokers) == 0 {
		return nil, nil
	}

	producer, err := kafka.NewProducer(kafka.Config{
		Brokers: cfg.Brokers,
		Topic:   cfg.Topic,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Kafka producer: %w", err)
	}

	return producer, nil
}

// DisconnectProducer closes the Kafka producer.
func DisconnectProducer(producer kafka.IProducer) error {
	if producer == nil {
		return nil
	}
	return producer.Close()
}
