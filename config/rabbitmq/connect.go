package rabbitmq

import (
	"fmt"

	"automation-srv/config"
	"automation-srv/pkg/log"
	"automation-srv/pkg/rabbitmq"
)

// Connect dials RabbitMQ. The returned connection redials on its own after a broker disconnect.
func Connect(l log.Logger, cfg config.RabbitMQConfig) (rabbitmq.IRabbitMQ, error) {
	conn, err := rabbitmq.NewRabbitMQ(l, cfg.URL, cfg.RetryWithoutTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}
	return conn, nil
}

// Disconnect closes the RabbitMQ connection.
func Disconnect(conn rabbitmq.IRabbitMQ) {
	if conn != nil {
		conn.Close()
	}
}
