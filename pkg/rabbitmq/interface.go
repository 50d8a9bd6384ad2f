package rabbitmq

import (
	"automation-srv/pkg/log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// IRabbitMQ is the RabbitMQ connection interface. Implementations are safe for concurrent use.
type IRabbitMQ interface {
	Close()
	IsReady() bool
	IsClosed() bool
	Channel() (IChannel, error)
}

// IChannel is the RabbitMQ channel interface. Implementations are safe for concurrent use.
// The underlying AMQP channel is replaced after a reconnect; QoS set through Qos is reapplied
// to the new channel before receivers registered with NotifyReconnect are signalled.
type IChannel interface {
	Qos(qos QosArgs) error
	Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error)
	Cancel(consumer string) error
	Close() error
	NotifyReconnect(receiver chan bool) <-chan bool
}

// NewRabbitMQ dials RabbitMQ and returns a connection that redials on broker disconnect.
func NewRabbitMQ(l log.Logger, url string, retryWithoutTimeout bool) (IRabbitMQ, error) {
	conn := &connectionImpl{
		l:                   l,
		url:                 url,
		retryWithoutTimeout: retryWithoutTimeout,
	}
	if err := conn.connect(); err != nil {
		return nil, err
	}
	return conn, nil
}
