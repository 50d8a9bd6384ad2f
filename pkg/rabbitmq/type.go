package rabbitmq

import (
	"sync"

	"automation-srv/pkg/log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// connectionImpl implements IRabbitMQ.
type connectionImpl struct {
	l                   log.Logger
	url                 string
	retryWithoutTimeout bool

	mu         sync.RWMutex
	conn       *amqp.Connection
	isRetrying bool
	closed     bool
	reconnects []chan bool
}

// channelImpl implements IChannel.
type channelImpl struct {
	conn *connectionImpl

	mu         sync.RWMutex
	ch         *amqp.Channel
	qos        *QosArgs
	closed     bool
	reconnects []chan bool
}

// QosArgs holds arguments for Qos.
type QosArgs struct {
	PrefetchCount int
	PrefetchSize  int
	Global        bool
}

func (q QosArgs) spread() (prefetchCount, prefetchSize int, global bool) {
	return q.PrefetchCount, q.PrefetchSize, q.Global
}

// ConsumeArgs holds arguments for Consume.
type ConsumeArgs struct {
	Queue     string
	Consumer  string
	AutoAck   bool
	Exclusive bool
	NoLocal   bool
	NoWait    bool
	Args      map[string]interface{}
}

func (c ConsumeArgs) spread() (queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) {
	return c.Queue, c.Consumer, c.AutoAck, c.Exclusive, c.NoLocal, c.NoWait, c.Args
}
