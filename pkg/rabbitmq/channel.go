package rabbitmq

import (
	"context"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Qos sets the prefetch window and remembers it for channels opened after a reconnect.
func (ch *channelImpl) Qos(qos QosArgs) error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.closed {
		return ErrChannelClosed
	}
	if err := ch.ch.Qos(qos.spread()); err != nil {
		return err
	}
	ch.qos = &qos
	return nil
}

func (ch *channelImpl) Consume(consume ConsumeArgs) (<-chan amqp.Delivery, error) {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	if ch.closed {
		return nil, ErrChannelClosed
	}
	return ch.ch.Consume(consume.spread())
}

// Cancel stops deliveries for the consumer tag. Deliveries already received stay unacked
// until the caller acks or nacks them.
func (ch *channelImpl) Cancel(consumer string) error {
	ch.mu.RLock()
	defer ch.mu.RUnlock()
	if ch.closed {
		return ErrChannelClosed
	}
	return ch.ch.Cancel(consumer, false)
}

func (ch *channelImpl) Close() error {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if ch.closed {
		return nil
	}
	ch.closed = true
	return ch.ch.Close()
}

// NotifyReconnect registers receiver to be signalled after the channel was reopened.
// The signal is dropped when receiver is not ready, so use a buffered channel.
func (ch *channelImpl) NotifyReconnect(receiver chan bool) <-chan bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.reconnects = append(ch.reconnects, receiver)
	return receiver
}

func (ch *channelImpl) listenNotifyReconnect() {
	reconnNoti := make(chan bool)
	ch.conn.notifyReconnect(reconnNoti)
	go func() {
		for range reconnNoti {
			ch.reopen()
		}
	}()
}

func (ch *channelImpl) reopen() {
	ctx := context.Background()
	ch.mu.Lock()
	if ch.closed {
		ch.mu.Unlock()
		return
	}

	ch.conn.l.Infof(ctx, "pkg.rabbitmq.reopen: recreating RabbitMQ channel")
	channel, err := ch.conn.channel()
	if err != nil {
		ch.mu.Unlock()
		ch.conn.l.Errorf(ctx, "pkg.rabbitmq.reopen: RabbitMQ channel failed: %v", err)
		return
	}
	if ch.qos != nil {
		if err := channel.Qos(ch.qos.spread()); err != nil {
			ch.conn.l.Errorf(ctx, "pkg.rabbitmq.reopen: reapply qos failed: %v", err)
		}
	}
	_ = ch.ch.Close()
	ch.ch = channel
	reconnects := append([]chan bool(nil), ch.reconnects...)
	ch.mu.Unlock()

	for _, r := range reconnects {
		select {
		case r <- true:
		default:
		}
	}
}
