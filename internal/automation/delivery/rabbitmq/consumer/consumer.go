package consumer

import (
	"context"
	"errors"
	"fmt"
	"time"

	pkgRabbit "automation-srv/pkg/rabbitmq"

	amqp "github.com/rabbitmq/amqp091-go"
)

type stopReason int

const (
	stopShutdown stopReason = iota
	stopReconnect
)

// Consume subscribes to the comment queue and blocks until ctx is cancelled.
// After a broker reconnect it resubscribes on the reopened channel.
func (c *Consumer) Consume(ctx context.Context) error {
	reconnect := c.ch.NotifyReconnect(make(chan bool, 1))

	for {
		deliveries, err := c.subscribe(ctx)
		if err != nil {
			return err
		}
		if deliveries == nil {
			return nil
		}

		c.ready.Store(true)
		c.l.Infof(ctx, "automation.delivery.rabbitmq.consumer.Consume: consuming %s (prefetch %d)", c.queue, c.prefetch)

		reason := c.drain(ctx, deliveries, reconnect)
		c.ready.Store(false)

		if reason == stopShutdown {
			if err := c.ch.Cancel(c.consumerTag); err != nil && !errors.Is(err, pkgRabbit.ErrChannelClosed) {
				c.l.Warnf(ctx, "automation.delivery.rabbitmq.consumer.Consume: cancel: %v", err)
			}
			c.l.Infof(ctx, "automation.delivery.rabbitmq.consumer.Consume: stopped")
			return nil
		}
		c.l.Infof(ctx, "automation.delivery.rabbitmq.consumer.Consume: channel reopened, resubscribing")
	}
}

// subscribe sets QoS and starts consuming. The first attempt fails fast; once the
// consumer has been subscribed, retries continue until ctx is done. A nil channel
// with nil error means ctx ended while retrying.
func (c *Consumer) subscribe(ctx context.Context) (<-chan amqp.Delivery, error) {
	warned := false
	for attempt := 0; ; attempt++ {
		deliveries, err := c.trySubscribe()
		if err == nil {
			if warned {
				c.notify(ctx, fmt.Sprintf("Comment consumer resubscribed to %s after %d attempts", c.queue, attempt+1))
			}
			return deliveries, nil
		}
		if attempt == 0 && !c.subscribed.Load() {
			return nil, err
		}

		c.l.Warnf(ctx, "automation.delivery.rabbitmq.consumer.subscribe: %v, retrying in %s", err, c.resubscribeDelay)
		if !warned {
			c.warn(ctx, "Comment consumer lost its subscription", fmt.Sprintf("queue %s: %v, retrying every %s", c.queue, err, c.resubscribeDelay))
			warned = true
		}
		select {
		case <-ctx.Done():
			return nil, nil
		case <-time.After(c.resubscribeDelay):
		}
	}
}

func (c *Consumer) trySubscribe() (<-chan amqp.Delivery, error) {
	if err := c.ch.Qos(pkgRabbit.QosArgs{PrefetchCount: c.prefetch}); err != nil {
		return nil, err
	}
	deliveries, err := c.ch.Consume(pkgRabbit.ConsumeArgs{
		Queue:    c.queue,
		Consumer: c.consumerTag,
	})
	if err != nil {
		return nil, err
	}
	c.subscribed.Store(true)
	return deliveries, nil
}

// drain handles deliveries one at a time until shutdown or a channel reconnect.
func (c *Consumer) drain(ctx context.Context, deliveries <-chan amqp.Delivery, reconnect <-chan bool) stopReason {
	for {
		select {
		case <-ctx.Done():
			return stopShutdown
		case <-reconnect:
			return stopReconnect
		case d, ok := <-deliveries:
			if !ok {
				c.ready.Store(false)
				c.l.Warnf(ctx, "automation.delivery.rabbitmq.consumer.drain: delivery channel closed, waiting for reconnect")
				select {
				case <-ctx.Done():
					return stopShutdown
				case <-reconnect:
					return stopReconnect
				}
			}
			c.handle(ctx, d)
		}
	}
}
