package consumer

import (
	"context"
	"fmt"
	"time"

	"automation-srv/internal/automation"
	rabbitDelivery "automation-srv/internal/automation/delivery/rabbitmq"
	"automation-srv/pkg/metrics"

	amqp "github.com/rabbitmq/amqp091-go"
)

// Settlement results used as metric labels
const (
	resultAck     = "ack"
	resultNack    = "nack"
	resultDropped = "dropped"
)

// handle processes one delivery and settles it. The message always completes on a
// context that is not cancelled by shutdown.
func (c *Consumer) handle(ctx context.Context, d amqp.Delivery) {
	ctx = context.WithoutCancel(ctx)

	out, err := c.process(ctx, d.Body)
	if err != nil {
		c.l.Errorf(ctx, "automation.delivery.rabbitmq.consumer.handle: delivery %d: %v, requeueing", d.DeliveryTag, err)
		if nackErr := d.Nack(false, true); nackErr != nil {
			c.l.Errorf(ctx, "automation.delivery.rabbitmq.consumer.handle: nack delivery %d: %v", d.DeliveryTag, nackErr)
		}
		metrics.MessagesTotal.WithLabelValues(resultNack).Inc()
		c.alert(ctx, err)
		return
	}

	if ackErr := d.Ack(false); ackErr != nil {
		c.l.Errorf(ctx, "automation.delivery.rabbitmq.consumer.handle: ack delivery %d: %v", d.DeliveryTag, ackErr)
	}
	if out.Dropped {
		metrics.MessagesTotal.WithLabelValues(resultDropped).Inc()
		return
	}
	metrics.MessagesTotal.WithLabelValues(resultAck).Inc()
}

// process runs the usecase and turns a panic into an error so the message is requeued.
func (c *Consumer) process(ctx context.Context, body []byte) (out automation.ProcessOutput, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrProcessPanic, r)
		}
	}()
	return c.uc.Process(ctx, body)
}

func (c *Consumer) alert(ctx context.Context, cause error) {
	if c.discord == nil {
		return
	}

	c.alertMu.Lock()
	now := time.Now()
	if !c.lastAlert.IsZero() && now.Sub(c.lastAlert) < rabbitDelivery.AlertCooldown {
		c.alertMu.Unlock()
		return
	}
	c.lastAlert = now
	c.alertMu.Unlock()

	if err := c.discord.SendError(ctx, "Comment processing failed", fmt.Sprintf("queue %s: message requeued", c.queue), cause); err != nil {
		c.l.Warnf(ctx, "automation.delivery.rabbitmq.consumer.alert: %v", err)
	}
}

func (c *Consumer) warn(ctx context.Context, title, description string) {
	if c.discord == nil {
		return
	}
	if err := c.discord.SendWarning(ctx, title, description); err != nil {
		c.l.Warnf(ctx, "automation.delivery.rabbitmq.consumer.warn: %v", err)
	}
}

func (c *Consumer) notify(ctx context.Context, content string) {
	if c.discord == nil {
		return
	}
	if err := c.discord.SendMessage(ctx, content); err != nil {
		c.l.Warnf(ctx, "automation.delivery.rabbitmq.consumer.notify: %v", err)
	}
}
