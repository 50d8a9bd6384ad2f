package producer

import (
	"context"
	"fmt"
	"strings"

	"automation-srv/internal/automation"
	kafkaDelivery "automation-srv/internal/automation/delivery/kafka"

	"github.com/goccy/go-json"
)

// PublishDelivery publishes one delivery event, keyed by (automation, post, commenter)
// so events of the same tuple stay on one partition.
func (p *implProducer) PublishDelivery(ctx context.Context, event automation.DeliveryEvent) error {
	msg := kafkaDelivery.DeliveryMessage{
		EventType:         kafkaDelivery.EventTypeDelivery,
		RecordID:          event.RecordID,
		Kind:              event.Kind,
		Status:            event.Status,
		AutomationID:      event.AutomationID,
		AccountID:         event.AccountID,
		PostID:            event.PostID,
		CommentID:         event.CommentID,
		CommenterID:       event.CommenterID,
		CommenterUsername: event.Username,
		SentAt:            event.SentAt,
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal delivery event: %w", err)
	}

	key := []byte(strings.Join([]string{event.AutomationID, event.PostID, event.CommenterID}, ":"))
	if err := p.producer.Publish(key, body); err != nil {
		return fmt.Errorf("failed to publish delivery event: %w", err)
	}

	p.l.Debugf(ctx, "automation.delivery.kafka.producer.PublishDelivery: %s %s record %s", event.Kind, event.Status, event.RecordID)
	return nil
}
