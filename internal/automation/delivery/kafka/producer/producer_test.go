package producer

import (
	"context"
	"errors"
	"testing"
	"time"

	"automation-srv/internal/automation"
	kafkaDelivery "automation-srv/internal/automation/delivery/kafka"
	"automation-srv/pkg/log"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProducer struct {
	keys   [][]byte
	values [][]byte
	err    error
}

func (f *fakeProducer) Publish(key, value []byte) error {
	if f.err != nil {
		return f.err
	}
	f.keys = append(f.keys, key)
	f.values = append(f.values, value)
	return nil
}

func (f *fakeProducer) Close() error       { return nil }
func (f *fakeProducer) HealthCheck() error { return nil }

func TestPublishDelivery(t *testing.T) {
	sentAt := time.Date(2026, 10, 19, 10, 0, 0, 0, time.UTC)
	event := automation.DeliveryEvent{
		RecordID:     "r-1",
		Kind:         "dm",
		Status:       "sent",
		AutomationID: "a-1",
		AccountID:    "acc-1",
		PostID:       "p-1",
		CommentID:    "c-1",
		CommenterID:  "u-1",
		Username:     "jane",
		SentAt:       sentAt,
	}

	t.Run("publishes keyed message", func(t *testing.T) {
		fp := &fakeProducer{}
		require.NoError(t, New(log.NewNop(), fp).PublishDelivery(context.Background(), event))

		require.Len(t, fp.keys, 1)
		assert.Equal(t, "a-1:p-1:u-1", string(fp.keys[0]))

		var msg kafkaDelivery.DeliveryMessage
		require.NoError(t, json.Unmarshal(fp.values[0], &msg))
		assert.Equal(t, kafkaDelivery.EventTypeDelivery, msg.EventType)
		assert.Equal(t, "jane", msg.CommenterUsername)
		assert.True(t, sentAt.Equal(msg.SentAt))
	})

	t.Run("publish error", func(t *testing.T) {
		fp := &fakeProducer{err: errors.New("broker unavailable")}
		err := New(log.NewNop(), fp).PublishDelivery(context.Background(), event)
		assert.ErrorContains(t, err, "broker unavailable")
	})
}
