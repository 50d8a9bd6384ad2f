package automation

import (
	"fmt"
	"time"

	"automation-srv/internal/model"

	"github.com/goccy/go-json"
)

const fieldComments = "comments"

// WebhookMessage is the queue message produced by the webhook receiver.
type WebhookMessage struct {
	ID         string          `json:"id"`
	Timestamp  json.RawMessage `json:"timestamp"`
	Source     string          `json:"source"`
	EventType  string          `json:"event_type"`
	AccountID  string          `json:"account_id"`
	RawPayload RawPayload      `json:"raw_payload"`
}

// RawPayload is the platform webhook entry as received.
type RawPayload struct {
	ID      string   `json:"id"`
	Time    int64    `json:"time"`
	Changes []Change `json:"changes"`
}

type Change struct {
	Field string      `json:"field"`
	Value ChangeValue `json:"value"`
}

type ChangeValue struct {
	ID    string      `json:"id"`
	Text  string      `json:"text"`
	From  ChangeFrom  `json:"from"`
	Media ChangeMedia `json:"media"`
}

type ChangeFrom struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type ChangeMedia struct {
	ID               string `json:"id"`
	MediaProductType string `json:"media_product_type"`
}

// DecodeWebhookMessage decodes a queue body. Any decode error wraps ErrMalformedPayload.
func DecodeWebhookMessage(body []byte) (WebhookMessage, error) {
	var msg WebhookMessage
	if err := json.Unmarshal(body, &msg); err != nil {
		return WebhookMessage{}, fmt.Errorf("%w: %w", ErrMalformedPayload, err)
	}
	return msg, nil
}

// CommentEvent converts the first change into a CommentEvent.
// Later changes are ignored; ok is false when there is no change or it is not a comment.
func (m WebhookMessage) CommentEvent() (model.CommentEvent, bool) {
	if len(m.RawPayload.Changes) == 0 {
		return model.CommentEvent{}, false
	}
	change := m.RawPayload.Changes[0]
	if change.Field != fieldComments {
		return model.CommentEvent{}, false
	}

	v := change.Value
	return model.CommentEvent{
		MessageID:         m.ID,
		AccountID:         m.AccountID,
		CommentID:         v.ID,
		CommentText:       v.Text,
		CommenterID:       v.From.ID,
		CommenterUsername: v.From.Username,
		PostID:            v.Media.ID,
		MediaKind:         v.Media.MediaProductType,
		OccurredAt:        parseTimestamp(m.Timestamp),
	}, true
}

// ParseCommentEvent decodes body and returns its comment event. It never panics.
func ParseCommentEvent(body []byte) (model.CommentEvent, bool) {
	msg, err := DecodeWebhookMessage(body)
	if err != nil {
		return model.CommentEvent{}, false
	}
	return msg.CommentEvent()
}

// Zone-less timestamps are read as UTC.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

// parseTimestamp accepts an ISO 8601 string with Z, an offset or no zone; anything else yields the current UTC time.
func parseTimestamp(raw json.RawMessage) time.Time {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil || s == "" {
		return time.Now().UTC()
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t
		}
	}
	return time.Now().UTC()
}
