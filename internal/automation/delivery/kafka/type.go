package kafka

import "time"

// EventTypeDelivery is the event_type of every delivery message.
const EventTypeDelivery = "automation.delivery"

// DeliveryMessage is the Kafka DTO for one ledger row.
type DeliveryMessage struct {
	EventType         string    `json:"event_type"`
	RecordID          string    `json:"record_id"`
	Kind              string    `json:"kind"`
	Status            string    `json:"status"`
	AutomationID      string    `json:"automation_id"`
	AccountID         string    `json:"account_id"`
	PostID            string    `json:"post_id"`
	CommentID         string    `json:"comment_id"`
	CommenterID       string    `json:"commenter_id"`
	CommenterUsername string    `json:"commenter_username,omitempty"`
	SentAt            time.Time `json:"sent_at"`
}
