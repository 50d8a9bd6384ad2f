package model

import "time"

// DeliveryKind distinguishes the two ledger tables.
type DeliveryKind string

const (
	DeliveryKindDM    DeliveryKind = "dm"
	DeliveryKindReply DeliveryKind = "reply"
)

// DeliveryStatus is the outcome of one send attempt.
type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "sent"
	DeliveryStatusFailed DeliveryStatus = "failed"
)

// DeliveryRecord is one append-only ledger row.
type DeliveryRecord struct {
	ID           string
	Kind         DeliveryKind
	AutomationID string
	PostID       string
	CommenterID  string
	CommentID    string
	Status       DeliveryStatus
	Profile      CommenterProfile
	SentAt       time.Time
}

// CommenterProfile is a snapshot of the commenter at delivery time. Every field is optional.
type CommenterProfile struct {
	Username          string
	Name              string
	Biography         string
	FollowersCount    *int
	MediaCount        *int
	ProfilePictureURL string
}
