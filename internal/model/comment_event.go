package model

import "time"

// CommentEvent is a normalized comment notification taken from the queue.
type CommentEvent struct {
	MessageID         string
	AccountID         string
	CommentID         string
	CommentText       string
	CommenterID       string
	CommenterUsername string
	PostID            string
	MediaKind         string
	OccurredAt        time.Time
}
