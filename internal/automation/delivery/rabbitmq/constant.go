package rabbitmq

import "time"

const (
	// QueueComments is declared by the webhook receiver, never by this service.
	QueueComments      = "instagram.comments"
	DefaultConsumerTag = "automation-worker"
	DefaultPrefetch    = 10

	// ResubscribeDelay is the pause between failed subscribe attempts after a reconnect.
	ResubscribeDelay = 2 * time.Second
	// AlertCooldown bounds how often a nack raises a Discord alert.
	AlertCooldown = time.Minute
)
