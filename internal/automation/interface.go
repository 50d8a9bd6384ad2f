package automation

import (
	"context"
)

//go:generate mockery --name UseCase
type UseCase interface {
	// Process handles one queue message body. A nil error means the message can be acked;
	// an error means an infrastructure failure and the message should be requeued.
	Process(ctx context.Context, body []byte) (ProcessOutput, error)
}

// Publisher emits delivery events for downstream analytics.
//
//go:generate mockery --name Publisher
type Publisher interface {
	PublishDelivery(ctx context.Context, event DeliveryEvent) error
}
