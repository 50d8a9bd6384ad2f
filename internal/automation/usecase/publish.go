package usecase

import (
	"context"

	"automation-srv/internal/automation"
	"automation-srv/internal/model"
)

func newDeliveryEvent(rec model.DeliveryRecord, a model.Automation, event model.CommentEvent) automation.DeliveryEvent {
	return automation.DeliveryEvent{
		RecordID:     rec.ID,
		Kind:         string(rec.Kind),
		Status:       string(rec.Status),
		AutomationID: a.ID,
		AccountID:    a.AccountID,
		PostID:       event.PostID,
		CommentID:    event.CommentID,
		CommenterID:  event.CommenterID,
		Username:     rec.Profile.Username,
		SentAt:       rec.SentAt,
	}
}

// publish emits committed delivery events. Failures are logged only; the ledger is the source of truth.
func (uc *implUseCase) publish(ctx context.Context, events []automation.DeliveryEvent) {
	if uc.publisher == nil {
		return
	}
	for _, e := range events {
		if err := uc.publisher.PublishDelivery(ctx, e); err != nil {
			uc.l.Warnf(ctx, "automation.usecase.publish: record %s: %v", e.RecordID, err)
		}
	}
}
