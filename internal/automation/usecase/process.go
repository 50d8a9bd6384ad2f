package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"automation-srv/internal/automation"
	"automation-srv/internal/ledger"
	"automation-srv/internal/model"
	"automation-srv/pkg/log"
	"automation-srv/pkg/metrics"
)

// Process handles one queue message body.
// Only lookup and ledger failures are returned; everything else is an outcome.
func (uc *implUseCase) Process(ctx context.Context, body []byte) (automation.ProcessOutput, error) {
	start := time.Now()
	defer func() {
		metrics.ProcessDuration.Observe(time.Since(start).Seconds())
	}()

	msg, err := automation.DecodeWebhookMessage(body)
	if err != nil {
		uc.l.Warnf(ctx, "automation.usecase.Process: drop malformed message: %v", err)
		uc.archive(ctx, automation.DropReasonMalformed, body)
		return automation.ProcessOutput{Dropped: true, DropReason: automation.DropReasonMalformed}, nil
	}
	ctx = log.SetMessageID(ctx, msg.ID)

	if n := len(msg.RawPayload.Changes); n > 1 {
		uc.l.Infof(ctx, "automation.usecase.Process: message carries %d changes, only the first is processed", n)
	}

	event, ok := msg.CommentEvent()
	if !ok {
		uc.l.Infof(ctx, "automation.usecase.Process: drop message without a comment change")
		uc.archive(ctx, automation.DropReasonUnsupported, body)
		return automation.ProcessOutput{Dropped: true, DropReason: automation.DropReasonUnsupported}, nil
	}

	out := automation.ProcessOutput{Event: event}

	candidates, err := uc.findCandidates(ctx, event.PostID)
	if err != nil {
		return out, err
	}
	if len(candidates) == 0 {
		uc.l.Debugf(ctx, "automation.usecase.Process: no active automation for post %s", event.PostID)
		return out, nil
	}

	for _, a := range candidates {
		outcome, events, err := uc.processAutomation(ctx, event, a)
		uc.publish(ctx, events)
		if err != nil {
			uc.l.Errorf(ctx, "automation.usecase.Process: automation %s: %v", a.ID, err)
			return out, err
		}
		out.Outcomes = append(out.Outcomes, outcome)
		metrics.OutcomesTotal.WithLabelValues(string(outcome.DM), string(outcome.Reply)).Inc()
	}

	return out, nil
}

// processAutomation runs the DM step and then the reply step of one automation,
// each inside its own locked ledger transaction.
// The returned events belong to committed transactions, also when an error is returned.
func (uc *implUseCase) processAutomation(ctx context.Context, event model.CommentEvent, a model.Automation) (automation.AutomationOutcome, []automation.DeliveryEvent, error) {
	outcome := automation.AutomationOutcome{
		AutomationID: a.ID,
		Name:         a.Name,
		Reply:        automation.OutcomeReplyNone,
	}

	if !a.Trigger.Matches(event.CommentText) {
		uc.l.Debugf(ctx, "automation.usecase.processAutomation: %q trigger did not match comment %s", a.Name, event.CommentID)
		outcome.DM = automation.OutcomeSkippedTrigger
		return outcome, nil, nil
	}

	key := ledger.TupleKey{
		AutomationID: a.ID,
		PostID:       event.PostID,
		CommenterID:  event.CommenterID,
	}

	var (
		events  []automation.DeliveryEvent
		token   string
		profile model.CommenterProfile
	)
	err := uc.ledger.RunInTx(ctx, key, func(ctx context.Context) error {
		events = nil

		sent, err := uc.ledger.HasSent(ctx, model.DeliveryKindDM, a.ID, event.PostID, event.CommenterID)
		if err != nil {
			return fmt.Errorf("%w: %w", automation.ErrLedgerFailed, err)
		}
		if sent {
			uc.l.Infof(ctx, "automation.usecase.processAutomation: %q already sent a DM to %s on post %s", a.Name, event.CommenterID, event.PostID)
			outcome.DM = automation.OutcomeSkippedDuplicate
			return nil
		}

		var dm automation.DispatchResult
		token, profile, dm = uc.deliverDM(ctx, event, a)

		rec, err := uc.ledger.Record(ctx, recordOptions(model.DeliveryKindDM, a, event, dm, profile))
		if err != nil {
			if errors.Is(err, ledger.ErrDuplicateSent) {
				uc.l.Warnf(ctx, "automation.usecase.processAutomation: %q DM to %s was recorded concurrently", a.Name, event.CommenterID)
				outcome.DM = automation.OutcomeSkippedDuplicate
				return nil
			}
			return fmt.Errorf("%w: %w", automation.ErrLedgerFailed, err)
		}
		events = append(events, newDeliveryEvent(rec, a, event))

		if _, failed := dm.(automation.DispatchFailed); failed {
			outcome.DM = automation.OutcomeDMFailed
		} else {
			outcome.DM = automation.OutcomeDMSent
		}
		return nil
	})
	if err != nil {
		return outcome, nil, ledgerError(err)
	}

	if outcome.DM != automation.OutcomeDMSent || !a.Reply.ShouldReply() {
		return outcome, events, nil
	}

	// The DM row is committed here. A failed reply record leaves it in place.
	var replyEvent automation.DeliveryEvent
	err = uc.ledger.RunInTx(ctx, key, func(ctx context.Context) error {
		reply := uc.replyToComment(ctx, token, event.CommentID, a.Reply.Template)
		if _, failed := reply.(automation.DispatchFailed); failed {
			outcome.Reply = automation.OutcomeReplyFailed
		} else {
			outcome.Reply = automation.OutcomeReplySent
		}

		rec, err := uc.ledger.Record(ctx, recordOptions(model.DeliveryKindReply, a, event, reply, profile))
		if err != nil {
			return fmt.Errorf("%w: %w", automation.ErrLedgerFailed, err)
		}
		replyEvent = newDeliveryEvent(rec, a, event)
		return nil
	})
	if err != nil {
		return outcome, events, ledgerError(err)
	}

	return outcome, append(events, replyEvent), nil
}

func ledgerError(err error) error {
	if errors.Is(err, automation.ErrLedgerFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", automation.ErrLedgerFailed, err)
}

// deliverDM decrypts the account token, enriches the commenter and sends the DM.
// A token that cannot be decrypted is a failed DM with a username-only profile.
func (uc *implUseCase) deliverDM(ctx context.Context, event model.CommentEvent, a model.Automation) (string, model.CommenterProfile, automation.DispatchResult) {
	token, err := uc.encrypter.Decrypt(a.Credentials.EncryptedToken)
	if err != nil {
		uc.l.Errorf(ctx, "automation.usecase.deliverDM: decrypt token of account %s: %v", a.AccountID, err)
		return "", usernameOnly(event), automation.DispatchFailed{Err: fmt.Errorf("decrypt access token: %w", err)}
	}

	profile := uc.enrich(ctx, event, token)
	return token, profile, uc.sendDM(ctx, a, token, event)
}

func recordOptions(kind model.DeliveryKind, a model.Automation, event model.CommentEvent, result automation.DispatchResult, profile model.CommenterProfile) ledger.RecordOptions {
	status := model.DeliveryStatusSent
	if _, failed := result.(automation.DispatchFailed); failed {
		status = model.DeliveryStatusFailed
	}
	return ledger.RecordOptions{
		Kind:         kind,
		AutomationID: a.ID,
		PostID:       event.PostID,
		CommenterID:  event.CommenterID,
		CommentID:    event.CommentID,
		Status:       status,
		Profile:      profile,
	}
}
