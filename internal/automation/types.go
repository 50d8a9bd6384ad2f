package automation

import (
	"time"

	"automation-srv/internal/model"
)

// ============================================
// Process Output
// ============================================

// DMOutcome is the terminal state of one automation's DM step.
type DMOutcome string

const (
	OutcomeSkippedTrigger   DMOutcome = "skipped_trigger"
	OutcomeSkippedDuplicate DMOutcome = "skipped_duplicate"
	OutcomeDMSent           DMOutcome = "dm_sent"
	OutcomeDMFailed         DMOutcome = "dm_failed"
)

// ReplyOutcome is the terminal state of one automation's reply step.
type ReplyOutcome string

const (
	OutcomeReplySent   ReplyOutcome = "reply_sent"
	OutcomeReplyFailed ReplyOutcome = "reply_failed"
	OutcomeReplyNone   ReplyOutcome = "reply_none"
)

// AutomationOutcome records what happened for one candidate automation.
type AutomationOutcome struct {
	AutomationID string
	Name         string
	DM           DMOutcome
	Reply        ReplyOutcome
}

// ProcessOutput is the result of processing one message.
type ProcessOutput struct {
	// Dropped is set when the body could not be turned into a comment event.
	Dropped    bool
	DropReason string
	Event      model.CommentEvent
	Outcomes   []AutomationOutcome
}

// Drop reasons
const (
	DropReasonMalformed   = "malformed_payload"
	DropReasonUnsupported = "unsupported_event"
)

// ============================================
// Dispatch Results
// ============================================

// DispatchResult is the outcome of one outbound call: DispatchSent or DispatchFailed.
type DispatchResult interface {
	isDispatchResult()
}

// DispatchSent carries the platform id of the sent message or reply.
type DispatchSent struct {
	ID string
}

// DispatchFailed carries the cause; it is logged and recorded, never raised.
type DispatchFailed struct {
	Err error
}

func (DispatchSent) isDispatchResult()   {}
func (DispatchFailed) isDispatchResult() {}

// ============================================
// Delivery Events (to Kafka)
// ============================================

// DeliveryEvent is published once per ledger row after the transaction commits.
type DeliveryEvent struct {
	RecordID     string
	Kind         string
	Status       string
	AutomationID string
	AccountID    string
	PostID       string
	CommentID    string
	CommenterID  string
	Username     string
	SentAt       time.Time
}
