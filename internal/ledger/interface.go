package ledger

import (
	"context"

	"automation-srv/internal/model"
)

// Repository is the append-only delivery ledger over dm_sent_log and comment_reply_log.
//
//go:generate mockery --name Repository
type Repository interface {
	// RunInTx runs fn in one transaction holding an advisory lock on key.
	// HasSent and Record called with the ctx passed to fn join that transaction.
	RunInTx(ctx context.Context, key TupleKey, fn func(ctx context.Context) error) error
	// HasSent reports whether a record with status sent exists for the tuple.
	HasSent(ctx context.Context, kind model.DeliveryKind, automationID, postID, commenterID string) (bool, error)
	// Record appends one row. Existing rows are never updated.
	Record(ctx context.Context, opt RecordOptions) (model.DeliveryRecord, error)
}
