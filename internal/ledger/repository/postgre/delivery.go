package postgre

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"automation-srv/internal/ledger"
	"automation-srv/internal/model"

	"github.com/google/uuid"
)

// HasSent - Dedup guard, true iff a sent row exists for the tuple
func (r *implRepository) HasSent(ctx context.Context, kind model.DeliveryKind, automationID, postID, commenterID string) (bool, error) {
	table, err := tableFor(kind)
	if err != nil {
		return false, err
	}

	var exists bool
	if err := r.exec(ctx).QueryRowContext(ctx, buildHasSentQuery(table), automationID, postID, commenterID).Scan(&exists); err != nil {
		r.l.Errorf(ctx, "ledger.repository.postgre.HasSent: %v", err)
		return false, fmt.Errorf("%w: %w", ledger.ErrFailedToGet, err)
	}
	return exists, nil
}

// Record - Append one attempt to the DM or reply log
func (r *implRepository) Record(ctx context.Context, opt ledger.RecordOptions) (model.DeliveryRecord, error) {
	table, err := tableFor(opt.Kind)
	if err != nil {
		return model.DeliveryRecord{}, err
	}

	id := uuid.New().String()
	now := time.Now().UTC()

	var returned string
	err = r.exec(ctx).QueryRowContext(ctx, buildInsertQuery(table), buildInsertArgs(id, now, opt)...).Scan(&returned)
	if errors.Is(err, sql.ErrNoRows) {
		r.l.Warnf(ctx, "ledger.repository.postgre.Record: sent %s already recorded for automation=%s post=%s commenter=%s",
			opt.Kind, opt.AutomationID, opt.PostID, opt.CommenterID)
		return model.DeliveryRecord{}, ledger.ErrDuplicateSent
	}
	if err != nil {
		r.l.Errorf(ctx, "ledger.repository.postgre.Record: %v", err)
		return model.DeliveryRecord{}, fmt.Errorf("%w: %w", ledger.ErrFailedToInsert, err)
	}

	return buildRecord(id, now, opt), nil
}
