package postgre

import (
	"context"
	"fmt"

	"automation-srv/internal/ledger"
)

// RunInTx serializes work on one tuple across processes with pg_advisory_xact_lock.
// The lock is released on commit or rollback.
func (r *implRepository) RunInTx(ctx context.Context, key ledger.TupleKey, fn func(ctx context.Context) error) (err error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ledger.ErrBeginTx, err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if _, err := tx.ExecContext(ctx, queryAdvisoryLock, key.LockKey()); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %w", ledger.ErrLockFailed, err)
	}

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.l.Errorf(ctx, "ledger.repository.postgre.RunInTx: rollback failed: %v", rbErr)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ledger.ErrCommitTx, err)
	}
	return nil
}
