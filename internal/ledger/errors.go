package ledger

import "errors"

var (
	ErrBeginTx        = errors.New("ledger: begin transaction failed")
	ErrLockFailed     = errors.New("ledger: advisory lock failed")
	ErrCommitTx       = errors.New("ledger: commit failed")
	ErrFailedToGet    = errors.New("ledger: failed to get")
	ErrFailedToInsert = errors.New("ledger: failed to insert")
	// ErrDuplicateSent means a sent row for the tuple already exists; nothing was written.
	ErrDuplicateSent = errors.New("ledger: sent record already exists")
	ErrUnknownKind   = errors.New("ledger: unknown delivery kind")
)
