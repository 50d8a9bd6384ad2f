package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"automation-srv/internal/ledger"
	"automation-srv/internal/model"
	"automation-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (ledger.Repository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return New(db, log.NewNop()), mock
}

func TestHasSent(t *testing.T) {
	t.Run("dm log", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM dm_sent_log")).
			WithArgs("a1", "p1", "u1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		sent, err := repo.HasSent(context.Background(), model.DeliveryKindDM, "a1", "p1", "u1")
		require.NoError(t, err)
		assert.True(t, sent)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("reply log", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("FROM comment_reply_log")).
			WithArgs("a1", "p1", "u1").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		sent, err := repo.HasSent(context.Background(), model.DeliveryKindReply, "a1", "p1", "u1")
		require.NoError(t, err)
		assert.False(t, sent)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery("SELECT EXISTS").WillReturnError(errors.New("connection refused"))

		_, err := repo.HasSent(context.Background(), model.DeliveryKindDM, "a1", "p1", "u1")
		assert.ErrorIs(t, err, ledger.ErrFailedToGet)
	})

	t.Run("unknown kind", func(t *testing.T) {
		repo, _ := newMockRepo(t)
		_, err := repo.HasSent(context.Background(), "sms", "a1", "p1", "u1")
		assert.ErrorIs(t, err, ledger.ErrUnknownKind)
	})
}

func TestRecord(t *testing.T) {
	followers := 120
	opt := ledger.RecordOptions{
		Kind:         model.DeliveryKindDM,
		AutomationID: "a1",
		PostID:       "p1",
		CommenterID:  "u1",
		CommentID:    "c1",
		Status:       model.DeliveryStatusSent,
		Profile:      model.CommenterProfile{Username: "alice", FollowersCount: &followers},
	}

	t.Run("inserts profile snapshot", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO dm_sent_log")).
			WithArgs(sqlmock.AnyArg(), "a1", "p1", "c1", "u1", "sent", sqlmock.AnyArg(),
				"alice", nil, nil, int64(120), nil, nil).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("x"))

		rec, err := repo.Record(context.Background(), opt)
		require.NoError(t, err)
		assert.NotEmpty(t, rec.ID)
		assert.Equal(t, model.DeliveryStatusSent, rec.Status)
		assert.False(t, rec.SentAt.IsZero())
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("conflict on sent", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO dm_sent_log")).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.Record(context.Background(), opt)
		assert.ErrorIs(t, err, ledger.ErrDuplicateSent)
	})

	t.Run("insert error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO comment_reply_log")).
			WillReturnError(errors.New("disk full"))

		replyOpt := opt
		replyOpt.Kind = model.DeliveryKindReply
		_, err := repo.Record(context.Background(), replyOpt)
		assert.ErrorIs(t, err, ledger.ErrFailedToInsert)
	})
}

func TestRunInTx(t *testing.T) {
	key := ledger.TupleKey{AutomationID: "a1", PostID: "p1", CommenterID: "u1"}

	t.Run("commit joins the transaction", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec(regexp.QuoteMeta("pg_advisory_xact_lock")).
			WithArgs("a1:p1:u1").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		mock.ExpectCommit()

		err := repo.RunInTx(context.Background(), key, func(ctx context.Context) error {
			_, err := repo.HasSent(ctx, model.DeliveryKindDM, "a1", "p1", "u1")
			return err
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback on error", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("pg_advisory_xact_lock").WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectRollback()

		boom := errors.New("boom")
		err := repo.RunInTx(context.Background(), key, func(ctx context.Context) error { return boom })
		assert.ErrorIs(t, err, boom)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("lock failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin()
		mock.ExpectExec("pg_advisory_xact_lock").WillReturnError(errors.New("timeout"))
		mock.ExpectRollback()

		called := false
		err := repo.RunInTx(context.Background(), key, func(ctx context.Context) error {
			called = true
			return nil
		})
		assert.ErrorIs(t, err, ledger.ErrLockFailed)
		assert.False(t, called)
	})

	t.Run("begin failure", func(t *testing.T) {
		repo, mock := newMockRepo(t)
		mock.ExpectBegin().WillReturnError(errors.New("pool exhausted"))

		err := repo.RunInTx(context.Background(), key, func(ctx context.Context) error { return nil })
		assert.ErrorIs(t, err, ledger.ErrBeginTx)
	})
}
