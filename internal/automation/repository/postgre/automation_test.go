package postgre

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"automation-srv/internal/automation/repository"
	"automation-srv/internal/model"
	"automation-srv/pkg/log"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var columns = []string{
	"id", "name", "instagram_account_id", "post_id",
	"trigger_type", "keywords",
	"message_type", "dm_message_template", "carousel_elements",
	"comment_reply_enabled", "comment_reply_template",
	"is_active",
	"instagram_user_id", "access_token",
}

func TestListActiveByPost(t *testing.T) {
	t.Run("builds text and carousel automations and skips invalid rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		carousel := `[{"title":"Watch","buttons":[{"type":"web_url","title":"Shop","url":"https://example.com"}]}]`
		rows := sqlmock.NewRows(columns).
			AddRow("a1", "Price DM", "acc1", "p1", "keyword", "{price,cost}", "text", "Here you go", nil, true, "Check DMs", true, "1784", "enc1").
			AddRow("a2", "Carousel", "acc1", "p1", "all_comments", nil, "carousel", nil, []byte(carousel), false, nil, true, "1784", "enc1").
			AddRow("a3", "Broken", "acc1", "p1", "all_comments", nil, "carousel", nil, []byte(`[]`), false, nil, true, "1784", "enc1").
			AddRow("a4", "Empty text", "acc1", "p1", "all_comments", nil, "text", "", nil, false, nil, true, "1784", "enc1")
		mock.ExpectQuery(regexp.QuoteMeta("FROM automations a")).WithArgs("p1").WillReturnRows(rows)

		repo := New(db, log.NewNop())
		got, err := repo.ListActiveByPost(context.Background(), "p1")
		require.NoError(t, err)
		require.Len(t, got, 2)

		assert.Equal(t, "a1", got[0].ID)
		kw, ok := got[0].Trigger.(model.TriggerKeyword)
		require.True(t, ok)
		assert.Equal(t, []string{"price", "cost"}, kw.Keywords)
		assert.Equal(t, model.TextMessage{Template: "Here you go"}, got[0].Message)
		assert.True(t, got[0].Reply.ShouldReply())
		assert.Equal(t, model.Credentials{InstagramUserID: "1784", EncryptedToken: "enc1"}, got[0].Credentials)

		assert.Equal(t, "a2", got[1].ID)
		cm, ok := got[1].Message.(model.CarouselMessage)
		require.True(t, ok)
		require.Len(t, cm.Elements, 1)
		assert.Equal(t, "Watch", cm.Elements[0].Title)
		assert.False(t, got[1].Reply.ShouldReply())

		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery("FROM automations").WillReturnRows(sqlmock.NewRows(columns))

		got, err := New(db, log.NewNop()).ListActiveByPost(context.Background(), "p1")
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()
		mock.ExpectQuery("FROM automations").WillReturnError(errors.New("connection refused"))

		_, err = New(db, log.NewNop()).ListActiveByPost(context.Background(), "p1")
		assert.ErrorIs(t, err, repository.ErrFailedToList)
	})
}
