package automation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validBody = `{
	"id": "msg-1",
	"timestamp": "2026-01-18T12:11:04.631004Z",
	"source": "instagram",
	"event_type": "comments",
	"account_id": "17841477945568576",
	"raw_payload": {
		"id": "17841477945568576",
		"time": 1768738264,
		"changes": [{
			"field": "comments",
			"value": {
				"from": {"id": "2151717415361060", "username": "user123"},
				"media": {"id": "18332496949209541", "media_product_type": "REELS"},
				"id": "18008498738674951",
				"text": "Location"
			}
		}]
	}
}`

func TestParseCommentEvent(t *testing.T) {
	t.Run("valid comment", func(t *testing.T) {
		ev, ok := ParseCommentEvent([]byte(validBody))
		require.True(t, ok)
		assert.Equal(t, "msg-1", ev.MessageID)
		assert.Equal(t, "17841477945568576", ev.AccountID)
		assert.Equal(t, "18008498738674951", ev.CommentID)
		assert.Equal(t, "Location", ev.CommentText)
		assert.Equal(t, "2151717415361060", ev.CommenterID)
		assert.Equal(t, "user123", ev.CommenterUsername)
		assert.Equal(t, "18332496949209541", ev.PostID)
		assert.Equal(t, "REELS", ev.MediaKind)
		assert.Equal(t, time.Date(2026, 1, 18, 12, 11, 4, 631004000, time.UTC), ev.OccurredAt.UTC())
	})

	t.Run("offset timestamp", func(t *testing.T) {
		ev, ok := ParseCommentEvent([]byte(`{"timestamp":"2026-01-18T14:11:04+02:00","raw_payload":{"changes":[{"field":"comments","value":{"id":"c"}}]}}`))
		require.True(t, ok)
		assert.True(t, ev.OccurredAt.Equal(time.Date(2026, 1, 18, 12, 11, 4, 0, time.UTC)))
	})

	t.Run("zone-less timestamp is UTC", func(t *testing.T) {
		for _, ts := range []string{"2026-01-18T12:11:04.631004", "2026-01-18 12:11:04.631004"} {
			ev, ok := ParseCommentEvent([]byte(`{"timestamp":"` + ts + `","raw_payload":{"changes":[{"field":"comments","value":{"id":"c"}}]}}`))
			require.True(t, ok)
			assert.Equal(t, time.Date(2026, 1, 18, 12, 11, 4, 631004000, time.UTC), ev.OccurredAt)
		}
	})

	t.Run("missing or bad timestamp falls back to now", func(t *testing.T) {
		before := time.Now().UTC().Add(-time.Second)
		for _, body := range []string{
			`{"raw_payload":{"changes":[{"field":"comments","value":{"id":"c"}}]}}`,
			`{"timestamp":"yesterday","raw_payload":{"changes":[{"field":"comments","value":{"id":"c"}}]}}`,
		} {
			ev, ok := ParseCommentEvent([]byte(body))
			require.True(t, ok)
			assert.True(t, ev.OccurredAt.After(before))
		}
	})

	t.Run("only the first change is used", func(t *testing.T) {
		ev, ok := ParseCommentEvent([]byte(`{"raw_payload":{"changes":[
			{"field":"comments","value":{"id":"first"}},
			{"field":"comments","value":{"id":"second"}}
		]}}`))
		require.True(t, ok)
		assert.Equal(t, "first", ev.CommentID)
	})

	rejected := map[string]string{
		"not json":          `not json`,
		"truncated":         `{"raw_payload":`,
		"empty object":      `{}`,
		"empty changes":     `{"raw_payload":{"changes":[]}}`,
		"non comment field": `{"raw_payload":{"changes":[{"field":"mentions","value":{}}]}}`,
		"wrong types":       `{"raw_payload":{"changes":"comments"}}`,
		"empty body":        ``,
	}
	for name, body := range rejected {
		t.Run(name, func(t *testing.T) {
			assert.NotPanics(t, func() {
				_, ok := ParseCommentEvent([]byte(body))
				assert.False(t, ok)
			})
		})
	}
}

func TestDecodeWebhookMessage(t *testing.T) {
	_, err := DecodeWebhookMessage([]byte(`[`))
	assert.ErrorIs(t, err, ErrMalformedPayload)

	msg, err := DecodeWebhookMessage([]byte(validBody))
	require.NoError(t, err)
	assert.Equal(t, "instagram", msg.Source)
	assert.Equal(t, int64(1768738264), msg.RawPayload.Time)
}
