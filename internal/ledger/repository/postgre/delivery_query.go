package postgre

import (
	"fmt"

	"automation-srv/internal/ledger"
	"automation-srv/internal/model"
)

const (
	tableDMSentLog       = "dm_sent_log"
	tableCommentReplyLog = "comment_reply_log"
)

// hashtext maps the tuple onto the int4 lock space; a collision only serializes two unrelated tuples.
const queryAdvisoryLock = `SELECT pg_advisory_xact_lock(hashtext($1))`

func tableFor(kind model.DeliveryKind) (string, error) {
	switch kind {
	case model.DeliveryKindDM:
		return tableDMSentLog, nil
	case model.DeliveryKindReply:
		return tableCommentReplyLog, nil
	default:
		return "", fmt.Errorf("%w: %q", ledger.ErrUnknownKind, kind)
	}
}

func buildHasSentQuery(table string) string {
	return fmt.Sprintf(`
		SELECT EXISTS (
			SELECT 1 FROM %s
			WHERE automation_id = $1 AND post_id = $2 AND commenter_user_id = $3 AND status = 'sent'
		)
	`, table)
}

// The partial unique index on dm_sent_log (status = 'sent') turns a second sent row into a no-op.
func buildInsertQuery(table string) string {
	return fmt.Sprintf(`
		INSERT INTO %s (
			id, automation_id, post_id, comment_id, commenter_user_id, status, sent_at,
			commenter_username, commenter_name, commenter_biography,
			commenter_followers_count, commenter_media_count, commenter_profile_picture_url
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT DO NOTHING
		RETURNING id
	`, table)
}
