package postgre

import (
	"database/sql"
	"time"

	"automation-srv/internal/ledger"
	"automation-srv/internal/model"
)

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt(n *int) sql.NullInt64 {
	if n == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*n), Valid: true}
}

func buildInsertArgs(id string, now time.Time, opt ledger.RecordOptions) []any {
	p := opt.Profile
	return []any{
		id, opt.AutomationID, opt.PostID, opt.CommentID, opt.CommenterID, string(opt.Status), now,
		nullString(p.Username), nullString(p.Name), nullString(p.Biography),
		nullInt(p.FollowersCount), nullInt(p.MediaCount), nullString(p.ProfilePictureURL),
	}
}

func buildRecord(id string, now time.Time, opt ledger.RecordOptions) model.DeliveryRecord {
	return model.DeliveryRecord{
		ID:           id,
		Kind:         opt.Kind,
		AutomationID: opt.AutomationID,
		PostID:       opt.PostID,
		CommenterID:  opt.CommenterID,
		CommentID:    opt.CommentID,
		Status:       opt.Status,
		Profile:      opt.Profile,
		SentAt:       now,
	}
}
