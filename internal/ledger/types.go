package ledger

import (
	"strings"

	"automation-srv/internal/model"
)

// TupleKey identifies the (automation, post, commenter) combination a DM is deduplicated on.
type TupleKey struct {
	AutomationID string
	PostID       string
	CommenterID  string
}

// LockKey is the string hashed into the Postgres advisory lock id.
func (k TupleKey) LockKey() string {
	return strings.Join([]string{k.AutomationID, k.PostID, k.CommenterID}, ":")
}

// RecordOptions are the fields of one ledger row.
type RecordOptions struct {
	Kind         model.DeliveryKind
	AutomationID string
	PostID       string
	CommenterID  string
	CommentID    string
	Status       model.DeliveryStatus
	Profile      model.CommenterProfile
}
