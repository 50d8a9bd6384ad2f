package log

const (
	ModeProduction  = "production"
	ModeDevelopment = "debug"

	EncodingConsole = "console"
	EncodingJSON    = "json"

	// ctxKeyMessageID carries the broker message id so every line of one processing pass can be correlated.
	ctxKeyMessageID ctxKey = "message_id"
)

type ctxKey string
