package response

const (
	MessageSuccess       = "Success"
	MessageInternalError = "Internal server error"

	// ErrorCodeUnavailable is reported with HTTP 503 when a dependency is down.
	ErrorCodeUnavailable = 503
	ErrorCodeInternal    = 500
)
