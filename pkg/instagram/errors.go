package instagram

import (
	"errors"
	"fmt"
)

var (
	ErrUnexpectedStatus = errors.New("instagram: unexpected status")
	ErrRateLimited      = errors.New("instagram: rate limiter wait failed")
	ErrBreakerOpen      = errors.New("instagram: circuit breaker open")
	ErrInvalidResponse  = errors.New("instagram: invalid response body")
)

// APIError is a non-2xx Graph API response.
type APIError struct {
	StatusCode int
	Code       int
	Subcode    int
	Type       string
	Message    string
	FBTraceID  string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("instagram: status %d", e.StatusCode)
	}
	return fmt.Sprintf("instagram: status %d: %s (code %d)", e.StatusCode, e.Message, e.Code)
}

func (e *APIError) Is(target error) bool {
	return target == ErrUnexpectedStatus
}

// Retryable reports whether the failure is on the Graph API side.
func (e *APIError) Retryable() bool {
	return e.StatusCode >= 500 || e.StatusCode == 429
}
