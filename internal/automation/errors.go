package automation

import "errors"

var (
	ErrLookupFailed     = errors.New("automation: lookup failed")
	ErrLedgerFailed     = errors.New("automation: ledger failed")
	ErrMalformedPayload = errors.New("automation: malformed payload")
)
