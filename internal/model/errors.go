package model

import "errors"

var (
	ErrUnknownTrigger     = errors.New("unknown trigger type")
	ErrUnknownMessageType = errors.New("unknown message type")
	ErrInvalidMessage     = errors.New("invalid message content")
)
