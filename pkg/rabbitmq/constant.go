package rabbitmq

import (
	"errors"
	"time"
)

const (
	RetryConnectionDelay   = 2 * time.Second
	RetryConnectionTimeout = 20 * time.Second
)

var (
	ErrConnectionTimeout = errors.New("connection timeout")
	ErrNotConnected      = errors.New("rabbitmq connection is not ready")
	ErrChannelClosed     = errors.New("rabbitmq channel is closed")
)
