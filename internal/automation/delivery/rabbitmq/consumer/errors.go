package consumer

import "errors"

var ErrProcessPanic = errors.New("panic while processing message")
