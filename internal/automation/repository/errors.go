package repository

import "errors"

var (
	ErrFailedToList = errors.New("failed to list")
	ErrFailedToScan = errors.New("failed to scan")
)
