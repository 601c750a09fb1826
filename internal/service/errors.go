package service

import "errors"

var (
	// ErrProfileRequired is returned when an operation needs a profile the
	// user has not created yet.
	ErrProfileRequired = errors.New("profile required")

	// ErrInvalidRecord wraps a domain validation failure.
	ErrInvalidRecord = errors.New("invalid record")
)
