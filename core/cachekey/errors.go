package cachekey

import "errors"

var (
	// ErrInvalidIdentifier is returned when a raw string does not match the
	// YYYYMMDD-HHMM-PID-RAND identifier format.
	ErrInvalidIdentifier = errors.New("invalid cache identifier")
	// ErrInvalidName is returned when a cache name cannot be split into an
	// identifier and a filename.
	ErrInvalidName = errors.New("invalid cache name")
)
