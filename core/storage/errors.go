package storage

import "errors"

// Shared error sentinels for storage backends. Implementations map their
// transport-specific failures onto these so callers can use errors.Is
// without knowing the backend.
var (
	ErrInvalidConfig      = errors.New("invalid storage configuration")
	ErrInvalidName        = errors.New("invalid cache name")
	ErrFileNotFound       = errors.New("file not found")
	ErrBucketNotFound     = errors.New("bucket not found")
	ErrAccessDenied       = errors.New("access denied")
	ErrOperationTimeout   = errors.New("operation timed out")
	ErrOperationCanceled  = errors.New("operation canceled")
	ErrRequestTimeout     = errors.New("request timeout")
	ErrServiceUnavailable = errors.New("service temporarily unavailable")
)
