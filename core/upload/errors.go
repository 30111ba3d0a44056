package upload

import "errors"

var (
	// ErrFormNotMultipart is returned when a bare path string is cached
	// while the session requires multipart form submissions. A plain
	// string path arriving through a non-multipart channel is treated as
	// attacker-controlled and is never persisted.
	ErrFormNotMultipart = errors.New("bare path input requires a multipart form submission")
	// ErrInvalidParameter is returned for a malformed cache identifier or
	// an unsafe filename. Always a programmer or protocol error (tampered
	// or corrupted cache-name token); never retried.
	ErrInvalidParameter = errors.New("invalid cache parameter")
)
