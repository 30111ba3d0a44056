package sanitized

import "errors"

var (
	// ErrUnsupportedInput is returned when New receives a value it cannot
	// wrap as a file.
	ErrUnsupportedInput = errors.New("unsupported file input")
	// ErrUnsafeFilename is returned when a filename fails the safety
	// predicate (path separators, traversal sequences, control bytes).
	ErrUnsafeFilename = errors.New("unsafe filename")
	// ErrEmptyFile is returned when content is requested from a file that
	// has no backing input.
	ErrEmptyFile = errors.New("file is empty")
)
