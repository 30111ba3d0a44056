package storage

import (
	"context"
	"io"
)

// Storage is the backend contract for cached upload bytes. Names are
// composite cache names ("identifier/filename"); implementations treat
// them as opaque keys apart from basic safety validation.
type Storage interface {
	// Store persists the bytes read from r under name, overwriting any
	// existing entry.
	Store(ctx context.Context, name string, r io.Reader) error

	// Fetch returns a reader over the bytes stored under name. The caller
	// owns the closer. A missing entry is reported as ErrFileNotFound.
	Fetch(ctx context.Context, name string) (io.ReadCloser, error)

	// Exists reports whether an entry is stored under name.
	Exists(ctx context.Context, name string) bool
}
