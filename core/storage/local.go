package storage

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uploadcache/core/logger"
)

// Compile-time check that Local implements the Storage interface.
var _ Storage = (*Local)(nil)

// Local stores cached uploads under a directory on the local filesystem.
// Writes are atomic: content lands in a uniquely named temp file that is
// renamed into place, so readers never observe partial entries.
type Local struct {
	dir string // absolute root of the storage tree
	log *slog.Logger
}

// LocalOption configures a Local storage instance.
type LocalOption func(*Local)

// WithLogger sets the logger used for non-fatal housekeeping warnings.
func WithLogger(log *slog.Logger) LocalOption {
	return func(l *Local) {
		if log != nil {
			l.log = log
		}
	}
}

// NewLocal creates a local storage rooted at dir, creating it if needed.
func NewLocal(dir string, opts ...LocalOption) (*Local, error) {
	if dir == "" {
		return nil, ErrInvalidConfig
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve storage directory: %w", err)
	}
	if err := os.MkdirAll(abs, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	l := &Local{
		dir: abs,
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l, nil
}

// Store writes the bytes from r under name, replacing any existing entry.
func (l *Local) Store(ctx context.Context, name string, r io.Reader) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dst, err := l.path(name)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("failed to create entry directory: %w", err)
	}

	// Unique temp name keeps concurrent writers of the same entry from
	// clobbering each other's in-flight data.
	tmp := dst + "." + uuid.NewString() + ".tmp"
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
			l.log.Warn("failed to remove temp file", slog.String("path", tmp), logger.Error(err))
		}
	}()

	_, err = io.Copy(out, r)
	closeErr := out.Close()
	if err != nil {
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close temp file: %w", closeErr)
	}

	if err := os.Rename(tmp, dst); err != nil {
		return fmt.Errorf("failed to finalize entry: %w", err)
	}
	return nil
}

// Fetch opens the entry stored under name.
func (l *Local) Fetch(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	path, err := l.path(name)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, name)
		}
		return nil, fmt.Errorf("failed to open entry: %w", err)
	}
	return f, nil
}

// Exists reports whether an entry is stored under name.
func (l *Local) Exists(ctx context.Context, name string) bool {
	if ctx.Err() != nil {
		return false
	}

	path, err := l.path(name)
	if err != nil {
		return false
	}

	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}

// path maps a cache name onto the storage tree, rejecting names that
// could address entries outside it.
func (l *Local) path(name string) (string, error) {
	if name == "" || strings.HasPrefix(name, "/") || strings.Contains(name, "..") {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(l.dir, filepath.FromSlash(name)), nil
}
