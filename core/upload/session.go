package upload

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/dmitrymomot/uploadcache/core/cachekey"
	"github.com/dmitrymomot/uploadcache/core/logger"
	"github.com/dmitrymomot/uploadcache/core/sanitized"
	"github.com/dmitrymomot/uploadcache/core/storage"
)

// Session tracks one upload through the temporary cache. The cache
// identifier is generated on first write and fixed for the session's
// lifetime; filenames and the file reference are committed only after a
// transition fully succeeds.
//
// A session is single-threaded: one Cache or RetrieveFromCache call
// completes fully before the next starts. Distinct sessions share no
// mutable state and may run concurrently.
type Session struct {
	cfg   Config
	gen   *cachekey.Generator
	store storage.Storage // nil means direct filesystem persistence
	log   *slog.Logger
	hooks hooks

	cacheID          cachekey.ID
	filename         string
	originalFilename string
	file             *sanitized.File
}

// SessionOption configures a Session.
type SessionOption func(*Session)

// WithStorage sets a backend adapter. When configured, cached bytes are
// stored through the adapter keyed by cache name instead of moved or
// copied on the local filesystem.
func WithStorage(store storage.Storage) SessionOption {
	return func(s *Session) {
		s.store = store
	}
}

// WithGenerator replaces the identifier generator, letting tests pin the
// clock, pid, and random source.
func WithGenerator(gen *cachekey.Generator) SessionOption {
	return func(s *Session) {
		if gen != nil {
			s.gen = gen
		}
	}
}

// WithLogger attaches a logger for transition-level debug logging.
func WithLogger(log *slog.Logger) SessionOption {
	return func(s *Session) {
		if log != nil {
			s.log = log.With(logger.Component("uploadcache"))
		}
	}
}

// WithBeforeCache appends hooks invoked before each cache write.
func WithBeforeCache(hooks ...CacheHook) SessionOption {
	return func(s *Session) {
		s.hooks.beforeCache = append(s.hooks.beforeCache, hooks...)
	}
}

// WithAfterCache appends hooks invoked after each successful cache write.
func WithAfterCache(hooks ...CacheHook) SessionOption {
	return func(s *Session) {
		s.hooks.afterCache = append(s.hooks.afterCache, hooks...)
	}
}

// WithBeforeRetrieve appends hooks invoked before each cache read.
func WithBeforeRetrieve(hooks ...RetrieveHook) SessionOption {
	return func(s *Session) {
		s.hooks.beforeRetrieve = append(s.hooks.beforeRetrieve, hooks...)
	}
}

// WithAfterRetrieve appends hooks invoked after each successful cache read.
func WithAfterRetrieve(hooks ...RetrieveHook) SessionOption {
	return func(s *Session) {
		s.hooks.afterRetrieve = append(s.hooks.afterRetrieve, hooks...)
	}
}

// NewSession creates an upload session with the given cache configuration.
func NewSession(cfg Config, opts ...SessionOption) *Session {
	s := &Session{
		cfg: cfg.withDefaults(),
		gen: cachekey.NewGenerator(),
		log: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Cache persists a raw file-like input in the temporary cache.
//
// Empty inputs are a no-op: no state is mutated and no hook runs. Bare
// path strings are rejected with ErrFormNotMultipart when the session
// requires multipart submissions. The cache identifier is generated on the
// first write and reused by subsequent ones, so re-caching overwrites
// under the same identifier. Session state is committed only after the
// bytes are persisted.
func (s *Session) Cache(ctx context.Context, input any) error {
	f, err := sanitized.New(input)
	if err != nil {
		return errors.Join(ErrInvalidParameter, err)
	}
	if f.IsEmpty() {
		return nil
	}
	if f.IsPath() && s.cfg.RequireMultipart {
		return ErrFormNotMultipart
	}

	if err := s.hooks.runCache(ctx, s.hooks.beforeCache, f); err != nil {
		return err
	}

	id := s.cacheID
	if id == "" {
		id = s.gen.Generate()
	}

	filename := f.Filename()
	if sanitized.IsUnsafeFilename(filename) {
		return fmt.Errorf("%w: unsafe filename %q", ErrInvalidParameter, filename)
	}
	name := cachekey.JoinName(id, filename)

	cached := f
	if s.store != nil {
		src, err := f.Open()
		if err != nil {
			return err
		}
		err = s.store.Store(ctx, name, src)
		_ = src.Close()
		if err != nil {
			return err
		}
	} else {
		dst, err := resolveCachePath(s.cfg.Root, s.cfg.CacheDir, id, filename)
		if err != nil {
			return err
		}
		if s.cfg.MoveToCache {
			cached, err = f.MoveTo(dst, s.cfg.Permissions, s.cfg.DirPermissions)
		} else {
			cached, err = f.CopyTo(dst, s.cfg.Permissions, s.cfg.DirPermissions)
		}
		if err != nil {
			return err
		}
	}

	s.cacheID = id
	s.filename = filename
	s.originalFilename = filename
	s.file = cached

	s.log.DebugContext(ctx, "file cached",
		logger.CacheName(name),
		logger.Size(cached.Size()),
	)

	return s.hooks.runCache(ctx, s.hooks.afterCache, cached)
}

// RetrieveFromCache restores session state from a cache name previously
// produced by Cache. The identifier segment is validated before any I/O;
// a malformed or unsafe token fails with ErrInvalidParameter and leaves
// the session untouched.
func (s *Session) RetrieveFromCache(ctx context.Context, cacheName string) error {
	if err := s.hooks.runRetrieve(ctx, s.hooks.beforeRetrieve, cacheName); err != nil {
		return err
	}

	id, filename, err := cachekey.SplitName(cacheName)
	if err != nil {
		return errors.Join(ErrInvalidParameter, err)
	}
	if sanitized.IsUnsafeFilename(filename) {
		return fmt.Errorf("%w: unsafe filename %q", ErrInvalidParameter, filename)
	}

	path, err := resolveCachePath(s.cfg.Root, s.cfg.CacheDir, id, filename)
	if err != nil {
		return err
	}

	if s.store != nil {
		if err := s.fetchToPath(ctx, cacheName, path); err != nil {
			return err
		}
	}

	s.cacheID = id
	s.filename = filename
	s.originalFilename = filename
	s.file = sanitized.NewFromPath(path)

	s.log.DebugContext(ctx, "file retrieved from cache",
		logger.CacheName(cacheName),
	)

	return s.hooks.runRetrieve(ctx, s.hooks.afterRetrieve, cacheName)
}

// fetchToPath downloads a cache entry from the backend adapter and writes
// it to the resolved local path via a temp file, so a failed fetch never
// leaves a partial file behind.
func (s *Session) fetchToPath(ctx context.Context, cacheName, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), s.cfg.DirPermissions); err != nil {
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	src, err := s.store.Fetch(ctx, cacheName)
	if err != nil {
		return err
	}
	defer func() { _ = src.Close() }()

	tmp := path + "." + uuid.NewString() + ".tmp"
	out, err := os.OpenFile(tmp, os.O_WRONLY|os.O_CREATE|os.O_EXCL, s.cfg.Permissions)
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer func() {
		if err := os.Remove(tmp); err != nil && !os.IsNotExist(err) {
			s.log.Warn("failed to remove temp file", slog.String("path", tmp), logger.Error(err))
		}
	}()

	_, err = io.Copy(out, src)
	closeErr := out.Close()
	if err != nil {
		return fmt.Errorf("failed to write cache entry: %w", err)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close cache entry: %w", closeErr)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to finalize cache entry: %w", err)
	}
	return nil
}

// CacheID returns the session's identifier, or "" before the first
// successful cache or retrieve.
func (s *Session) CacheID() cachekey.ID { return s.cacheID }

// CacheName returns the composite retrieval token, or "" before the first
// successful cache or retrieve.
func (s *Session) CacheName() string {
	if s.cacheID == "" || s.filename == "" {
		return ""
	}
	return cachekey.JoinName(s.cacheID, s.filename)
}

// Filename returns the cached filename.
func (s *Session) Filename() string { return s.filename }

// OriginalFilename returns the sanitized basename of the uploaded file.
func (s *Session) OriginalFilename() string { return s.originalFilename }

// File returns the session's file reference, or nil before the first
// successful cache or retrieve.
func (s *Session) File() *sanitized.File { return s.file }

// Cached reports whether the session holds a cached file.
func (s *Session) Cached() bool { return s.cacheID != "" }
