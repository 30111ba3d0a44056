package upload

import (
	"context"

	"github.com/dmitrymomot/uploadcache/core/sanitized"
)

// CacheHook intercepts a cache-write transition. It receives the sanitized
// file about to be (or just) persisted; returning an error aborts the
// enclosing operation.
type CacheHook func(ctx context.Context, f *sanitized.File) error

// RetrieveHook intercepts a cache-read transition. It receives the raw
// cache name; returning an error aborts the enclosing operation.
type RetrieveHook func(ctx context.Context, cacheName string) error

// hooks holds the four extension points wrapping the cache transitions.
// All hooks run synchronously in registration order; the first error wins.
type hooks struct {
	beforeCache    []CacheHook
	afterCache     []CacheHook
	beforeRetrieve []RetrieveHook
	afterRetrieve  []RetrieveHook
}

func (h hooks) runCache(ctx context.Context, chain []CacheHook, f *sanitized.File) error {
	for _, hook := range chain {
		if err := hook(ctx, f); err != nil {
			return err
		}
	}
	return nil
}

func (h hooks) runRetrieve(ctx context.Context, chain []RetrieveHook, name string) error {
	for _, hook := range chain {
		if err := hook(ctx, name); err != nil {
			return err
		}
	}
	return nil
}
