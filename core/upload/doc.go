// Package upload implements the temporary-cache state transitions for
// file uploads: assigning a collision-resistant cache identifier, writing
// an incoming file under a two-segment cache path, and restoring it later
// from the composite cache name.
//
// # Cache layout
//
// Cached files live at <root>/<cacheDir>/<identifier>/<filename>. The
// externally visible retrieval token is the cache name
// "<identifier>/<filename>", safe to hand to a client for a later
// retrieval request.
//
// # Writing and reading
//
//	sess := upload.NewSession(upload.Config{Root: "/srv", CacheDir: "uploads/tmp"})
//
//	err := sess.Cache(ctx, fileHeader) // any file-like input
//	token := sess.CacheName()          // "20240102-0304-555-0042/photo.jpg"
//
//	// later, typically in another request
//	sess2 := upload.NewSession(cfg)
//	err = sess2.RetrieveFromCache(ctx, token)
//
// Empty inputs are ignored without side effects. A bare path string is
// rejected with ErrFormNotMultipart when Config.RequireMultipart is set,
// before any I/O. Re-caching on the same session reuses the identifier.
//
// # Backends
//
// Without an adapter the session moves or copies files directly on the
// local filesystem (Config.MoveToCache selects the policy). With
// WithStorage an adapter persists the bytes keyed by cache name, and
// retrieval downloads them back to the resolved local path.
//
// # Hooks
//
// Four extension points wrap the transitions: before/after cache and
// before/after retrieve. Hooks run synchronously in registration order; a
// hook error aborts the operation, and state mutated by the transition is
// committed only after persistence succeeds, so an aborted call leaves the
// session as it was.
package upload
