// Package storage defines the pluggable backend contract for persisting
// cached upload bytes by cache name, plus a local-filesystem
// implementation.
//
// A backend stores opaque byte streams under composite cache names of the
// form "identifier/filename". Backends are interchangeable: the upload
// session only branches on whether an adapter is configured, never on
// which one.
//
//	store, err := storage.NewLocal("/srv/uploads/tmp")
//	if err != nil {
//		return err
//	}
//	err = store.Store(ctx, "20240102-0304-555-0042/photo.jpg", r)
//
// Remote implementations live under integration/storage (S3, Redis) and
// map their transport failures onto the shared error sentinels in this
// package, so callers can branch with errors.Is regardless of backend.
package storage
