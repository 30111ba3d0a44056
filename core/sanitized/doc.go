// Package sanitized wraps raw file-like upload inputs behind a single File
// type with a known-safe filename.
//
// A File can be backed by an on-disk path, an in-memory byte buffer, a
// generic io.Reader, or a *multipart.FileHeader from a parsed form. The
// wrapper normalizes the client-supplied filename, exposes uniform read
// access, and moves or copies the content to a destination path with
// explicit permission bits.
//
//	f, err := sanitized.New(fileHeader)
//	if err != nil {
//		return err
//	}
//	if f.IsEmpty() {
//		return nil
//	}
//	cached, err := f.CopyTo("/srv/uploads/tmp/20240102-0304-555-0042/photo.jpg", 0o644, 0o755)
//
// IsPath reports whether the original input was a bare path string. Bare
// paths arriving through a non-multipart channel are a path-traversal
// vector, so callers enforcing a multipart-only policy check this
// predicate before any I/O happens.
//
// SanitizeFilename and IsUnsafeFilename implement the filename-safety
// contract: sanitization is a pure function, and the predicate is the
// check every filename must pass before it is used as a path segment.
package sanitized
