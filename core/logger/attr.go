package logger

import (
	"log/slog"
)

// Attribute helpers use the empty Attr pattern for nil safety: a nil error
// or empty value yields an empty Attr that slog drops, so call sites never
// need explicit guards.

// Error creates an attribute for a single error under the key "error".
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component creates an attribute naming the emitting component.
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// CacheName creates an attribute for a composite cache name.
func CacheName(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("cache_name", name)
}

// CacheID creates an attribute for a cache identifier.
func CacheID(id string) slog.Attr {
	if id == "" {
		return slog.Attr{}
	}
	return slog.String("cache_id", id)
}

// Filename creates an attribute for an upload filename.
func Filename(name string) slog.Attr {
	if name == "" {
		return slog.Attr{}
	}
	return slog.String("filename", name)
}

// Size creates an attribute for a byte count. Negative (unknown) sizes
// yield an empty Attr.
func Size(n int64) slog.Attr {
	if n < 0 {
		return slog.Attr{}
	}
	return slog.Int64("size_bytes", n)
}
