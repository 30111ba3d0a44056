package sanitized

import (
	"path"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// unsafeChars matches everything outside the conservative whitelist kept
// after sanitization. Anything else becomes an underscore.
var unsafeChars = regexp.MustCompile(`[^A-Za-z0-9_.\-+ ]`)

// SanitizeFilename reduces a client-supplied filename to a safe basename.
// The input is NFC-normalized, stripped of any directory components
// (both slash conventions), and filtered to a conservative character set.
// Names that sanitize to nothing usable come back as "_" so the result is
// always a valid path segment.
func SanitizeFilename(name string) string {
	name = norm.NFC.String(name)
	name = strings.ReplaceAll(name, "\\", "/")
	name = path.Base(name)
	name = strings.TrimSpace(name)
	name = unsafeChars.ReplaceAllString(name, "_")

	if name == "" || strings.Trim(name, ".") == "" {
		return "_"
	}
	return name
}

// IsUnsafeFilename reports whether name must not be used as a cache path
// segment. Empty names, dot entries, path separators, and control bytes
// (null bytes included) are all rejected.
func IsUnsafeFilename(name string) bool {
	if name == "" || name == "." || name == ".." {
		return true
	}
	if strings.ContainsAny(name, `/\`) {
		return true
	}
	for _, r := range name {
		if r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}
