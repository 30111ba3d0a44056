package upload

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dmitrymomot/uploadcache/core/cachekey"
)

// resolveCachePath joins root, cacheDir, identifier, and filename into an
// absolute, cleaned path and verifies the result stays inside the cache
// directory. Filename sanitization happens upstream; this check is the
// last line of defense when it is bypassed.
func resolveCachePath(root, cacheDir string, id cachekey.ID, filename string) (string, error) {
	base, err := filepath.Abs(filepath.Join(root, cacheDir))
	if err != nil {
		return "", fmt.Errorf("failed to resolve cache directory: %w", err)
	}

	full := filepath.Join(base, string(id), filepath.FromSlash(filename))

	rel, err := filepath.Rel(base, full)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("%w: path escapes cache directory", ErrInvalidParameter)
	}

	return full, nil
}
