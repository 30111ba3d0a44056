package cachekey

import (
	"errors"
	"fmt"
	"strings"
)

// JoinName builds the composite cache name, the externally visible
// retrieval token for a cached upload.
func JoinName(id ID, filename string) string {
	return string(id) + "/" + filename
}

// SplitName splits a cache name into its identifier and original filename
// on the first path separator. The identifier segment is validated against
// the canonical format; the filename must be non-empty.
func SplitName(name string) (ID, string, error) {
	rawID, filename, ok := strings.Cut(name, "/")
	if !ok || filename == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}

	id, err := Parse(rawID)
	if err != nil {
		return "", "", errors.Join(ErrInvalidName, err)
	}

	return id, filename, nil
}
