package upload

import "io/fs"

// Default permission bits for cached files and the directories holding
// them.
const (
	DefaultPermissions    fs.FileMode = 0o644
	DefaultDirPermissions fs.FileMode = 0o755
)

// Config controls where and how a session persists cached uploads.
type Config struct {
	// Root is the base directory the cache tree lives under. Defaults to
	// the current working directory.
	Root string `env:"UPLOADCACHE_ROOT"`

	// CacheDir is the cache subtree under Root.
	CacheDir string `env:"UPLOADCACHE_DIR" envDefault:"uploads/tmp"`

	// MoveToCache moves inputs into the cache instead of copying them.
	// Moving deletes the source after transfer; copying retains it.
	MoveToCache bool `env:"UPLOADCACHE_MOVE_TO_CACHE" envDefault:"false"`

	// RequireMultipart rejects bare path-string inputs with
	// ErrFormNotMultipart before any I/O.
	RequireMultipart bool `env:"UPLOADCACHE_REQUIRE_MULTIPART" envDefault:"false"`

	// Permissions applies to cached files; DirPermissions to created
	// directories. Zero values fall back to the package defaults.
	Permissions    fs.FileMode
	DirPermissions fs.FileMode
}

// withDefaults fills in zero-valued fields.
func (c Config) withDefaults() Config {
	if c.Root == "" {
		c.Root = "."
	}
	if c.CacheDir == "" {
		c.CacheDir = "uploads/tmp"
	}
	if c.Permissions == 0 {
		c.Permissions = DefaultPermissions
	}
	if c.DirPermissions == 0 {
		c.DirPermissions = DefaultDirPermissions
	}
	return c
}
