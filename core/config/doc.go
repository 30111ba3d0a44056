// Package config provides type-safe environment variable loading with
// per-type caching. A .env file, when present, is loaded once before the
// first parse; parsing itself uses the caarlos0/env struct tags.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/uploadcache/core/config"
//
//	type CacheConfig struct {
//		Root     string `env:"UPLOADCACHE_ROOT"`
//		CacheDir string `env:"UPLOADCACHE_DIR" envDefault:"uploads/tmp"`
//	}
//
//	func main() {
//		var cfg CacheConfig
//		if err := config.Load(&cfg); err != nil {
//			log.Fatal(err)
//		}
//		// or panic on failure during startup
//		config.MustLoad(&cfg)
//	}
//
// Each configuration type is parsed once per process; subsequent Load
// calls for the same type return the cached value, so independently
// initialized components see identical configuration.
package config
