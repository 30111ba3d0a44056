package config

import (
	"fmt"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var (
	// cache stores one parsed value per configuration type.
	cache sync.Map // reflect.Type -> any

	// dotenvOnce guards the one-time .env load. A missing file is fine;
	// the environment simply stands on its own.
	dotenvOnce sync.Once
)

// Load parses environment variables into cfg based on its `env` struct
// tags. The first call for a given type parses the environment; later
// calls return the cached value.
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilConfig
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	t := reflect.TypeOf(*cfg)
	if cached, ok := cache.Load(t); ok {
		*cfg = cached.(T)
		return nil
	}

	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("%w: %v", ErrParseFailed, err)
	}

	cache.Store(t, *cfg)
	return nil
}

// MustLoad is Load that panics on failure. Intended for application
// startup where a missing required variable should stop the process.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(err)
	}
}
