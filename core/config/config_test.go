package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/uploadcache/core/config"
)

func TestLoad_Defaults(t *testing.T) {
	type defaultsConfig struct {
		Dir  string `env:"TEST_CONFIG_DEFAULTS_DIR" envDefault:"uploads/tmp"`
		Move bool   `env:"TEST_CONFIG_DEFAULTS_MOVE" envDefault:"false"`
	}

	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "uploads/tmp", cfg.Dir)
	assert.False(t, cfg.Move)
}

func TestLoad_FromEnvironment(t *testing.T) {
	type envConfig struct {
		Root string `env:"TEST_CONFIG_ENV_ROOT"`
	}

	t.Setenv("TEST_CONFIG_ENV_ROOT", "/srv/uploads")

	var cfg envConfig
	require.NoError(t, config.Load(&cfg))

	assert.Equal(t, "/srv/uploads", cfg.Root)
}

func TestLoad_Required(t *testing.T) {
	type requiredConfig struct {
		Bucket string `env:"TEST_CONFIG_REQUIRED_BUCKET,required"`
	}

	var cfg requiredConfig
	err := config.Load(&cfg)

	require.Error(t, err)
	assert.ErrorIs(t, err, config.ErrParseFailed)
}

func TestLoad_CachedPerType(t *testing.T) {
	type cachedConfig struct {
		Value string `env:"TEST_CONFIG_CACHED_VALUE" envDefault:"first"`
	}

	var first cachedConfig
	require.NoError(t, config.Load(&first))
	require.Equal(t, "first", first.Value)

	// A later env change is invisible: the type was already cached.
	t.Setenv("TEST_CONFIG_CACHED_VALUE", "second")

	var second cachedConfig
	require.NoError(t, config.Load(&second))
	assert.Equal(t, "first", second.Value)
}

func TestLoad_Nil(t *testing.T) {
	err := config.Load[struct{}](nil)

	assert.ErrorIs(t, err, config.ErrNilConfig)
}

func TestMustLoad_PanicsOnFailure(t *testing.T) {
	type mustConfig struct {
		Token string `env:"TEST_CONFIG_MUST_TOKEN,required"`
	}

	assert.Panics(t, func() {
		var cfg mustConfig
		config.MustLoad(&cfg)
	})
}
