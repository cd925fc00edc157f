package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "")
		t.Setenv("GIN_MODE", "")
		t.Setenv("BATCH_WORKERS", "")

		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTPPort)
		assert.Equal(t, "release", cfg.GinMode)
		assert.Equal(t, 4, cfg.BatchWorkers)
	})

	t.Run("reads overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("GIN_MODE", "debug")
		t.Setenv("BATCH_WORKERS", "12")

		cfg, err := LoadFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTPPort)
		assert.Equal(t, "debug", cfg.GinMode)
		assert.Equal(t, 12, cfg.BatchWorkers)
	})

	t.Run("rejects non-numeric workers", func(t *testing.T) {
		t.Setenv("BATCH_WORKERS", "many")
		_, err := LoadFromEnv()
		assert.Error(t, err)
	})

	t.Run("rejects zero workers", func(t *testing.T) {
		t.Setenv("BATCH_WORKERS", "0")
		_, err := LoadFromEnv()
		assert.Error(t, err)
	})

	t.Run("rejects unknown gin mode", func(t *testing.T) {
		t.Setenv("GIN_MODE", "verbose")
		_, err := LoadFromEnv()
		assert.Error(t, err)
	})
}
