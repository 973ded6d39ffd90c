package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should return defaults without environment", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, Default(), *cfg)
	})

	t.Run("Should override from environment", func(t *testing.T) {
		t.Setenv("GOSKEMA4J_LANG", "ja")
		t.Setenv("GOSKEMA4J_FORMAT", "json")
		t.Setenv("GOSKEMA4J_FAIL_FAST", "true")
		t.Setenv("GOSKEMA4J_MAX_BYTES", "1024")
		t.Setenv("GOSKEMA4J_LOG_LEVEL", "debug")
		t.Setenv("GOSKEMA4J_LOG_JSON", "1")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "ja", cfg.Lang)
		assert.Equal(t, "json", cfg.Format)
		assert.True(t, cfg.FailFast)
		assert.Equal(t, int64(1024), cfg.MaxBytes)
		assert.Equal(t, "debug", cfg.Log.Level)
		assert.True(t, cfg.Log.JSON)
	})

	t.Run("Should reject unsupported values", func(t *testing.T) {
		t.Setenv("GOSKEMA4J_LANG", "fr")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "configuration validation failed")
	})
}

func TestTransformEnvKey(t *testing.T) {
	k, v := transformEnvKey("GOSKEMA4J_LOG_LEVEL", "info")
	assert.Equal(t, "log.level", k)
	assert.Equal(t, "info", v)

	k, _ = transformEnvKey("GOSKEMA4J_LANG", "en")
	assert.Equal(t, "lang", k)
}
