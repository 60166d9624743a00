package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaultsWithoutEnvFile(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")
	t.Setenv("REDIS_HOST", "")

	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "gpt-4o-mini", cfg.LLM.Model)
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Triage.CacheTTL)
	assert.Equal(t, 3, cfg.Storage.RetryAttempts)
	assert.False(t, cfg.LLM.Enabled())
	assert.False(t, cfg.Redis.Enabled())
}

func TestLoadConfigEnvOverridesAndBadDuration(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("LLM_TIMEOUT", "not-a-duration")
	t.Setenv("TRIAGE_CACHE_TTL", "30m")
	t.Setenv("STORAGE_RETRY_ATTEMPTS", "0")

	cfg, err := LoadConfigFrom(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.True(t, cfg.LLM.Enabled())
	assert.Equal(t, 5*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 30*time.Minute, cfg.Triage.CacheTTL)
	assert.Equal(t, 1, cfg.Storage.RetryAttempts)
}

func TestLoadConfigReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("DB_NAME=triage\nREDIS_HOST=cache\n"), 0o600))

	cfg, err := LoadConfigFrom(path)
	require.NoError(t, err)

	assert.Equal(t, "triage", cfg.DB.Name)
	assert.True(t, cfg.Redis.Enabled())
}
