package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MODEL_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8000", cfg.HTTP.Addr)
	assert.Equal(t, "test-key", cfg.Model.APIKey)
	assert.Equal(t, defaultModelBaseURL, cfg.Model.BaseURL)
	assert.Equal(t, defaultModelName, cfg.Model.Name)
	assert.Equal(t, 60, cfg.Model.TimeoutSeconds)
	assert.False(t, cfg.Journal.Enabled())
	assert.False(t, cfg.Telegram.Enabled())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MODEL_API_KEY", "k")
	t.Setenv("HTTP_ADDR", ":9000")
	t.Setenv("MODEL_NAME", "some-vision-model")
	t.Setenv("MODEL_TIMEOUT_SECONDS", "30")
	t.Setenv("JOURNAL_DB_URL", "http://db.example.com:4001")
	t.Setenv("JOURNAL_DB_USER", "svc")
	t.Setenv("JOURNAL_DB_PASS", "secret")
	t.Setenv("TELEGRAM_BOT_TOKEN", "tok")
	t.Setenv("TELEGRAM_CHAT_ID", "42")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.HTTP.Addr)
	assert.Equal(t, "some-vision-model", cfg.Model.Name)
	assert.Equal(t, 30, cfg.Model.TimeoutSeconds)
	assert.True(t, cfg.Journal.Enabled())
	assert.Equal(t, "http://db.example.com:4001", cfg.Journal.DBURL)
	assert.True(t, cfg.Telegram.Enabled())
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing api key", func(t *testing.T) {
		// Viper treats an empty env value as unset, and t.Setenv
		// restores whatever the process had afterwards.
		t.Setenv("MODEL_API_KEY", "")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "model api key")
	})

	t.Run("store credentials must pair", func(t *testing.T) {
		t.Setenv("MODEL_API_KEY", "k")
		t.Setenv("JOURNAL_DB_USER", "svc")
		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "set together")
	})
}

func TestPromptLoader(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("preamble: Custom persona.\nmodel: other-model\ntemperature: 0.3\n"), 0o644))

	logger := testLogger()
	loader, err := NewPromptLoader(path, logger)
	require.NoError(t, err)

	snap := loader.Snapshot()
	assert.Equal(t, "Custom persona.", snap.Preamble)
	assert.Equal(t, "other-model", snap.Model)
	require.NotNil(t, snap.Temperature)
	assert.Equal(t, 0.3, *snap.Temperature)
}

func TestPromptLoaderRejectsBadTemperature(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "prompt.yaml")
	require.NoError(t, os.WriteFile(path, []byte("temperature: 9.5\n"), 0o644))

	_, err := NewPromptLoader(path, testLogger())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestPromptLoaderMissingFile(t *testing.T) {
	_, err := NewPromptLoader(filepath.Join(t.TempDir(), "absent.yaml"), testLogger())
	require.Error(t, err)
}
