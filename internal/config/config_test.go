package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thywilljoshua/proofreader/internal/config"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{
		"PROOFREAD_GEMINI_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY",
		"PROOFREAD_SERVER_ADDR", "PORT",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "gemini-2.5-flash", cfg.Gemini.Model)
	assert.Equal(t, 60*time.Second, cfg.Gemini.Timeout())
	assert.Equal(t, 2, cfg.Gemini.MaxRetries)
	assert.Equal(t, 4, cfg.Review.Concurrency)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, int64(20<<20), cfg.Server.MaxUploadBytes())
	assert.Equal(t, "info", cfg.Log.Level)
	assert.ErrorIs(t, cfg.Validate(), config.ErrConfigurationMissing)
}

func TestLoad_FromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("PROOFREAD_GEMINI_API_KEY", "secret")
	t.Setenv("PROOFREAD_GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("PROOFREAD_REVIEW_CONCURRENCY", "8")
	t.Setenv("PROOFREAD_SERVER_WRITE_TIMEOUT", "2m")
	t.Setenv("PROOFREAD_LOG_FORMAT", "json")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Gemini.APIKey)
	assert.Equal(t, "gemini-2.0-flash", cfg.Gemini.Model)
	assert.Equal(t, 8, cfg.Review.Concurrency)
	assert.Equal(t, 2*time.Minute, cfg.Server.WriteTimeout)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_GoogleAPIKeyFallback(t *testing.T) {
	clearEnv(t)
	t.Setenv("GOOGLE_API_KEY", "from-google-env")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "from-google-env", cfg.Gemini.APIKey)
}

func TestLoad_PortOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}
