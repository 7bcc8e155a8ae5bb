package config

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadServer_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SHUTDOWN_TIMEOUT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadServer()
	require.NoError(t, err)
	require.Equal(t, "8080", cfg.Port)
	require.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestLoadServer_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("SHUTDOWN_TIMEOUT", "250ms")

	cfg, err := LoadServer()
	require.NoError(t, err)
	require.Equal(t, "9000", cfg.Port)
	require.Equal(t, 250*time.Millisecond, cfg.ShutdownTimeout)
}

func TestLoadServer_InvalidDuration(t *testing.T) {
	t.Setenv("SHUTDOWN_TIMEOUT", "soon")

	_, err := LoadServer()
	require.Error(t, err)
}

func TestLoadChat_MissingKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	_, err := LoadChat()
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadChat_BlankKey(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "   ")

	_, err := LoadChat()
	require.ErrorIs(t, err, ErrMissingAPIKey)
}

func TestLoadChat_Defaults(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("OPENAI_BASE_URL", "")
	t.Setenv("OPENAI_MODEL", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, err := LoadChat()
	require.NoError(t, err)
	require.Equal(t, "sk-test", cfg.APIKey)
	require.Equal(t, "https://api.openai.com/v1", cfg.BaseURL)
	require.Equal(t, "gpt-4o-mini", cfg.Model)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestChat_StringHidesKey(t *testing.T) {
	cfg := Chat{APIKey: "sk-secret", BaseURL: "http://x", Model: "m"}

	require.NotContains(t, cfg.String(), "sk-secret")
	require.NotContains(t, fmt.Sprintf("%v", cfg), "sk-secret")
	require.NotContains(t, fmt.Sprintf("%+v", cfg), "sk-secret")
}
