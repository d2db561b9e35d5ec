package config_test

import (
	"brandkit/internal/config"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_FileAndEnvOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(`
environment: production
registrar:
  token: from-file
  retries: 2
worker:
  maxAttempts: 7
`), 0o600))
	t.Setenv("REGISTRAR_API_TOKEN", "from-env")

	cfg, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, "production", cfg.Environment)
	require.Equal(t, "from-env", cfg.Registrar.Token)
	require.Equal(t, 2, cfg.Registrar.Retries)
	require.Equal(t, 7, cfg.Worker.MaxAttempts)

	// defaults
	require.Equal(t, time.Second, cfg.Registrar.RetryBase)
	require.Equal(t, 10*time.Second, cfg.Registrar.RetryCap)
	require.Equal(t, "gemini-2.0-flash", cfg.Generation.Model)
	require.Equal(t, 5*time.Minute, cfg.Cache.TTL)
	require.False(t, cfg.Cache.Enabled)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := config.Load(filepath.Join(t.TempDir(), "missing.yml"))
	require.Error(t, err)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "key")
	t.Setenv("WORKER_MAX_WORKERS", "3")

	cfg, err := config.LoadEnv()
	require.NoError(t, err)
	require.Equal(t, "key", cfg.Generation.APIKey)
	require.Equal(t, 3, cfg.Worker.MaxWorkers)
	require.Equal(t, ":8080", cfg.HTTP.Addr)
}
