package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSecretInReleaseMode(t *testing.T) {
	// No config file: mode defaults to release and secret is empty.
	t.Chdir(t.TempDir())
	t.Setenv("CONFIG_ENV", "test")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "secret")
}

func TestLoadFallsBackToDevSecretOutsideRelease(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config", "config.test.yaml"),
		[]byte("mode: debug\n"),
		0o644,
	))
	t.Chdir(dir)
	t.Setenv("CONFIG_ENV", "test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.Mode)
	assert.NotEmpty(t, cfg.Secret)
	assert.Equal(t, 8080, cfg.Port)
	assert.NotEmpty(t, cfg.Rooms)
}

func TestLoadConfiguredSecretWins(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "config", "config.test.yaml"),
		[]byte("mode: release\nsecret: from-file\n"),
		0o644,
	))
	t.Chdir(dir)
	t.Setenv("CONFIG_ENV", "test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.Secret)
}
