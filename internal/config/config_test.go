package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestLoadExplicitPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, path, `
browser:
  command: "firefox --new-tab"
urls:
  encode: true
log:
  level: debug
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "firefox --new-tab", cfg.Browser.Command)
	assert.True(t, cfg.URLs.Encode)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, path, cfg.Source)
}

func TestLoadExplicitPathMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	writeFile(t, path, "browser: [unterminated\n")

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to unmarshal config yaml")
}

func TestLoadSearchOrder(t *testing.T) {
	home := t.TempDir()
	work := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	oldWd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(work))
	t.Cleanup(func() { _ = os.Chdir(oldWd) })

	t.Run("defaults when nothing exists", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "", cfg.Source)
		assert.Equal(t, "warn", cfg.Log.Level)
		assert.False(t, cfg.URLs.Encode)
	})

	homeConfig := filepath.Join(home, ".ubiq", "config.yaml")
	writeFile(t, homeConfig, "browser:\n  command: chromium\n")

	t.Run("home directory", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, homeConfig, cfg.Source)
		assert.Equal(t, "chromium", cfg.Browser.Command)
	})

	writeFile(t, filepath.Join(work, "ubiq.yaml"), "browser:\n  command: lynx\nlog:\n  level: error\n")

	t.Run("working directory wins", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, "ubiq.yaml", cfg.Source)
		assert.Equal(t, "lynx", cfg.Browser.Command)
		assert.Equal(t, "error", cfg.Log.Level)
	})
}
