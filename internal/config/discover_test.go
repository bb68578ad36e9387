package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPath(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "")

	path := DefaultPath()
	assert.Contains(t, path, filepath.Join(".config", "viewlog", "config.toml"))
}

func TestDefaultPath_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/custom/config")
	assert.Equal(t, "/custom/config/viewlog/config.toml", DefaultPath())
}

func TestDiscover_VIEWLOG_CONFIG(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom.toml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("[user]"), 0o644))
	t.Setenv("VIEWLOG_CONFIG", cfgPath)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, cfgPath, path)
}

func TestDiscover_VIEWLOG_CONFIG_NotFound(t *testing.T) {
	t.Setenv("VIEWLOG_CONFIG", "/nonexistent/config.toml")

	_, err := Discover()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "VIEWLOG_CONFIG")
	assert.NotErrorIs(t, err, ErrNotFound, "an explicit path must exist")
}

func TestDiscover_CurrentDir(t *testing.T) {
	t.Setenv("VIEWLOG_CONFIG", "")
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, "viewlog.toml"), []byte("[user]"), 0o644))
	t.Chdir(tmp)

	path, err := Discover()
	require.NoError(t, err)
	assert.Equal(t, "viewlog.toml", filepath.Base(path))
}

func TestDiscover_NotFound(t *testing.T) {
	t.Setenv("VIEWLOG_CONFIG", "")
	t.Setenv("XDG_CONFIG_HOME", "/nonexistent/xdg")
	t.Chdir(t.TempDir())

	_, err := Discover()
	if _, statErr := os.Stat("/etc/viewlog/config.toml"); statErr == nil {
		t.Skip("system config present")
	}
	require.ErrorIs(t, err, ErrNotFound)
	assert.Contains(t, err.Error(), "checked")
}
