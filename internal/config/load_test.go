package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "viewlog.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[database]
path = "/var/lib/viewlog/viewlog.db"
unique_records = false

[user]
name = "ana"

[report]
dir = "/tmp/reports"
name = "reporte"
title = ":: VISTOS ::"

[log]
level = "debug"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "/var/lib/viewlog/viewlog.db", cfg.Database.Path)
	assert.False(t, cfg.Database.UniqueRecords)
	assert.Equal(t, "ana", cfg.User.Name)
	assert.Equal(t, "reporte", cfg.Report.Name)
	assert.Equal(t, "txt", cfg.Report.Extension, "default applied")
	assert.Equal(t, ":: VISTOS ::", cfg.Report.Title)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[user]
name = "ana"
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Database.Path != "./data/viewlog.db" {
		t.Errorf("expected default database path, got %s", cfg.Database.Path)
	}
	if !cfg.Database.UniqueRecords {
		t.Errorf("expected unique records by default")
	}
	if cfg.Report.Name != "report" || cfg.Report.Extension != "txt" || cfg.Report.Dir != "." {
		t.Errorf("unexpected report defaults: %+v", cfg.Report)
	}
	if cfg.Log.Level != "warn" {
		t.Errorf("expected default log level warn, got %s", cfg.Log.Level)
	}
}

func TestLoad_MissingEnvVar(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[user]
name = "${VIEWLOG_TEST_MISSING_USER}"
`)

	_, err := Load(path)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"VIEWLOG_TEST_MISSING_USER"}, cfgErr.Missing)
}

func TestLoad_DotenvFallback(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("VIEWLOG_TEST_DOTENV_USER=bea\n"), 0o644))
	path := writeConfig(t, dir, `
[user]
name = "${VIEWLOG_TEST_DOTENV_USER}"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "bea", cfg.User.Name)

	_, set := os.LookupEnv("VIEWLOG_TEST_DOTENV_USER")
	assert.False(t, set, "process environment is not modified")
}

func TestLoad_ValidationError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[user]
name = "ana"

[log]
level = "verbose"
`)

	_, err := Load(path)
	if err == nil {
		t.Fatal("expected error for invalid log level")
	}
	if !strings.Contains(err.Error(), "log.level") {
		t.Errorf("expected log.level in error, got %v", err)
	}
}

func TestLoad_ParseError(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "[user\nname = ")
	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing config")
}

func TestLoadWithoutValidation(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
[log]
level = "verbose"
`)

	cfg, err := LoadWithoutValidation(path)
	require.NoError(t, err)
	assert.Equal(t, "verbose", cfg.Log.Level)
}

func TestDefault(t *testing.T) {
	t.Setenv("USER", "carla")
	cfg := Default()
	assert.Equal(t, "carla", cfg.User.Name)
	assert.True(t, cfg.Database.UniqueRecords)
	assert.Empty(t, cfg.Validate())

	t.Setenv("USER", "")
	assert.Equal(t, "viewer", Default().User.Name)
}

func TestLoad_CommentedVariableNotMissing(t *testing.T) {
	path := writeConfig(t, t.TempDir(), `
# Override with ${VIEWLOG_TEST_UNSET_IN_COMMENT} if needed.
[user]
name = "ana" # ${VIEWLOG_TEST_UNSET_TRAILING}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "ana", cfg.User.Name)
}
