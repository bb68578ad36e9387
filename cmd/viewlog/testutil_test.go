package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testCatalog = `
[[movie]]
title = "Inception"
genre = "Sci-Fi"
creator = "Nolan"
duration = 148
year = 2010

[[series]]
title = "Orbit"
genre = "Sci-Fi"
creator = "Vega"

  [[series.chapter]]
  title = "Launch"
  duration = 45
  year = 2020

  [[series.chapter]]
  title = "Drift"
  duration = 47
  year = 2020

[[book]]
title = "Dune"
editorial = "Chilton"
edition_date = 1965-08-01
authors = ["Frank Herbert"]
pages = ["Arrakis."]

[[magazine]]
title = "Orbit Weekly"
`

// env is an isolated workspace: its own config, database and report dir.
type env struct {
	dir        string
	configPath string
	reportDir  string
}

func newEnv(t *testing.T) *env {
	t.Helper()
	dir := t.TempDir()
	e := &env{
		dir:        dir,
		configPath: filepath.Join(dir, "viewlog.toml"),
		reportDir:  filepath.Join(dir, "reports"),
	}
	cfg := `
[database]
path = "` + filepath.Join(dir, "data", "viewlog.db") + `"

[user]
name = "ana"

[report]
dir = "` + e.reportDir + `"

[log]
level = "error"
`
	require.NoError(t, os.WriteFile(e.configPath, []byte(cfg), 0o644))
	return e
}

// run executes the CLI with the env's config and returns stdout.
func (e *env) run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetArgs(append([]string{"--config", e.configPath}, args...))
	root.SetIn(strings.NewReader(stdin))
	root.SetOut(&out)
	root.SetErr(&errOut)
	err := root.Execute()
	return out.String(), err
}

func (e *env) importCatalog(t *testing.T) {
	t.Helper()
	path := filepath.Join(e.dir, "catalog.toml")
	require.NoError(t, os.WriteFile(path, []byte(testCatalog), 0o644))
	_, err := e.run(t, "", "import", path)
	require.NoError(t, err)
}
