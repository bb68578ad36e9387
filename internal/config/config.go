// Package config handles TOML configuration loading with environment variable substitution.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config is the root configuration structure.
type Config struct {
	Database DatabaseConfig `toml:"database"`
	User     UserConfig     `toml:"user"`
	Report   ReportConfig   `toml:"report"`
	Log      LogConfig      `toml:"log"`
}

type DatabaseConfig struct {
	Path string `toml:"path"`
	// UniqueRecords stores at most one consumption record per item and user.
	UniqueRecords bool `toml:"unique_records"`
}

type UserConfig struct {
	Name string `toml:"name"`
}

type ReportConfig struct {
	Dir       string `toml:"dir"`
	Name      string `toml:"name"`
	Extension string `toml:"extension"`
	Title     string `toml:"title"`
}

type LogConfig struct {
	Level string `toml:"level"`
}

// Default returns the configuration used when no file is found. The user
// name comes from $USER.
func Default() *Config {
	cfg := &Config{Database: DatabaseConfig{UniqueRecords: true}}
	cfg.User.Name = os.Getenv("USER")
	if cfg.User.Name == "" {
		cfg.User.Name = "viewer"
	}
	cfg.applyDefaults()
	return cfg
}

func (c *Config) applyDefaults() {
	if c.Database.Path == "" {
		c.Database.Path = "./data/viewlog.db"
	}
	if c.Report.Dir == "" {
		c.Report.Dir = "."
	}
	if c.Report.Name == "" {
		c.Report.Name = "report"
	}
	if c.Report.Extension == "" {
		c.Report.Extension = "txt"
	}
	if c.Report.Title == "" {
		c.Report.Title = ":: VIEWED ::"
	}
	if c.Log.Level == "" {
		c.Log.Level = "warn"
	}
}

// Load reads, substitutes, and validates the configuration file.
func Load(path string) (*Config, error) {
	cfg, missing, err := load(path)
	if err != nil {
		return nil, err
	}

	cfgErr := &ConfigError{Path: path, Missing: missing, Errors: cfg.Validate()}
	if cfgErr.HasErrors() {
		return nil, cfgErr
	}
	return cfg, nil
}

// LoadWithoutValidation parses the file and applies defaults but skips
// validation and tolerates unresolved variables.
func LoadWithoutValidation(path string) (*Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

func load(path string) (*Config, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("reading config: %w", err)
	}

	dotenv, err := readDotenv(filepath.Join(filepath.Dir(path), ".env"))
	if err != nil {
		return nil, nil, err
	}
	content, missing := substituteEnvVars(string(data), dotenv)

	// Unset keys keep their defaults.
	cfg := &Config{Database: DatabaseConfig{UniqueRecords: true}}
	if _, err := toml.Decode(content, cfg); err != nil {
		return nil, nil, fmt.Errorf("parsing config: %w", err)
	}
	cfg.applyDefaults()

	return cfg, missing, nil
}

// readDotenv returns the variables of a .env file, or nil when there is none.
// The process environment is left untouched.
func readDotenv(path string) (map[string]string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return vars, nil
}
