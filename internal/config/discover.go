package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrNotFound is returned by Discover when no config file exists in any
// search location.
var ErrNotFound = errors.New("config not found")

// DefaultPath returns the XDG-compliant default config path.
func DefaultPath() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "./viewlog.toml"
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, "viewlog", "config.toml")
}

// Discover finds the config file using the standard search order.
// Search order:
//  1. VIEWLOG_CONFIG environment variable
//  2. ./viewlog.toml (current directory)
//  3. $XDG_CONFIG_HOME/viewlog/config.toml
//  4. /etc/viewlog/config.toml
func Discover() (string, error) {
	if envPath := os.Getenv("VIEWLOG_CONFIG"); envPath != "" {
		if _, err := os.Stat(envPath); err != nil {
			return "", fmt.Errorf("VIEWLOG_CONFIG=%s: %w", envPath, err)
		}
		return envPath, nil
	}

	paths := []string{
		"./viewlog.toml",
		DefaultPath(),
		"/etc/viewlog/config.toml",
	}
	for _, p := range paths {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", fmt.Errorf("%w, checked: %s", ErrNotFound, strings.Join(paths, ", "))
}
