package config

import (
	"strings"
	"testing"
)

func TestConfigError_Error_Empty(t *testing.T) {
	e := &ConfigError{Path: "/etc/viewlog/config.toml"}
	if got := e.Error(); got != "" {
		t.Errorf("expected empty string for no errors, got %q", got)
	}
}

func TestConfigError_Error_MissingVars(t *testing.T) {
	e := &ConfigError{
		Path:    "/etc/viewlog/config.toml",
		Missing: []string{"USER", "VIEWLOG_DB"},
	}
	got := e.Error()
	if !strings.Contains(got, "missing environment variables") {
		t.Errorf("expected 'missing environment variables', got %q", got)
	}
	if !strings.Contains(got, "USER") || !strings.Contains(got, "VIEWLOG_DB") {
		t.Errorf("expected var names in error, got %q", got)
	}
	if !strings.HasPrefix(got, "config /etc/viewlog/config.toml:") {
		t.Errorf("expected path prefix, got %q", got)
	}
}

func TestConfigError_Error_Both(t *testing.T) {
	e := &ConfigError{
		Missing: []string{"USER"},
		Errors:  []string{"log.level: invalid", "report.name: required"},
	}
	got := e.Error()
	if !strings.Contains(got, "missing environment variables") {
		t.Errorf("expected missing vars section, got %q", got)
	}
	if !strings.Contains(got, "validation failed") || !strings.Contains(got, "  - report.name: required") {
		t.Errorf("expected validation section, got %q", got)
	}
}
