package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if strings.TrimSpace(c.User.Name) == "" {
		errs = append(errs, "user.name: required")
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, "database.path: required")
	}
	if !validLogLevels[c.Log.Level] {
		errs = append(errs, fmt.Sprintf("log.level: must be one of debug, info, warn, error; got %q", c.Log.Level))
	}

	if strings.TrimSpace(c.Report.Name) == "" {
		errs = append(errs, "report.name: required")
	} else if strings.ContainsAny(c.Report.Name, `/\`) {
		errs = append(errs, fmt.Sprintf("report.name: must not contain path separators; got %q", c.Report.Name))
	}
	if strings.ContainsAny(c.Report.Extension, `./\`) {
		errs = append(errs, fmt.Sprintf("report.extension: must not contain dots or path separators; got %q", c.Report.Extension))
	}

	return errs
}
