package config

import (
	"os"
	"regexp"
	"strings"
)

// envVarPattern matches ${VAR}, ${VAR:-default} and ${VAR:?message}.
var envVarPattern = regexp.MustCompile(`\$\{([A-Za-z_][A-Za-z0-9_]*)(?::([-?])([^}]*))?\}`)

// substituteEnvVars replaces variable references using the process
// environment first, then fallback. It returns the names of unresolved
// variables; their references are left unchanged. Comments are copied as is.
func substituteEnvVars(content string, fallback map[string]string) (string, []string) {
	var missing []string
	lookup := func(name string) (string, bool) {
		if v, ok := os.LookupEnv(name); ok {
			return v, true
		}
		v, ok := fallback[name]
		return v, ok
	}

	replace := func(match string) string {
		m := envVarPattern.FindStringSubmatch(match)
		name, op, arg := m[1], m[2], m[3]
		value, ok := lookup(name)

		switch op {
		case "-":
			if value == "" {
				return arg
			}
			return value
		case "?":
			if value == "" {
				missing = append(missing, name+": "+strings.TrimSpace(arg))
				return match
			}
			return value
		}

		if !ok {
			missing = append(missing, name)
			return match
		}
		return value
	}

	var b strings.Builder
	for _, line := range strings.SplitAfter(content, "\n") {
		code, comment := splitComment(line)
		b.WriteString(envVarPattern.ReplaceAllStringFunc(code, replace))
		b.WriteString(comment)
	}
	return b.String(), missing
}

// splitComment splits a TOML line at the first # outside a quoted string.
func splitComment(line string) (code, comment string) {
	var quote byte
	for i := 0; i < len(line); i++ {
		c := line[i]
		switch {
		case quote == '"' && c == '\\':
			i++
		case quote != 0:
			if c == quote {
				quote = 0
			}
		case c == '"' || c == '\'':
			quote = c
		case c == '#':
			return line[:i], line[i:]
		}
	}
	return line, ""
}
