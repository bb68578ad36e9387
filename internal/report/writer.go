package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// FileWriter saves reports under Dir.
type FileWriter struct {
	Dir string
}

// Write saves title and content to <Dir>/<name>.<ext> and returns the path.
// An existing file of the same name is replaced.
func (w FileWriter) Write(name, ext, title, content string) (string, error) {
	if name == "" || strings.ContainsAny(name, `/\`) {
		return "", fmt.Errorf("invalid report name %q", name)
	}
	dir := w.Dir
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create report dir: %w", err)
	}

	file := name
	if ext != "" {
		file += "." + ext
	}
	path := filepath.Join(dir, file)

	var sb strings.Builder
	if title != "" {
		sb.WriteString(title + "\n")
	}
	sb.WriteString(content)
	if err := os.WriteFile(path, []byte(sb.String()), 0o644); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}
	return path, nil
}
