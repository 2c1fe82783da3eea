// Package export writes generated reports to disk as plain text files.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const errorPrefix = "Fehler:"

// Exportable reports whether content is worth writing: non-blank and not an
// error string.
func Exportable(content string) bool {
	trimmed := strings.TrimSpace(content)
	return trimmed != "" && !strings.HasPrefix(trimmed, errorPrefix)
}

// Text writes content to path, creating parent directories. Blank content
// and error strings are skipped; the boolean reports whether a file was
// written.
func Text(content, path string) (bool, error) {
	if !Exportable(content) {
		return false, nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return false, fmt.Errorf("creating export directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return false, fmt.Errorf("writing export: %w", err)
	}
	return true, nil
}
