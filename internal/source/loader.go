// Package source loads raw grid text from the file system. Existence and
// emptiness checks live here; the evaluation core never performs them.
package source

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// ErrNotFound indicates the named resource does not exist.
var ErrNotFound = errors.New("source not found")

// ErrEmpty indicates the named resource exists but holds no content.
var ErrEmpty = errors.New("source is empty")

// Load reads the file at path and returns its text.
func Load(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", ErrEmpty, path)
	}
	return text, nil
}

// SplitRows splits grid text into row strings. Rows are CRLF-delimited on the
// wire; LF-only files are tolerated. A trailing newline does not produce an
// empty final row.
func SplitRows(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.TrimRight(text, "\n")
	return strings.Split(text, "\n")
}
