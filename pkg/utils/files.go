package utils

import (
	"fmt"
	"os"
	"path/filepath"
)

// ReadSource resolves path (cleaning any ../ segments) and returns the
// program text it contains. The returned string is raw source; scanning it
// for commands is the caller's business.
func ReadSource(path string) (string, error) {
	fullPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	data, err := os.ReadFile(fullPath)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
