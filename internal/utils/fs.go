package utils

import "path/filepath"

// DisplayPath returns path made absolute for log messages, or path itself
// when that fails.
func DisplayPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}
