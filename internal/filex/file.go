// Package filex contains filesystem helpers for locating client state.
package filex

import (
	"fmt"
	"os"
	"path/filepath"
)

// EnsureParentDir creates the directory that will hold path (0700) and
// returns path unchanged. Relative paths resolve against the working directory.
func EnsureParentDir(path string) (string, error) {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return path, nil
	}

	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return path, nil
}

// DefaultStatePath returns <user config dir>/rentpred/<name>, falling back
// to the working directory when the user config dir is unknown.
func DefaultStatePath(name string) string {
	base, err := os.UserConfigDir()
	if err != nil {
		return name
	}
	return filepath.Join(base, "rentpred", name)
}
