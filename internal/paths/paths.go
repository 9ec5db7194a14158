// Package paths resolves where pixelctl keeps its per-user files.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	appName = "pixelctl"
	dbName  = "pixelctl.db"
)

// Dir is the per-user config directory for the console.
func Dir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve config directory: %w", err)
	}
	return filepath.Join(base, appName), nil
}

// EnsureDir creates the config directory if missing and returns it.
func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create %s directory: %w", appName, err)
	}
	return dir, nil
}

// DB returns the path of the local sqlite file holding the session token.
func DB() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, dbName), nil
}
