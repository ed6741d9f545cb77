package config

import (
	"os"
	"path/filepath"
)

// GetRuntimePath resolves the runtime directory before the App config is
// parsed (the env file has to be loaded first).
func GetRuntimePath() string {
	path := os.Getenv("REPLKIT_RUNTIME_PATH")
	if path == "" {
		path = ".replkit"
	}
	return resolveRuntimePath(path)
}

// resolveRuntimePath anchors relative paths at the user's home directory so
// every caller agrees on a single location.
func resolveRuntimePath(path string) string {
	if !filepath.IsAbs(path) {
		home, _ := os.UserHomeDir()
		path = filepath.Join(home, path)
	}
	return path
}
