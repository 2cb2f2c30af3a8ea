// Package config provides environment-driven paths and endpoints shared by
// the CLI and library packages.
package config

import (
	"os"
	"path/filepath"
)

// GetDataPath returns the data directory path.
// It checks for DATA_PATH environment variable, otherwise uses a default.
func GetDataPath() string {
	if path := os.Getenv("DATA_PATH"); path != "" {
		return path
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "."
	}
	return filepath.Join(cwd, ".data")
}

// GetDatabasePath returns the usage events database path.
// It checks for FONTS_DB_PATH environment variable, otherwise uses a default.
func GetDatabasePath() string {
	if path := os.Getenv("FONTS_DB_PATH"); path != "" {
		return path
	}

	return filepath.Join(GetDataPath(), "plat-fonts.db")
}

// GetBrowserControlURL returns the DevTools websocket URL of a running
// browser, or empty when a local headless browser should be launched.
func GetBrowserControlURL() string {
	return os.Getenv("ROD_CONTROL_URL")
}
