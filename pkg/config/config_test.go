package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetDataPath(t *testing.T) {
	t.Run("FromEnv", func(t *testing.T) {
		t.Setenv("DATA_PATH", "/tmp/fonts-data")
		assert.Equal(t, "/tmp/fonts-data", GetDataPath())
	})

	t.Run("Default", func(t *testing.T) {
		t.Setenv("DATA_PATH", "")
		assert.Equal(t, ".data", filepath.Base(GetDataPath()))
	})
}

func TestGetDatabasePath(t *testing.T) {
	t.Run("FromEnv", func(t *testing.T) {
		t.Setenv("FONTS_DB_PATH", "/tmp/x.db")
		assert.Equal(t, "/tmp/x.db", GetDatabasePath())
	})

	t.Run("UnderDataPath", func(t *testing.T) {
		t.Setenv("FONTS_DB_PATH", "")
		t.Setenv("DATA_PATH", "/srv/data")
		assert.Equal(t, "/srv/data/plat-fonts.db", GetDatabasePath())
	})
}

func TestGetBrowserControlURL(t *testing.T) {
	t.Setenv("ROD_CONTROL_URL", "ws://127.0.0.1:9222/devtools/browser/abc")
	assert.Equal(t, "ws://127.0.0.1:9222/devtools/browser/abc", GetBrowserControlURL())
}
