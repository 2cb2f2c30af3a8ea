package config

import (
	"github.com/zeromicro/go-zero/mcp"
	"github.com/zeromicro/go-zero/rest"
)

// Config holds the server configuration.
type Config struct {
	mcp.McpConf

	UI       UIConfig       `json:",optional"`
	API      APIConfig      `json:",optional"`
	Database DatabaseConfig `json:",optional"`
	Browser  BrowserConfig  `json:",optional"`
}

// UIConfig holds the Web UI server settings.
type UIConfig struct {
	rest.RestConf
}

// APIConfig holds the REST API server settings.
type APIConfig struct {
	rest.RestConf
}

// DatabaseConfig holds usage event storage settings.
type DatabaseConfig struct {
	Path string `json:",default=./.data/plat-fonts.db"`
}

// BrowserConfig points the preview checker at a running Chromium. Disabled
// unless Enabled is set.
type BrowserConfig struct {
	Enabled    bool   `json:",default=false"`
	ControlURL string `json:",optional,env=ROD_CONTROL_URL"`
}
