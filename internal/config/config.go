// Package config loads docnav server configuration
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/tailscale/hujson"
)

// Config holds all configuration options. The config file is JSON with
// comments and trailing commas allowed.
type Config struct {
	ContentDir string `json:"content_dir"` // directory with the table manifests
	Port       int    `json:"port"`        // query API port
	ObsPort    int    `json:"obs_port"`    // metrics/health/pprof port
	LogLevel   string `json:"log_level"`   // debug, info, warn, error
	LogPretty  bool   `json:"log_pretty"`

	// Visibility policy for unlisted articles. Drafts are always
	// hidden; these make the unlisted policy explicit per view.
	SidebarUnlisted bool `json:"sidebar_unlisted"` // list unlisted articles in sidebars
	LinkerUnlisted  bool `json:"linker_unlisted"`  // let unlisted articles be prev/next targets
	RouteUnlisted   bool `json:"route_unlisted"`   // emit routes for unlisted articles
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		ContentDir:    "content",
		Port:          8080,
		ObsPort:       9090,
		LogLevel:      "info",
		LogPretty:     false,
		RouteUnlisted: true,
	}
}

// Load reads the config file at path over the defaults. An empty path
// or a missing file yields the defaults unchanged; a present but
// malformed file is an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	std, err := hujson.Standardize(raw)
	if err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := json.Unmarshal(std, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.ContentDir == "" {
		return errors.New("content_dir must not be empty")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.ObsPort <= 0 || c.ObsPort > 65535 {
		return fmt.Errorf("invalid obs_port %d", c.ObsPort)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log_level %q", c.LogLevel)
	}
	return nil
}
