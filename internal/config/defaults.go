package config

import (
	"time"

	"git.home.luguber.info/inful/docnav/internal/links"
	"git.home.luguber.info/inful/docnav/internal/navtree"
	"git.home.luguber.info/inful/docnav/internal/sources"
)

const (
	DefaultContentRoot     = "./.cache/docs"
	DefaultAddr            = ":8080"
	DefaultRefreshInterval = 5 * time.Minute
	DefaultWatchDebounce   = 500 * time.Millisecond
)

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Category == "" {
		cfg.Category = sources.CategoryDocs
	}
	if cfg.Content.Root == "" {
		cfg.Content.Root = DefaultContentRoot
	}
	if len(cfg.Content.Roots) == 0 {
		cfg.Content.Roots = append([]string(nil), links.DefaultContentRoots...)
	}
	if cfg.API.LookupURL == "" {
		cfg.API.LookupURL = links.DefaultAPILookupURL
	}
	if cfg.Nav.Order == "" {
		cfg.Nav.Order = navtree.OrderSource
	}
	if cfg.Server.Addr == "" {
		cfg.Server.Addr = DefaultAddr
	}
	if len(cfg.Server.CORSOrigins) == 0 {
		cfg.Server.CORSOrigins = []string{"*"}
	}
	if cfg.Server.RefreshInterval == 0 {
		cfg.Server.RefreshInterval = DefaultRefreshInterval
	}
	if cfg.Server.WatchDebounce == 0 {
		cfg.Server.WatchDebounce = DefaultWatchDebounce
	}
}
