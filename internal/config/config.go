// Package config loads docnav's YAML configuration.
//
// Load reads .env files, expands ${VAR} references, applies defaults and
// validates the result. Every field has a default, so an empty file (or no
// file) yields a working configuration for the bundled docs sources.
package config

import (
	"time"

	"git.home.luguber.info/inful/docnav/internal/links"
	"git.home.luguber.info/inful/docnav/internal/navtree"
	"git.home.luguber.info/inful/docnav/internal/sources"
)

// Config is the root configuration.
type Config struct {
	Category sources.Category `yaml:"category"`
	Content  ContentConfig    `yaml:"content"`
	API      APIConfig        `yaml:"api"`
	Nav      NavConfig        `yaml:"nav"`
	Server   ServerConfig     `yaml:"server"`
	// Sources replaces the built-in source table of Category when set.
	Sources []SourceEntry `yaml:"sources,omitempty"`
}

// ContentConfig says where markdown is read from.
type ContentConfig struct {
	// Root holds one v{N} directory per version.
	Root string `yaml:"root"`
	// ReposDir, when set, reads local git clones ({owner}/{repo}) at each
	// source's branch instead of Root.
	ReposDir string `yaml:"repos_dir,omitempty"`
	// Roots are the path markers stripped when resolving relative links.
	Roots []string `yaml:"roots,omitempty"`
}

// APIConfig configures api: link rewriting.
type APIConfig struct {
	LookupURL string `yaml:"lookup_url"`
}

// NavConfig configures navigation trees.
type NavConfig struct {
	Order navtree.Order `yaml:"order"`
}

// ServerConfig configures docnav serve.
type ServerConfig struct {
	Addr            string        `yaml:"addr"`
	CORSOrigins     []string      `yaml:"cors_origins,omitempty"`
	RefreshInterval time.Duration `yaml:"refresh_interval"`
	Watch           bool          `yaml:"watch"`
	// WatchDebounce coalesces bursts of file events into one invalidation.
	WatchDebounce time.Duration `yaml:"watch_debounce"`
}

// SourceEntry is one row of the source table.
type SourceEntry struct {
	Version              string `yaml:"version"`
	Feature              string `yaml:"feature,omitempty"`
	sources.SourceConfig `yaml:",inline"`
}

// Registry returns the configured source table, or the built-in one for
// Category when no sources are configured.
func (c *Config) Registry() *sources.Registry {
	if len(c.Sources) == 0 {
		return sources.Default(c.Category)
	}
	entries := make([]sources.Entry, 0, len(c.Sources))
	for _, s := range c.Sources {
		entries = append(entries, sources.Entry{Version: s.Version, Feature: s.Feature, Config: s.SourceConfig})
	}
	return sources.NewRegistry(c.Category, entries)
}

// Resolver returns a link resolver for the configured roots and lookup URL.
func (c *Config) Resolver() *links.Resolver {
	r := links.NewResolver()
	if len(c.Content.Roots) > 0 {
		r.ContentRoots = append([]string(nil), c.Content.Roots...)
	}
	if c.API.LookupURL != "" {
		r.APILookupURL = c.API.LookupURL
	}
	return r
}
