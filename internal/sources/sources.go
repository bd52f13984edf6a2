// Package sources is the static table describing where each version's
// documentation lives: which repository, which branch and which sub-path.
package sources

import (
	"fmt"
	"sort"
	"strings"
)

// Category selects a documentation context.
type Category string

const (
	CategoryDocs Category = "docs"
	CategoryUser Category = "user"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryDocs || c == CategoryUser
}

// SourceConfig locates one documentation source on GitHub.
type SourceConfig struct {
	Owner    string `yaml:"owner" json:"owner"`
	Repo     string `yaml:"repo" json:"repo"`
	Branch   string `yaml:"branch" json:"branch"`
	DocsPath string `yaml:"docs_path" json:"docsPath"`
}

// Entry binds a SourceConfig to its version and optional feature.
type Entry struct {
	Version string
	Feature string // empty for core docs
	Config  SourceConfig
}

type key struct {
	version string
	feature string
}

// Registry is an immutable lookup table of SourceConfigs for one category.
type Registry struct {
	category Category
	entries  map[key]SourceConfig
	order    []Entry
}

// NewRegistry builds a registry. Later duplicates of a (version, feature)
// pair are ignored.
func NewRegistry(category Category, entries []Entry) *Registry {
	r := &Registry{
		category: category,
		entries:  make(map[key]SourceConfig, len(entries)),
		order:    make([]Entry, 0, len(entries)),
	}
	for _, e := range entries {
		k := key{version: e.Version, feature: e.Feature}
		if _, exists := r.entries[k]; exists {
			continue
		}
		r.entries[k] = e.Config
		r.order = append(r.order, e)
	}
	return r
}

// Category returns the documentation context this registry describes.
func (r *Registry) Category() Category {
	return r.category
}

// Get returns the source for a version and optional feature. Unknown
// combinations report false.
func (r *Registry) Get(version, feature string) (SourceConfig, bool) {
	if r == nil {
		return SourceConfig{}, false
	}
	cfg, ok := r.entries[key{version: version, feature: feature}]
	return cfg, ok
}

// HasVersion reports whether the core docs source for version is known.
func (r *Registry) HasVersion(version string) bool {
	_, ok := r.Get(version, "")
	return ok
}

// Entries returns all entries in registration order.
func (r *Registry) Entries() []Entry {
	if r == nil {
		return nil
	}
	out := make([]Entry, len(r.order))
	copy(out, r.order)
	return out
}

// Versions returns the versions with a core docs source, in ascending order.
func (r *Registry) Versions() []string {
	if r == nil {
		return nil
	}
	var versions []string
	for _, e := range r.order {
		if e.Feature == "" {
			versions = append(versions, e.Version)
		}
	}
	SortVersions(versions)
	return versions
}

// SortVersions orders versions ascending, numerically where possible.
func SortVersions(versions []string) {
	sort.Slice(versions, func(i, j int) bool {
		return versionLess(versions[i], versions[j])
	})
}

// Features returns the optional feature names registered for version.
func (r *Registry) Features(version string) []string {
	if r == nil {
		return nil
	}
	var features []string
	for _, e := range r.order {
		if e.Version == version && e.Feature != "" {
			features = append(features, e.Feature)
		}
	}
	sort.Strings(features)
	return features
}

// EditURL builds the "edit this page" URL for a file relative to the
// source's docs path. It returns "#" for unknown combinations.
func (r *Registry) EditURL(version, filePath, feature string) string {
	cfg, ok := r.Get(version, feature)
	if !ok {
		return "#"
	}
	return fmt.Sprintf("https://github.com/%s/%s/blob/%s/%s",
		cfg.Owner, cfg.Repo, cfg.Branch, joinPath(cfg.DocsPath, filePath))
}

func joinPath(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.Trim(strings.ReplaceAll(p, `\`, "/"), "/")
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "/")
}

// versionLess orders numeric versions numerically and everything else lexically.
func versionLess(a, b string) bool {
	var ai, bi int
	_, aerr := fmt.Sscanf(a, "%d", &ai)
	_, berr := fmt.Sscanf(b, "%d", &bi)
	if aerr == nil && berr == nil && ai != bi {
		return ai < bi
	}
	return a < b
}
