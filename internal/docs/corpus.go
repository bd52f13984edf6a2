package docs

import (
	"crypto/sha256"
	"encoding/hex"
	"sort"

	"git.home.luguber.info/inful/docnav/internal/slug"
	"git.home.luguber.info/inful/docnav/internal/sources"
)

// Corpus is an immutable snapshot of every document of one category.
// Lookups are case- and slash-insensitive and never fail: unknown
// addresses yield nil.
type Corpus struct {
	category sources.Category
	docs     []*Document
	bySlug   map[string]*Document
	children map[string][]*Document
	versions []string
}

// NewCorpus indexes docs as given. Later documents with an already used
// slug are unreachable by slug lookup.
func NewCorpus(category sources.Category, docs []*Document) *Corpus {
	c := &Corpus{
		category: category,
		docs:     docs,
		bySlug:   make(map[string]*Document, len(docs)),
		children: make(map[string][]*Document),
	}
	seenVersion := make(map[string]bool)
	for _, d := range docs {
		key := slug.LookupKey(d.Slug)
		if _, exists := c.bySlug[key]; !exists {
			c.bySlug[key] = d
		}
		if d.ParentSlug != "" {
			parent := slug.LookupKey(d.ParentSlug)
			c.children[parent] = append(c.children[parent], d)
		}
		if !seenVersion[d.Version] {
			seenVersion[d.Version] = true
			c.versions = append(c.versions, d.Version)
		}
	}
	sources.SortVersions(c.versions)
	return c
}

// Category returns the documentation context of the corpus.
func (c *Corpus) Category() sources.Category {
	if c == nil {
		return ""
	}
	return c.category
}

// Len returns the number of documents.
func (c *Corpus) Len() int {
	if c == nil {
		return 0
	}
	return len(c.docs)
}

// All returns every document in enumeration order.
func (c *Corpus) All() []*Document {
	if c == nil {
		return nil
	}
	out := make([]*Document, len(c.docs))
	copy(out, c.docs)
	return out
}

// Versions returns the versions present in the corpus, ascending.
func (c *Corpus) Versions() []string {
	if c == nil {
		return nil
	}
	out := make([]string, len(c.versions))
	copy(out, c.versions)
	return out
}

// VersionDocuments returns the documents of one version in enumeration order.
func (c *Corpus) VersionDocuments(version string) []*Document {
	if c == nil {
		return nil
	}
	var out []*Document
	for _, d := range c.docs {
		if d.Version == version {
			out = append(out, d)
		}
	}
	return out
}

// DocumentBySlug finds a document regardless of case and of leading or
// trailing slashes.
func (c *Corpus) DocumentBySlug(s string) *Document {
	if c == nil {
		return nil
	}
	return c.bySlug[slug.LookupKey(s)]
}

// DocumentByParams rebuilds /en/{version}/{segments...}/ and looks it up.
// No segments address the version root.
func (c *Corpus) DocumentByParams(version string, segments ...string) *Document {
	return c.DocumentBySlug(slug.FromSegments(version, segments...))
}

// ChildDocuments returns the direct children of parentSlug in enumeration
// order. Hidden documents and the parent itself are never included.
func (c *Corpus) ChildDocuments(parentSlug string) []*Document {
	if c == nil {
		return nil
	}
	parentKey := slug.LookupKey(parentSlug)
	var out []*Document
	for _, d := range c.children[parentKey] {
		if d.HideSelf || slug.LookupKey(d.Slug) == parentKey {
			continue
		}
		out = append(out, d)
	}
	return out
}

// Revision is a deterministic digest of every slug and fingerprint; it
// changes whenever any document's address or content changes.
func (c *Corpus) Revision() string {
	h := sha256.New()
	if c == nil || len(c.docs) == 0 {
		h.Write([]byte("empty-corpus"))
		return hex.EncodeToString(h.Sum(nil))
	}
	entries := make([]string, 0, len(c.docs))
	for _, d := range c.docs {
		entries = append(entries, d.Slug+"|"+d.Fingerprint)
	}
	sort.Strings(entries)
	for _, e := range entries {
		h.Write([]byte(e))
		h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}
