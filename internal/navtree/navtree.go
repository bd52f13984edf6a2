// Package navtree assembles version-scoped navigation trees from a flat
// document list. Trees are built fresh per call and never mutated after
// construction.
package navtree

import (
	"fmt"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docnav/internal/docs"
	"git.home.luguber.info/inful/docnav/internal/slug"
)

// Order selects how siblings are arranged.
type Order string

const (
	// OrderTitle sorts siblings by title, case-insensitively.
	OrderTitle Order = "title"
	// OrderSource keeps the authored (file name prefix) order.
	OrderSource Order = "source"
)

// Valid reports whether o is a known order.
func (o Order) Valid() bool {
	return o == OrderTitle || o == OrderSource
}

// Options tune a build.
type Options struct {
	Order Order
	// Sink receives orphan and self-parent diagnostics. Nil discards them.
	Sink docs.DiagnosticSink
}

// Node is one visible entry of a navigation tree.
type Node struct {
	Slug               string  `json:"slug"`
	Title              string  `json:"title"`
	IsIndex            bool    `json:"isIndex"`
	IsActive           bool    `json:"isActive"`
	HasVisibleChildren bool    `json:"hasVisibleChildren"`
	Children           []*Node `json:"children"`
}

// Build returns the children of version's root document as a tree.
//
// The version root itself is never part of the result, even when its
// parent slug points at itself. Hidden documents are dropped. A document
// whose parent carries HideChildren is dropped unless it sets UnhideSelf;
// a shown document's own children are suppressed only by its own
// HideChildren, and no document appears without its parent.
func Build(all []*docs.Document, version, currentSlug string, opts Options) []*Node {
	b := &builder{
		opts:     opts,
		version:  version,
		current:  "",
		children: make(map[string][]*docs.Document),
		visited:  make(map[string]bool),
	}
	if currentSlug != "" {
		b.current = slug.LookupKey(currentSlug)
	}
	rootKey := slug.LookupKey(slug.VersionRoot(version))

	known := make(map[string]bool)
	for _, d := range all {
		if d.Version == version {
			known[slug.LookupKey(d.Slug)] = true
		}
	}

	for _, d := range all {
		if d.Version != version {
			continue
		}
		key := slug.LookupKey(d.Slug)
		if key == rootKey || d.HideSelf {
			continue
		}
		parentKey := slug.LookupKey(d.ParentSlug)
		switch {
		case d.ParentSlug == "" || parentKey == key:
			b.report(docs.KindSelfParent, d, "document has no usable parent and is left out of navigation")
			continue
		case !known[parentKey]:
			b.report(docs.KindOrphan, d, fmt.Sprintf("parent %s does not exist; document is left out of navigation", d.ParentSlug))
			continue
		}
		b.children[parentKey] = append(b.children[parentKey], d)
	}

	b.visited[rootKey] = true
	return b.level(rootKey, false)
}

type builder struct {
	opts     Options
	version  string
	current  string
	children map[string][]*docs.Document
	visited  map[string]bool
}

func (b *builder) report(kind docs.DiagnosticKind, d *docs.Document, msg string) {
	if b.opts.Sink == nil {
		return
	}
	b.opts.Sink.Report(docs.Diagnostic{
		ID:         uuid.NewString(),
		Kind:       kind,
		Category:   d.Category,
		Version:    b.version,
		Slug:       d.Slug,
		ParentSlug: d.ParentSlug,
		Path:       d.FilePath,
		Message:    msg,
	})
}

func (b *builder) sorted(list []*docs.Document) []*docs.Document {
	if b.opts.Order == OrderSource {
		return docs.SortBySource(list)
	}
	return docs.SortByTitle(list)
}

// level builds the visible children of parentKey. suppressed is true when
// the parent hides its children.
func (b *builder) level(parentKey string, suppressed bool) []*Node {
	var nodes []*Node
	for _, d := range b.sorted(b.children[parentKey]) {
		if suppressed && !d.UnhideSelf {
			continue
		}
		key := slug.LookupKey(d.Slug)
		if b.visited[key] {
			continue
		}
		b.visited[key] = true

		node := &Node{
			Slug:     d.Slug,
			Title:    d.Title,
			IsIndex:  d.IsIndex,
			IsActive: b.current != "" && key == b.current,
		}
		node.Children = b.level(key, d.HideChildren)
		node.HasVisibleChildren = len(node.Children) > 0
		nodes = append(nodes, node)
	}
	return nodes
}

// IsNodeOrDescendantActive reports whether n or anything below it is the
// current page.
func IsNodeOrDescendantActive(n *Node) bool {
	if n == nil {
		return false
	}
	if n.IsActive {
		return true
	}
	for _, c := range n.Children {
		if IsNodeOrDescendantActive(c) {
			return true
		}
	}
	return false
}

// ActiveAncestorsSlug returns the slugs from n down to the active node,
// both ends included. It is empty when nothing under n is active.
func ActiveAncestorsSlug(n *Node) []string {
	if n == nil {
		return []string{}
	}
	if n.IsActive {
		return []string{n.Slug}
	}
	for _, c := range n.Children {
		if path := ActiveAncestorsSlug(c); len(path) > 0 {
			return append([]string{n.Slug}, path...)
		}
	}
	return []string{}
}

// ActivePath finds the active trail within a forest of top-level nodes.
func ActivePath(nodes []*Node) []string {
	for _, n := range nodes {
		if path := ActiveAncestorsSlug(n); len(path) > 0 {
			return path
		}
	}
	return []string{}
}

// Count returns the number of nodes in the forest.
func Count(nodes []*Node) int {
	total := 0
	for _, n := range nodes {
		total += 1 + Count(n.Children)
	}
	return total
}
