// Package children selects and renders the child listings requested by
// [CHILDREN] directives.
package children

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/directive"
	"git.home.luguber.info/inful/docnav/internal/docs"
	"git.home.luguber.info/inful/docnav/internal/slug"
)

var emphasisTags = regexp.MustCompile(`(?i)</?(em|i|strong|b)>`)

// NameKey normalizes a folder or file name for matching: emphasis markup,
// numeric ordering prefixes, case and the difference between spaces,
// underscores and hyphens are ignored.
func NameKey(name string) string {
	s := emphasisTags.ReplaceAllString(name, "")
	s = strings.Trim(strings.TrimSpace(s), "*_")
	return slug.Segment(strings.TrimSpace(s))
}

func matches(d *docs.Document, keys map[string]bool) bool {
	return keys[NameKey(d.Name())] || keys[NameKey(d.FileTitle)] || keys[NameKey(d.Title)]
}

func keySet(names []string) map[string]bool {
	keys := make(map[string]bool, len(names))
	for _, n := range names {
		if k := NameKey(n); k != "" {
			keys[k] = true
		}
	}
	return keys
}

// Filtered returns the children of doc selected by opts, in authored order.
// In folder mode the children of the matching child folder are listed
// instead. Folder entries (index documents) are only included with
// IncludeFolders. Hidden documents are never listed.
func Filtered(c *docs.Corpus, doc *docs.Document, opts directive.ChildrenOptions) []*docs.Document {
	if c == nil || doc == nil {
		return nil
	}

	parent := doc.Slug
	if opts.Mode == directive.ModeFolder {
		folder := findFolder(c.ChildDocuments(doc.Slug), opts.Folder)
		if folder == nil {
			return nil
		}
		parent = folder.Slug
	}

	var keys map[string]bool
	if opts.Mode == directive.ModeExclude || opts.Mode == directive.ModeOnly {
		keys = keySet(opts.Names)
	}

	var out []*docs.Document
	for _, d := range docs.SortBySource(c.ChildDocuments(parent)) {
		if d.IsIndex && !opts.IncludeFolders {
			continue
		}
		switch opts.Mode {
		case directive.ModeExclude:
			if matches(d, keys) {
				continue
			}
		case directive.ModeOnly:
			if !matches(d, keys) {
				continue
			}
		}
		out = append(out, d)
	}

	if opts.Reverse {
		for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
			out[i], out[j] = out[j], out[i]
		}
	}
	return out
}

func findFolder(candidates []*docs.Document, name string) *docs.Document {
	keys := keySet([]string{name})
	for _, d := range docs.SortBySource(candidates) {
		if d.IsIndex && matches(d, keys) {
			return d
		}
	}
	return nil
}
