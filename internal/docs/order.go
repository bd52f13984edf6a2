package docs

import (
	"sort"
	"strings"
)

// SortByTitle returns a copy ordered by title, case-insensitively, with the
// slug breaking ties.
func SortByTitle(docs []*Document) []*Document {
	out := make([]*Document, len(docs))
	copy(out, docs)
	sort.SliceStable(out, func(i, j int) bool {
		ti, tj := strings.ToLower(out[i].Title), strings.ToLower(out[j].Title)
		if ti != tj {
			return ti < tj
		}
		return out[i].Slug < out[j].Slug
	})
	return out
}

// SortBySource returns a copy in source enumeration order, which follows
// the numeric ordering prefixes authors put on file names.
func SortBySource(docs []*Document) []*Document {
	out := make([]*Document, len(docs))
	copy(out, docs)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Order < out[j].Order
	})
	return out
}
