package toc

import (
	"git.home.luguber.info/inful/docnav/internal/markdown"
)

// AnnotateHeadings appends the ids ExtractHeadings assigns as {#id}
// attributes, so rendered heading anchors match the table of contents.
// Headings that already carry an id, and heading-like lines inside code, are
// left alone.
func AnnotateHeadings(body string) string {
	raw := scan(body)
	headings := ExtractHeadings(body)
	mask := markdown.NewCodeMask(body)

	var edits []markdown.Edit
	for i, h := range raw {
		if h.customID != "" || mask.Contains(h.lineStart) {
			continue
		}
		edits = append(edits, markdown.Edit{
			Start:       h.lineEnd,
			End:         h.lineEnd,
			Replacement: " {#" + headings[i].ID + "}",
		})
	}

	out, err := markdown.ApplyEdits(body, edits)
	if err != nil {
		return body
	}
	return out
}
