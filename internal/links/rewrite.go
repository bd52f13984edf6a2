package links

import (
	"fmt"
	"path"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/directive"
	"git.home.luguber.info/inful/docnav/internal/markdown"
)

var htmlImgSrc = regexp.MustCompile(`<img\b[^>]*?\bsrc\s*=\s*["']([^"']+)["']`)

// RewriteLinks resolves every relative link and image outside code in a
// markdown body. Links to markdown pages (or extension-less links) go
// through ResolveMarkdownLink; images, inline <img> tags and links to other
// files go through ResolveImagePath.
func (r *Resolver) RewriteLinks(body, currentFile, version string) string {
	if currentFile == "" || version == "" {
		return body
	}

	var edits []markdown.Edit
	for _, l := range markdown.FindLinks(body) {
		var resolved string
		if l.Kind == markdown.LinkKindImage || isAsset(l.Destination) {
			resolved = r.ResolveImagePath(l.Destination, currentFile)
		} else {
			resolved = r.ResolveMarkdownLink(l.Destination, currentFile, version)
		}
		if resolved != l.Destination {
			edits = append(edits, markdown.Edit{Start: l.DestStart, End: l.DestEnd, Replacement: resolved})
		}
	}

	mask := markdown.NewCodeMask(body)
	for _, m := range htmlImgSrc.FindAllStringSubmatchIndex(body, -1) {
		if mask.Overlaps(m[0], m[1]) || overlapsAny(edits, m[2], m[3]) {
			continue
		}
		src := body[m[2]:m[3]]
		if resolved := r.ResolveImagePath(src, currentFile); resolved != src {
			edits = append(edits, markdown.Edit{Start: m[2], End: m[3], Replacement: resolved})
		}
	}

	out, err := markdown.ApplyEdits(body, edits)
	if err != nil {
		return body
	}
	return out
}

func overlapsAny(edits []markdown.Edit, start, end int) bool {
	for _, e := range edits {
		if start < e.End && e.Start < end {
			return true
		}
	}
	return false
}

// isAsset reports a link to a file that is not a markdown page.
func isAsset(dest string) bool {
	p, _ := splitSuffix(dest)
	ext := strings.ToLower(path.Ext(p))
	return ext != "" && ext != ".md" && ext != ".markdown"
}

// CleanAPITags rewrites [api:Identifier] shorthand that is not already part
// of a link into [Identifier](api:Identifier). Running it on its own output
// changes nothing.
func CleanAPITags(body string) string {
	var edits []markdown.Edit
	for _, d := range directive.OfKind(directive.Scan(body), directive.KindAPI) {
		edits = append(edits, markdown.Edit{
			Start:       d.Start,
			End:         d.End,
			Replacement: fmt.Sprintf("[%s](api:%s)", d.Identifier, d.Identifier),
		})
	}

	out, err := markdown.ApplyEdits(body, edits)
	if err != nil {
		return body
	}
	return out
}
