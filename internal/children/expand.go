package children

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"

	"git.home.luguber.info/inful/docnav/internal/directive"
	"git.home.luguber.info/inful/docnav/internal/docs"
	"git.home.luguber.info/inful/docnav/internal/markdown"
)

// Expand replaces every [CHILDREN] directive in body with the listing it
// selects for doc: a markdown list with AsList, an HTML card grid otherwise.
// A directive that selects nothing is removed.
func Expand(body string, c *docs.Corpus, doc *docs.Document) string {
	var edits []markdown.Edit
	for _, d := range directive.OfKind(directive.Scan(body), directive.KindChildren) {
		selected := Filtered(c, doc, d.Children)
		edits = append(edits, markdown.Edit{Start: d.Start, End: d.End, Replacement: Render(selected, d.Children.AsList)})
	}

	out, err := markdown.ApplyEdits(body, edits)
	if err != nil {
		return body
	}
	return out
}

// Render formats a listing. It returns "" for no documents.
func Render(list []*docs.Document, asList bool) string {
	if len(list) == 0 {
		return ""
	}
	if asList {
		return renderList(list)
	}
	return renderCards(list)
}

var linkTextEscaper = strings.NewReplacer(`\`, `\\`, "[", `\[`, "]", `\]`)

func renderList(list []*docs.Document) string {
	var b strings.Builder
	for i, d := range list {
		if i > 0 {
			b.WriteByte('\n')
		}
		fmt.Fprintf(&b, "- [%s](%s)", linkTextEscaper.Replace(d.Title), d.Slug)
		if d.Summary != "" {
			b.WriteString(": " + d.Summary)
		}
	}
	return b.String()
}

func renderCards(list []*docs.Document) string {
	var b strings.Builder
	b.WriteString("<div class=\"docs-overview\">\n")
	for _, d := range list {
		fmt.Fprintf(&b, "<a class=\"docs-overview__card\" href=\"%s\">\n", html.EscapeString(d.Slug))
		switch {
		case d.IconBrand != "":
			fmt.Fprintf(&b, "<span class=\"docs-overview__icon\" data-icon-brand=\"%s\"></span>\n", html.EscapeString(d.IconBrand))
		case d.Icon != "":
			fmt.Fprintf(&b, "<span class=\"docs-overview__icon\" data-icon=\"%s\"></span>\n", html.EscapeString(d.Icon))
		}
		fmt.Fprintf(&b, "<span class=\"docs-overview__title\">%s</span>\n", html.EscapeString(d.Title))
		if d.Summary != "" {
			fmt.Fprintf(&b, "<span class=\"docs-overview__summary\">%s</span>\n", html.EscapeString(d.Summary))
		}
		b.WriteString("</a>\n")
	}
	b.WriteString("</div>\n")
	return b.String()
}
