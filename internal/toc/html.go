package toc

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// GenerateHTML renders headings as a nested list. Level 3 entries nest
// under the preceding level 2 entry. It returns "" for no headings.
func GenerateHTML(headings []Heading) string {
	if len(headings) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString("<nav class=\"toc\" aria-label=\"Table of contents\">\n<ul>\n")

	openItem, inSub := false, false
	closeItem := func() {
		if inSub {
			b.WriteString("</ul>\n")
			inSub = false
		}
		b.WriteString("</li>\n")
	}

	for _, h := range headings {
		entry := fmt.Sprintf(`<li class="toc-level-%d"><a href="#%s">%s</a>`, h.Level, html.EscapeString(h.ID), html.EscapeString(h.Text))
		if h.Level >= 3 && openItem {
			if !inSub {
				b.WriteString("\n<ul>\n")
				inSub = true
			}
			b.WriteString(entry + "</li>\n")
			continue
		}
		if openItem {
			closeItem()
		}
		b.WriteString(entry)
		openItem = true
	}
	if openItem {
		closeItem()
	}

	b.WriteString("</ul>\n</nav>\n")
	return b.String()
}

// InsertAfterH1 places toc directly after the first closing </h1> in page,
// or at the top when the page has no level 1 heading.
func InsertAfterH1(page, toc string) string {
	if toc == "" {
		return page
	}

	z := html.NewTokenizer(strings.NewReader(page))
	offset := 0
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		offset += len(z.Raw())
		if tt != html.EndTagToken {
			continue
		}
		if name, _ := z.TagName(); string(name) == "h1" {
			return page[:offset] + "\n" + toc + page[offset:]
		}
	}
	return toc + page
}
