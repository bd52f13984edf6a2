// Package toc extracts the level 2 and 3 headings of a markdown document and
// renders them as an in-page table of contents.
//
// Heading-like lines inside fenced code are not excluded by ExtractHeadings.
package toc

import (
	"regexp"
	"strconv"
	"strings"
)

// Heading is one table of contents entry.
type Heading struct {
	ID    string `json:"id"`
	Text  string `json:"text"`
	Level int    `json:"level"`
}

var (
	headingLine    = regexp.MustCompile(`^ {0,3}(#{2,3})[ \t]+(.+?)[ \t]*$`)
	closingHashes  = regexp.MustCompile(`[ \t]+#+$`)
	customID       = regexp.MustCompile(`[ \t]*\{#([\w-]+)\}$`)
	imageMarkup    = regexp.MustCompile(`!\[([^\]]*)\]\([^)]*\)`)
	linkMarkup     = regexp.MustCompile(`\[([^\]]*)\]\([^)]*\)`)
	apiShorthand   = regexp.MustCompile(`\[api:([^\]]+)\]`)
	codeMarkup     = regexp.MustCompile("`([^`]*)`")
	strongStars    = regexp.MustCompile(`\*\*(.+?)\*\*`)
	strongUnders   = regexp.MustCompile(`__(.+?)__`)
	emStars        = regexp.MustCompile(`\*(.+?)\*`)
	emUnders       = regexp.MustCompile(`(^|\W)_(.+?)_(\W|$)`)
	htmlTags       = regexp.MustCompile(`<[^>]+>`)
	nonIDChars     = regexp.MustCompile(`[^\w\s-]`)
	whitespaceRuns = regexp.MustCompile(`\s+`)
)

// fallbackID is used when a heading has no characters usable in an id.
const fallbackID = "section"

// rawHeading is a heading line with its position, before ids are assigned.
type rawHeading struct {
	level    int
	text     string
	customID string
	// lineStart and lineEnd bound the heading line, excluding the newline.
	lineStart int
	lineEnd   int
}

func scan(body string) []rawHeading {
	var out []rawHeading
	offset := 0
	for _, line := range strings.SplitAfter(body, "\n") {
		start := offset
		offset += len(line)
		trimmed := strings.TrimRight(line, "\r\n")

		m := headingLine.FindStringSubmatch(trimmed)
		if m == nil {
			continue
		}
		text := closingHashes.ReplaceAllString(m[2], "")
		h := rawHeading{level: len(m[1]), lineStart: start, lineEnd: start + len(trimmed)}
		if cm := customID.FindStringSubmatchIndex(text); cm != nil {
			h.customID = text[cm[2]:cm[3]]
			text = text[:cm[0]]
		}
		h.text = StripInlineMarkup(text)
		if h.text == "" && h.customID == "" {
			continue
		}
		out = append(out, h)
	}
	return out
}

// ExtractHeadings returns the level 2 and 3 headings of body in order. A
// trailing {#custom-id} is used verbatim; other ids are generated by Slugify
// and made unique with -1, -2 suffixes.
func ExtractHeadings(body string) []Heading {
	raw := scan(body)
	headings := make([]Heading, 0, len(raw))
	used := make(map[string]bool, len(raw))

	for _, h := range raw {
		id := h.customID
		if id == "" {
			id = unique(Slugify(h.text), used)
		}
		used[id] = true
		headings = append(headings, Heading{ID: id, Text: h.text, Level: h.level})
	}
	return headings
}

func unique(base string, used map[string]bool) string {
	if base == "" {
		base = fallbackID
	}
	if !used[base] {
		return base
	}
	for n := 1; ; n++ {
		candidate := base + "-" + strconv.Itoa(n)
		if !used[candidate] {
			return candidate
		}
	}
}

// Slugify turns heading text into an anchor id.
func Slugify(text string) string {
	s := strings.ToLower(text)
	s = nonIDChars.ReplaceAllString(s, "")
	s = whitespaceRuns.ReplaceAllString(strings.TrimSpace(s), "-")
	return strings.Trim(s, "-")
}

// StripInlineMarkup reduces heading markdown to its visible text.
func StripInlineMarkup(text string) string {
	s := imageMarkup.ReplaceAllString(text, "$1")
	s = linkMarkup.ReplaceAllString(s, "$1")
	s = apiShorthand.ReplaceAllString(s, "$1")
	s = codeMarkup.ReplaceAllString(s, "$1")
	s = strongStars.ReplaceAllString(s, "$1")
	s = strongUnders.ReplaceAllString(s, "$1")
	s = emStars.ReplaceAllString(s, "$1")
	s = emUnders.ReplaceAllString(s, "$1$2$3")
	s = htmlTags.ReplaceAllString(s, "")
	return strings.TrimSpace(s)
}
