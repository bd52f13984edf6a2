// Package directive scans markdown for the inline placeholders docnav
// expands: [CHILDREN ...] listings and [api:Identifier] shorthand links.
//
// Scan produces typed directives with byte offsets; it performs no
// substitution itself.
package directive

import (
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/markdown"
)

// Kind tags a directive variant.
type Kind string

const (
	KindChildren Kind = "children"
	KindAPI      Kind = "api"
)

// FilterMode selects which children a [CHILDREN] directive lists.
type FilterMode string

const (
	// ModeAll lists every child.
	ModeAll FilterMode = "all"
	// ModeFolder lists the children of the named child folder.
	ModeFolder FilterMode = "folder"
	// ModeExclude lists every child except the named ones.
	ModeExclude FilterMode = "exclude"
	// ModeOnly lists only the named children.
	ModeOnly FilterMode = "only"
)

// ChildrenOptions are the typed options of a [CHILDREN] directive.
type ChildrenOptions struct {
	Mode FilterMode
	// Folder is set in ModeFolder.
	Folder string
	// Names is set in ModeExclude and ModeOnly.
	Names []string

	AsList         bool
	IncludeFolders bool
	Reverse        bool
}

// Directive is one placeholder found in a document. Start and End are
// byte offsets of the whole placeholder, End exclusive.
type Directive struct {
	Kind  Kind
	Start int
	End   int
	Raw   string

	// Children is set for KindChildren.
	Children ChildrenOptions
	// Identifier is set for KindAPI.
	Identifier string
}

var (
	placeholderPattern = regexp.MustCompile(`\[(CHILDREN(?:[ \t][^\]\n]*)?|api:[^\]\s]+)\]`)
	apiIdentifier      = regexp.MustCompile(`^[\w\\]+(?:(?:::|->)\$?\w+(?:\(\))?)?$`)
	optionPattern      = regexp.MustCompile(`(\w+)(?:\s*=\s*(?:"([^"]*)"|'([^']*)'|([^\s"']+)))?`)
)

// Scan returns every directive outside code, in document order.
//
// An [api:...] placeholder is skipped when it already forms part of a link:
// followed by "(" or "[", preceded by "]" as in a reference link, or being
// the whole text of an enclosing link such as [[api:X]](url).
func Scan(text string) []Directive {
	mask := markdown.NewCodeMask(text)
	var out []Directive

	for _, m := range placeholderPattern.FindAllStringSubmatchIndex(text, -1) {
		start, end := m[0], m[1]
		if mask.Overlaps(start, end) {
			continue
		}
		inner := text[m[2]:m[3]]

		if rest, ok := strings.CutPrefix(inner, "api:"); ok {
			if !apiIdentifier.MatchString(rest) || partOfLink(text, start, end) {
				continue
			}
			out = append(out, Directive{Kind: KindAPI, Start: start, End: end, Raw: text[start:end], Identifier: rest})
			continue
		}

		out = append(out, Directive{
			Kind:     KindChildren,
			Start:    start,
			End:      end,
			Raw:      text[start:end],
			Children: ParseChildrenOptions(strings.TrimPrefix(inner, "CHILDREN")),
		})
	}
	return out
}

func partOfLink(text string, start, end int) bool {
	if end < len(text) && (text[end] == '(' || text[end] == '[') {
		return true
	}
	if start > 0 && text[start-1] == ']' {
		return true
	}
	return linkText(text, start, end)
}

// linkText reports whether text[start:end] is wrapped as "[...](" or "[...][".
func linkText(text string, start, end int) bool {
	if start == 0 || text[start-1] != '[' || end+1 >= len(text) || text[end] != ']' {
		return false
	}
	return text[end+1] == '(' || text[end+1] == '['
}

// ParseChildrenOptions parses the option list of a [CHILDREN] directive,
// for example `Folder="Models" asList` or `Exclude="How_tos,Recipes"`.
// Keys are case-insensitive. The first filter option wins; unknown keys
// are ignored.
func ParseChildrenOptions(s string) ChildrenOptions {
	opts := ChildrenOptions{Mode: ModeAll}

	for _, m := range optionPattern.FindAllStringSubmatch(s, -1) {
		key := strings.ToLower(m[1])
		value := m[2] + m[3] + m[4]

		switch key {
		case "aslist":
			opts.AsList = true
		case "includefolders":
			opts.IncludeFolders = true
		case "reverse":
			opts.Reverse = true
		case "folder":
			if opts.Mode == ModeAll && strings.TrimSpace(value) != "" {
				opts.Mode = ModeFolder
				opts.Folder = strings.TrimSpace(value)
			}
		case "exclude", "only":
			names := SplitNames(value)
			if opts.Mode == ModeAll && len(names) > 0 {
				opts.Mode = ModeExclude
				if key == "only" {
					opts.Mode = ModeOnly
				}
				opts.Names = names
			}
		}
	}
	return opts
}

// SplitNames splits a comma-separated name list, dropping blank entries.
func SplitNames(value string) []string {
	var names []string
	for _, n := range strings.Split(value, ",") {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	return names
}

// OfKind filters directives by kind.
func OfKind(ds []Directive, kind Kind) []Directive {
	var out []Directive
	for _, d := range ds {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
