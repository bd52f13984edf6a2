// Package slug holds the pure string functions that define docnav's
// addressing scheme: canonical slug form, comparison form, numeric-prefix
// stripping and fallback title casing.
package slug

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var numericPrefix = regexp.MustCompile(`^[0-9]+_`)

// upperCaser capitalizes the first letter of a word. The remainder is left
// as written, so acronyms such as "CMS" and hyphenated words survive.
var upperCaser = cases.Upper(language.Und)

// Normalize ensures exactly one leading and one trailing slash. Internal
// double slashes are passed through untouched.
func Normalize(s string) string {
	s = strings.TrimLeft(s, "/")
	s = strings.TrimRight(s, "/")
	if s == "" {
		return "/"
	}
	return "/" + s + "/"
}

// ForComparison is the form used for existence and equality checks, so that
// /EN/6/Foo/ and en/6/foo resolve identically.
func ForComparison(s string) string {
	return strings.ToLower(Normalize(s))
}

// LookupKey extends ForComparison by folding underscores into hyphens. Link
// resolution keeps directory names such as optional_features verbatim while
// document slugs are hyphenated; both meet on this key.
func LookupKey(s string) string {
	return strings.ReplaceAll(ForComparison(s), "_", "-")
}

// Equal reports whether two slugs address the same document.
func Equal(a, b string) bool {
	return ForComparison(a) == ForComparison(b)
}

// StripNumericPrefix removes a leading run of digits followed by an
// underscore: "04_security" becomes "security". It applies to a single
// path segment.
func StripNumericPrefix(segment string) string {
	return numericPrefix.ReplaceAllString(segment, "")
}

// Segment converts one source path segment into its slug form.
func Segment(segment string) string {
	s := strings.ToLower(StripNumericPrefix(segment))
	s = strings.ReplaceAll(s, "_", "-")
	s = strings.ReplaceAll(s, " ", "-")
	return s
}

// FromSegments builds the canonical slug for a version and its path segments.
// Segments are used as given; callers convert source names with Segment.
func FromSegments(version string, segments ...string) string {
	parts := make([]string, 0, len(segments)+2)
	parts = append(parts, "en", version)
	for _, s := range segments {
		s = strings.Trim(s, "/")
		if s != "" {
			parts = append(parts, s)
		}
	}
	return Normalize(strings.Join(parts, "/"))
}

// VersionRoot returns the slug of a version's homepage.
func VersionRoot(version string) string {
	return FromSegments(version)
}

// TitleCase joins underscore or space separated words, capitalizing each.
// It is used for fallback titles only, never for slugs.
func TitleCase(words string) string {
	fields := strings.FieldsFunc(words, func(r rune) bool {
		return r == '_' || r == ' '
	})
	for i, f := range fields {
		_, size := utf8.DecodeRuneInString(f)
		fields[i] = upperCaser.String(f[:size]) + f[size:]
	}
	return strings.Join(fields, " ")
}
