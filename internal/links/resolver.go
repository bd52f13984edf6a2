// Package links rewrites cross-document references in docs markdown and in
// the HTML rendered from it.
//
// Relative markdown links and image paths are resolved against the file that
// contains them and turned into site URLs of the form /en/{version}/.../.
// Every operation is total: input that cannot be resolved is returned
// unchanged.
package links

import (
	"path"
	"regexp"
	"strings"

	"git.home.luguber.info/inful/docnav/internal/slug"
)

// DefaultAPILookupURL is the API documentation search endpoint.
const DefaultAPILookupURL = "https://api.silverstripe.org/search/lookup"

// DefaultContentRoots are the path markers that prefix version directories
// in cached or fixture content.
var DefaultContentRoots = []string{".cache/docs", ".cache/user", "testdata/docs", "testdata/user"}

var (
	schemePattern  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*:`)
	versionSegment = regexp.MustCompile(`^v[0-9]+$`)
)

// Resolver resolves links found in documents. The zero value uses the
// default content roots and API lookup URL.
type Resolver struct {
	ContentRoots []string
	APILookupURL string
}

// NewResolver returns a Resolver with default settings.
func NewResolver() *Resolver {
	return &Resolver{
		ContentRoots: append([]string(nil), DefaultContentRoots...),
		APILookupURL: DefaultAPILookupURL,
	}
}

func (r *Resolver) roots() []string {
	if r == nil || len(r.ContentRoots) == 0 {
		return DefaultContentRoots
	}
	return r.ContentRoots
}

func (r *Resolver) lookupURL() string {
	if r == nil || r.APILookupURL == "" {
		return DefaultAPILookupURL
	}
	return r.APILookupURL
}

// passThrough reports links that are never resolved: empty, anchor-only,
// absolute, or carrying a scheme such as https:, mailto: or api:.
func passThrough(link string) bool {
	return link == "" ||
		strings.HasPrefix(link, "#") ||
		strings.HasPrefix(link, "/") ||
		schemePattern.MatchString(link)
}

// ResolveMarkdownLink turns a relative link inside currentFile into the site
// URL of its target for version. A trailing .md is optional; a final index
// segment resolves to its directory. The query string and fragment are kept.
//
// Anchor-only, absolute and scheme links, and calls without currentFile or
// version, return link unchanged.
func (r *Resolver) ResolveMarkdownLink(link, currentFile, version string) string {
	if passThrough(link) || currentFile == "" || version == "" {
		return link
	}

	target, suffix := splitSuffix(link)
	segments, ok := r.relativeSegments(target, currentFile)
	if !ok {
		return link
	}

	if n := len(segments); n > 0 {
		last := segments[n-1]
		lower := strings.ToLower(last)
		switch {
		case strings.HasSuffix(lower, ".md"):
			segments[n-1] = last[:len(last)-len(".md")]
		case strings.HasSuffix(lower, ".markdown"):
			segments[n-1] = last[:len(last)-len(".markdown")]
		}
	}

	cleaned := make([]string, 0, len(segments))
	for _, s := range segments {
		cleaned = append(cleaned, strings.ToLower(slug.StripNumericPrefix(s)))
	}
	if n := len(cleaned); n > 0 && cleaned[n-1] == "index" {
		cleaned = cleaned[:n-1]
	}

	return slug.FromSegments(version, cleaned...) + suffix
}

// ResolveImagePath turns a relative asset path inside currentFile into its
// site URL. The version is taken from the v{N} directory of the resolved
// path. Directory segments are cleaned like page links, except that
// underscore-led directories such as _images are kept verbatim; the file
// name is kept as written.
func (r *Resolver) ResolveImagePath(p, currentFile string) string {
	if passThrough(p) || currentFile == "" {
		return p
	}

	target, suffix := splitSuffix(p)
	segments, ok := r.relativeSegments(target, currentFile)
	if !ok || len(segments) == 0 {
		return p
	}

	version, ok := r.versionOf(target, currentFile)
	if !ok {
		return p
	}

	n := len(segments)
	cleaned := make([]string, 0, n+2)
	cleaned = append(cleaned, "en", version)
	for _, s := range segments[:n-1] {
		if strings.HasPrefix(s, "_") {
			cleaned = append(cleaned, s)
			continue
		}
		cleaned = append(cleaned, strings.ToLower(slug.StripNumericPrefix(s)))
	}
	cleaned = append(cleaned, segments[n-1])

	return "/" + strings.Join(cleaned, "/") + suffix
}

// relativeSegments resolves target against the directory of currentFile and
// returns the path segments below the version directory.
func (r *Resolver) relativeSegments(target, currentFile string) ([]string, bool) {
	parts, ok := r.underRoot(target, currentFile)
	if !ok {
		return nil, false
	}
	if len(parts) > 0 && versionSegment.MatchString(parts[0]) {
		parts = parts[1:]
	}
	return parts, true
}

func (r *Resolver) versionOf(target, currentFile string) (string, bool) {
	parts, ok := r.underRoot(target, currentFile)
	if !ok || len(parts) == 0 || !versionSegment.MatchString(parts[0]) {
		return "", false
	}
	return strings.TrimPrefix(parts[0], "v"), true
}

// underRoot resolves target and strips everything up to and including the
// first known content root. Without a known root it falls back to the last
// v{N} directory in the path.
func (r *Resolver) underRoot(target, currentFile string) ([]string, bool) {
	base := path.Dir(strings.ReplaceAll(currentFile, "\\", "/"))
	resolved := path.Join(base, strings.ReplaceAll(target, "\\", "/"))
	if strings.HasSuffix(target, "/") {
		resolved += "/"
	}

	for _, root := range r.roots() {
		marker := "/" + strings.Trim(root, "/") + "/"
		if i := strings.Index("/"+resolved, marker); i >= 0 {
			return splitPath(("/" + resolved)[i+len(marker):]), true
		}
	}

	parts := splitPath(resolved)
	for i := len(parts) - 1; i >= 0; i-- {
		if versionSegment.MatchString(parts[i]) {
			return parts[i:], true
		}
	}
	return nil, false
}

func splitPath(p string) []string {
	var out []string
	for _, s := range strings.Split(p, "/") {
		if s != "" && s != "." {
			out = append(out, s)
		}
	}
	return out
}

// splitSuffix cuts link before its query string or fragment, whichever
// comes first, and returns both halves.
func splitSuffix(link string) (string, string) {
	if i := strings.IndexAny(link, "?#"); i >= 0 {
		return link[:i], link[i:]
	}
	return link, ""
}
