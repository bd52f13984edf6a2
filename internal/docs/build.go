package docs

import (
	"fmt"
	"path"
	"strings"

	"github.com/google/uuid"

	"git.home.luguber.info/inful/docnav/internal/frontmatter"
	"git.home.luguber.info/inful/docnav/internal/slug"
	"git.home.luguber.info/inful/docnav/internal/sources"
)

// rootFileTitle is the fallback title of a version homepage.
const rootFileTitle = "Home"

// BuildOptions selects the documentation context a corpus is built for.
type BuildOptions struct {
	Category sources.Category
	// Registry decides which versions are known. Nil selects the default
	// registry of Category.
	Registry *sources.Registry
}

// Build turns raw source files into a corpus. It never fails: files that
// cannot be placed are excluded and every tolerated problem is returned as
// a Diagnostic.
func Build(files []SourceFile, opts BuildOptions) (*Corpus, []Diagnostic) {
	category := opts.Category
	if category == "" {
		category = sources.CategoryDocs
	}
	registry := opts.Registry
	if registry == nil {
		registry = sources.Default(category)
	}

	b := &builder{category: category, registry: registry, seen: make(map[string]*Document)}
	for _, f := range files {
		b.add(f)
	}
	b.checkStructure()
	return NewCorpus(category, b.docs), b.diags
}

type builder struct {
	category sources.Category
	registry *sources.Registry
	docs     []*Document
	seen     map[string]*Document
	diags    []Diagnostic
}

func (b *builder) report(kind DiagnosticKind, d Diagnostic, format string, args ...any) {
	d.ID = uuid.NewString()
	d.Kind = kind
	d.Category = b.category
	d.Message = fmt.Sprintf(format, args...)
	b.diags = append(b.diags, d)
}

func (b *builder) add(f SourceFile) {
	where := Diagnostic{Version: f.Version, Path: f.AbsolutePath}
	if where.Path == "" {
		where.Path = f.FilePath
	}

	if f.Category != "" && f.Category != b.category {
		b.report(KindUnknownVersion, where, "file belongs to category %q, index serves %q", f.Category, b.category)
		return
	}
	if !b.registry.HasVersion(f.Version) {
		b.report(KindUnknownVersion, where, "version %q is not configured for category %q", f.Version, b.category)
		return
	}

	addr := deriveAddress(f)

	parsed, warnings, err := frontmatter.Parse(f.Content)
	if err != nil {
		where.Slug = addr.slug
		b.report(KindFrontmatter, where, "front matter ignored: %v", err)
		parsed = frontmatter.Document{
			Body:        string(f.Content),
			Fingerprint: frontmatter.Fingerprint(nil, f.Content),
		}
	}
	for _, w := range warnings {
		where.Slug = addr.slug
		b.report(KindFrontmatter, where, "%s", w)
	}

	key := slug.LookupKey(addr.slug)
	if first, dup := b.seen[key]; dup {
		where.Slug = addr.slug
		b.report(KindDuplicateSlug, where, "slug already provided by %s", first.FilePath)
		return
	}

	meta := parsed.Meta
	title := strings.TrimSpace(meta.Title)
	if title == "" {
		title = slug.TitleCase(addr.fileTitle)
	}

	doc := &Document{
		Slug:             addr.slug,
		Version:          f.Version,
		Category:         b.category,
		OptionalFeature:  f.Feature,
		FilePath:         f.FilePath,
		FileAbsolutePath: f.AbsolutePath,
		FileTitle:        addr.fileTitle,
		Title:            title,
		IsIndex:          addr.isIndex,
		ParentSlug:       addr.parentSlug,
		Content:          parsed.Body,
		Summary:          meta.Summary,
		Icon:             meta.Icon,
		IconBrand:        meta.IconBrand,
		HideChildren:     meta.HideChildren,
		HideSelf:         meta.HideSelf,
		UnhideSelf:       meta.UnhideSelf,
		Extra:            meta.Extra,
		Fingerprint:      parsed.Fingerprint,
		EditURL:          b.registry.EditURL(f.Version, f.FilePath, f.Feature),
		Order:            len(b.docs),
	}
	b.seen[key] = doc
	b.docs = append(b.docs, doc)
}

// checkStructure reports missing version roots, self-parented documents and
// orphans. None of them remove documents from the corpus.
func (b *builder) checkStructure() {
	versions := make(map[string]bool)
	for _, d := range b.docs {
		if _, ok := versions[d.Version]; !ok {
			versions[d.Version] = false
		}
		if d.IsVersionRoot() {
			versions[d.Version] = true
		}
	}
	for v, hasRoot := range versions {
		if !hasRoot {
			b.report(KindMissingRoot, Diagnostic{Version: v, Slug: slug.VersionRoot(v)}, "version %s has no root index document", v)
		}
	}

	for _, d := range b.docs {
		if d.ParentSlug == "" {
			continue
		}
		where := Diagnostic{Version: d.Version, Slug: d.Slug, ParentSlug: d.ParentSlug, Path: d.FilePath}
		if slug.LookupKey(d.ParentSlug) == slug.LookupKey(d.Slug) {
			b.report(KindSelfParent, where, "document is its own parent")
			continue
		}
		if _, ok := b.seen[slug.LookupKey(d.ParentSlug)]; !ok {
			b.report(KindOrphan, where, "parent %s has no index document", d.ParentSlug)
		}
	}
}

type address struct {
	slug       string
	parentSlug string
	isIndex    bool
	fileTitle  string
}

// deriveAddress computes slug, parent slug and fallback title from the
// file's position below its version directory.
func deriveAddress(f SourceFile) address {
	filePath := strings.Trim(strings.ReplaceAll(f.FilePath, `\`, "/"), "/")
	dir, file := path.Split(filePath)

	var dirs []string
	if f.Feature != "" {
		dirs = append(dirs, OptionalFeaturesDir, f.Feature)
	}
	if dir = strings.Trim(dir, "/"); dir != "" {
		dirs = append(dirs, strings.Split(dir, "/")...)
	}
	segments := make([]string, len(dirs))
	for i, d := range dirs {
		segments[i] = slug.Segment(d)
	}

	name := strings.TrimSuffix(file, path.Ext(file))
	if strings.EqualFold(name, "index") {
		a := address{isIndex: true, slug: slug.FromSegments(f.Version, segments...)}
		if len(segments) == 0 {
			a.fileTitle = rootFileTitle
			return a
		}
		a.parentSlug = slug.FromSegments(f.Version, segments[:len(segments)-1]...)
		a.fileTitle = displayName(dirs[len(dirs)-1])
		return a
	}

	return address{
		slug:       slug.FromSegments(f.Version, append(segments, slug.Segment(name))...),
		parentSlug: slug.FromSegments(f.Version, segments...),
		fileTitle:  displayName(name),
	}
}

// displayName turns a source file or directory name into words.
func displayName(name string) string {
	return strings.TrimSpace(strings.ReplaceAll(slug.StripNumericPrefix(name), "_", " "))
}
