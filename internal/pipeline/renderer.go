// Package pipeline renders documents to HTML.
//
// Rendering runs a fixed chain of transforms over a Page: [CHILDREN]
// expansion, api shorthand cleanup and link rewriting on the markdown, then
// goldmark, then api link rewriting and table of contents insertion on the
// HTML.
package pipeline

import (
	"bytes"
	"log/slog"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"git.home.luguber.info/inful/docnav/internal/children"
	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/links"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/toc"
)

// Renderer turns corpus documents into HTML pages.
type Renderer struct {
	Resolver *links.Resolver
	Recorder metrics.Recorder
	// WithTOC inserts the table of contents after the first heading.
	WithTOC bool

	md         goldmark.Markdown
	transforms []Transform
}

// NewRenderer returns a renderer using resolver for link rewriting. A nil
// resolver selects the defaults.
func NewRenderer(resolver *links.Resolver, recorder metrics.Recorder) *Renderer {
	if resolver == nil {
		resolver = links.NewResolver()
	}
	r := &Renderer{
		Resolver: resolver,
		Recorder: metrics.OrNoop(recorder),
		WithTOC:  true,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAttribute()),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
	r.transforms = []Transform{
		expandChildren,
		cleanAPITags,
		r.rewriteLinks,
		annotateHeadings,
		r.renderMarkdown,
		r.rewriteAPILinks,
		r.insertTOC,
	}
	return r
}

// Render runs every transform over d and returns the finished page.
func (r *Renderer) Render(c *docs.Corpus, d *docs.Document) (*Page, error) {
	if d == nil {
		return nil, ferrors.ValidationError("cannot render a nil document").Build()
	}

	start := time.Now()
	p := NewPage(c, d)
	for _, t := range r.transforms {
		if err := t(p); err != nil {
			return nil, err
		}
	}

	elapsed := time.Since(start)
	r.Recorder.ObserveRenderDuration(d.Version, elapsed)
	slog.Debug("Page rendered",
		logfields.Slug(d.Slug),
		logfields.Version(d.Version),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return p, nil
}

func expandChildren(p *Page) error {
	p.Body = children.Expand(p.Body, p.Corpus, p.Document)
	return nil
}

func cleanAPITags(p *Page) error {
	p.Body = links.CleanAPITags(p.Body)
	return nil
}

func (r *Renderer) rewriteLinks(p *Page) error {
	p.Body = r.Resolver.RewriteLinks(p.Body, p.Document.FileAbsolutePath, p.Document.Version)
	return nil
}

func annotateHeadings(p *Page) error {
	p.Headings = toc.ExtractHeadings(p.Body)
	p.Body = toc.AnnotateHeadings(p.Body)
	return nil
}

func (r *Renderer) renderMarkdown(p *Page) error {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(p.Body), &buf); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryDocs, "render markdown").
			WithContext("slug", p.Document.Slug).Build()
	}
	p.HTML = buf.String()
	return nil
}

func (r *Renderer) rewriteAPILinks(p *Page) error {
	p.HTML = r.Resolver.RewriteAPILinksInHTML(p.HTML, p.Document.Version)
	return nil
}

func (r *Renderer) insertTOC(p *Page) error {
	if r.WithTOC {
		p.HTML = toc.InsertAfterH1(p.HTML, toc.GenerateHTML(p.Headings))
	}
	return nil
}
