package pipeline

import (
	"git.home.luguber.info/inful/docnav/internal/docs"
	"git.home.luguber.info/inful/docnav/internal/toc"
)

// Page is one document being rendered. Transforms modify Body and HTML in
// place; Document and Corpus are read-only.
type Page struct {
	Document *docs.Document
	Corpus   *docs.Corpus

	// Body is the markdown body, front matter already removed.
	Body string
	// HTML is set once the markdown stage has run.
	HTML string
	// Headings is the table of contents of the page.
	Headings []toc.Heading
}

// NewPage starts a page from the document's stored body.
func NewPage(c *docs.Corpus, d *docs.Document) *Page {
	return &Page{Document: d, Corpus: c, Body: d.Content}
}

// Transform is one rendering step.
type Transform func(p *Page) error
