package commands

import (
	"fmt"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/pipeline"
)

// RenderCmd implements the 'render' command.
type RenderCmd struct {
	Slug  string `arg:"" help:"Slug of the document to render"`
	NoTOC bool   `name:"no-toc" help:"Do not insert the table of contents"`
}

func (r *RenderCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	corpus, err := NewIndex(cfg, nil, nil).Corpus()
	if err != nil {
		return err
	}
	doc := corpus.DocumentBySlug(r.Slug)
	if doc == nil {
		return ferrors.NotFoundError("document not found").WithContext("slug", r.Slug).Build()
	}

	renderer := pipeline.NewRenderer(cfg.Resolver(), nil)
	renderer.WithTOC = !r.NoTOC
	page, err := renderer.Render(corpus, doc)
	if err != nil {
		return err
	}
	fmt.Fprint(g.Out, page.HTML)
	return nil
}
