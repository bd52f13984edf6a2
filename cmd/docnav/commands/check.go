package commands

import (
	"fmt"
	"log/slog"

	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/navtree"
)

// CheckCmd implements the 'check' command. It builds the corpus and every
// version's navigation tree and lists what the engine had to work around.
type CheckCmd struct {
	Strict bool `help:"Fail when any diagnostic is reported"`
	JSON   bool `help:"Print diagnostics as JSON"`
}

func (c *CheckCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	sink := &docs.CollectingSink{}
	idx := NewIndex(cfg, nil, sink)
	corpus, err := idx.Corpus()
	if err != nil {
		return err
	}
	for _, v := range corpus.Versions() {
		navtree.Build(corpus.All(), v, "", navtree.Options{Order: cfg.Nav.Order, Sink: sink})
	}

	diags := sink.Diagnostics()
	slog.Info("Content checked",
		logfields.Category(string(cfg.Category)),
		logfields.Count(corpus.Len()),
		slog.Int("diagnostics", len(diags)))

	if c.JSON {
		if diags == nil {
			diags = []docs.Diagnostic{}
		}
		if err := writeJSON(g.Out, diags); err != nil {
			return err
		}
	} else {
		for _, d := range diags {
			where := d.Slug
			if where == "" {
				where = d.Path
			}
			fmt.Fprintf(g.Out, "%s\t%s\t%s\n", d.Kind, where, d.Message)
		}
	}

	if c.Strict && len(diags) > 0 {
		return ferrors.NewError(ferrors.CategoryDocs, "content diagnostics reported").
			WithContext("count", len(diags)).Build()
	}
	return nil
}
