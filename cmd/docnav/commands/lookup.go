package commands

import (
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
)

// LookupCmd implements the 'lookup' command.
type LookupCmd struct {
	Slug string `arg:"" help:"Slug to look up; case and surrounding slashes are ignored"`
}

func (l *LookupCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	corpus, err := NewIndex(cfg, nil, nil).Corpus()
	if err != nil {
		return err
	}
	doc := corpus.DocumentBySlug(l.Slug)
	if doc == nil {
		return ferrors.NotFoundError("document not found").WithContext("slug", l.Slug).Build()
	}
	return writeJSON(g.Out, doc)
}
