package commands

import "fmt"

// RoutesCmd implements the 'routes' command.
type RoutesCmd struct {
	Version string `arg:"" optional:"" help:"Only list slugs of this version"`
}

func (r *RoutesCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	corpus, err := NewIndex(cfg, nil, nil).Corpus()
	if err != nil {
		return err
	}
	list := corpus.All()
	if r.Version != "" {
		list = corpus.VersionDocuments(r.Version)
	}
	for _, d := range list {
		fmt.Fprintln(g.Out, d.Slug)
	}
	return nil
}
