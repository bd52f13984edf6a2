package commands

import (
	"fmt"
	"io"
	"slices"
	"strings"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/navtree"
)

// NavCmd implements the 'nav' command.
type NavCmd struct {
	Version string `arg:"" help:"Documentation version, for example 6"`
	Current string `help:"Slug of the current page; marks the active trail"`
	Order   string `help:"Sibling order (source or title); overrides nav.order"`
	JSON    bool   `help:"Print the tree as JSON"`
}

func (n *NavCmd) Run(g *Global, root *CLI) error {
	cfg, err := root.LoadConfig()
	if err != nil {
		return err
	}
	idx := NewIndex(cfg, nil, nil)
	corpus, err := idx.Corpus()
	if err != nil {
		return err
	}
	if !slices.Contains(corpus.Versions(), n.Version) {
		return ferrors.NotFoundError("unknown version").
			WithContext("version", n.Version).
			WithContext("available", strings.Join(corpus.Versions(), ",")).Build()
	}

	order := cfg.Nav.Order
	if n.Order != "" {
		order = navtree.Order(n.Order)
		if !order.Valid() {
			return ferrors.ValidationError("order must be source or title").
				WithContext("order", n.Order).Build()
		}
	}
	nodes := navtree.Build(corpus.All(), n.Version, n.Current, navtree.Options{Order: order, Sink: idx.Sink})
	if n.JSON {
		return writeJSON(g.Out, nodes)
	}
	printTree(g.Out, nodes, 0)
	return nil
}

func printTree(w io.Writer, nodes []*navtree.Node, depth int) {
	for _, node := range nodes {
		marker := ""
		if node.IsActive {
			marker = " *"
		}
		fmt.Fprintf(w, "%s%s  %s%s\n", strings.Repeat("  ", depth), node.Title, node.Slug, marker)
		printTree(w, node.Children, depth+1)
	}
}
