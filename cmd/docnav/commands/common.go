// Package commands implements the docnav subcommands.
package commands

import (
	"encoding/json"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"

	"git.home.luguber.info/inful/docnav/internal/config"
	"git.home.luguber.info/inful/docnav/internal/docs"
	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/git"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
)

// Global carries state shared by every subcommand.
type Global struct {
	// Out receives command output. Logs go to stderr.
	Out io.Writer
}

// CLI is the root command line.
type CLI struct {
	Config  string           `short:"c" help:"Configuration file path (defaults apply when empty)" type:"path"`
	Root    string           `help:"Content root holding v{N} directories; overrides content.root"`
	Verbose bool             `short:"v" help:"Enable verbose logging"`
	Version kong.VersionFlag `name:"version" help:"Show version and exit"`

	Nav    NavCmd    `cmd:"" help:"Print the navigation tree of a version"`
	Lookup LookupCmd `cmd:"" help:"Look up a document by slug"`
	Routes RoutesCmd `cmd:"" help:"List every document slug"`
	Render RenderCmd `cmd:"" help:"Render a document to HTML"`
	Check  CheckCmd  `cmd:"" help:"Build the corpus and report content diagnostics"`
	Serve  ServeCmd  `cmd:"" help:"Serve the HTTP API"`
	Init   InitCmd   `cmd:"" help:"Write an example configuration file"`
}

// AfterApply runs after flag parsing; setup logging once.
// nolint:unparam // AfterApply currently never returns an error.
func (c *CLI) AfterApply() error {
	level := slog.LevelInfo
	if c.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return nil
}

// LoadConfig loads the configuration and applies command line overrides.
func (c *CLI) LoadConfig() (*config.Config, error) {
	cfg, err := config.Load(c.Config)
	if err != nil {
		return nil, err
	}
	if c.Root != "" {
		cfg.Content.Root = c.Root
		cfg.Content.ReposDir = ""
	}
	return cfg, nil
}

// NewSource selects the content source: local git clones when repos_dir is
// configured, the content root otherwise.
func NewSource(cfg *config.Config) docs.Source {
	if cfg.Content.ReposDir != "" {
		slog.Debug("Reading content from git clones", logfields.Path(cfg.Content.ReposDir))
		return git.TreeSource{ReposDir: cfg.Content.ReposDir, Registry: cfg.Registry()}
	}
	slog.Debug("Reading content from directory", logfields.Path(cfg.Content.Root))
	return docs.FilesystemSource{Root: cfg.Content.Root, Category: cfg.Category}
}

// NewIndex builds the document index described by cfg.
func NewIndex(cfg *config.Config, recorder metrics.Recorder, sink docs.DiagnosticSink) *docs.Index {
	idx := docs.NewIndex(NewSource(cfg), cfg.Category)
	idx.Registry = cfg.Registry()
	idx.Recorder = recorder
	idx.Sink = sink
	return idx
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return ferrors.WrapError(err, ferrors.CategoryInternal, "failed to encode output").Build()
	}
	return nil
}
