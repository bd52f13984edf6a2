package docs

import (
	"log/slog"
	"sync"

	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/sources"
)

// DiagnosticKind classifies a tolerated malformed-source condition.
type DiagnosticKind string

const (
	KindOrphan         DiagnosticKind = "orphan"
	KindSelfParent     DiagnosticKind = "self_parent"
	KindDuplicateSlug  DiagnosticKind = "duplicate_slug"
	KindUnknownVersion DiagnosticKind = "unknown_version"
	KindMissingRoot    DiagnosticKind = "missing_root"
	KindFrontmatter    DiagnosticKind = "frontmatter"
)

// Diagnostic records a content-authoring mistake the engine worked around.
type Diagnostic struct {
	ID         string           `json:"id"`
	Kind       DiagnosticKind   `json:"kind"`
	Category   sources.Category `json:"category"`
	Version    string           `json:"version,omitempty"`
	Slug       string           `json:"slug,omitempty"`
	ParentSlug string           `json:"parentSlug,omitempty"`
	Path       string           `json:"path,omitempty"`
	Message    string           `json:"message"`
}

// DiagnosticSink receives diagnostics. Implementations must be safe for
// concurrent use.
type DiagnosticSink interface {
	Report(d Diagnostic)
}

// SinkFunc adapts a function to DiagnosticSink.
type SinkFunc func(Diagnostic)

// Report calls f(d).
func (f SinkFunc) Report(d Diagnostic) { f(d) }

// LogSink logs each diagnostic at WARN and counts it.
type LogSink struct {
	Logger   *slog.Logger
	Recorder metrics.Recorder
}

// Report implements DiagnosticSink.
func (s LogSink) Report(d Diagnostic) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	logger.Warn("Malformed documentation source",
		logfields.Kind(string(d.Kind)),
		logfields.Category(string(d.Category)),
		logfields.Version(d.Version),
		logfields.Slug(d.Slug),
		logfields.ParentSlug(d.ParentSlug),
		logfields.Path(d.Path),
		slog.String("diagnostic_id", d.ID),
		slog.String("detail", d.Message))
	metrics.OrNoop(s.Recorder).IncDiagnostic(string(d.Kind))
}

// CollectingSink keeps every diagnostic in memory.
type CollectingSink struct {
	mu    sync.Mutex
	items []Diagnostic
}

// Report implements DiagnosticSink.
func (s *CollectingSink) Report(d Diagnostic) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = append(s.items, d)
}

// Diagnostics returns a copy of everything reported so far.
func (s *CollectingSink) Diagnostics() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Diagnostic, len(s.items))
	copy(out, s.items)
	return out
}

// OfKind filters diagnostics by kind.
func OfKind(diags []Diagnostic, kind DiagnosticKind) []Diagnostic {
	var out []Diagnostic
	for _, d := range diags {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
