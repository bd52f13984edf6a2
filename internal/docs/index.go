package docs

import (
	"log/slog"
	"sync"
	"time"

	ferrors "git.home.luguber.info/inful/docnav/internal/foundation/errors"
	"git.home.luguber.info/inful/docnav/internal/logfields"
	"git.home.luguber.info/inful/docnav/internal/metrics"
	"git.home.luguber.info/inful/docnav/internal/sources"
)

// Invalidation reasons used for logging and metrics.
const (
	ReasonManual  = "manual"
	ReasonWatch   = "watch"
	ReasonRefresh = "refresh"
)

// Index is the lazily built, cached corpus of one documentation category.
// Zero-valued optional fields take defaults on first use: a fresh Cache, the
// default registry of Category, a LogSink and a NoopRecorder.
type Index struct {
	Source   Source
	Category sources.Category
	Registry *sources.Registry
	Cache    *Cache
	Sink     DiagnosticSink
	Recorder metrics.Recorder

	once sync.Once
}

// NewIndex returns an index over src for category with default collaborators.
func NewIndex(src Source, category sources.Category) *Index {
	return &Index{Source: src, Category: category}
}

func (idx *Index) init() {
	idx.once.Do(func() {
		if idx.Category == "" {
			idx.Category = sources.CategoryDocs
		}
		if idx.Registry == nil {
			idx.Registry = sources.Default(idx.Category)
		}
		if idx.Cache == nil {
			idx.Cache = NewCache()
		}
		idx.Recorder = metrics.OrNoop(idx.Recorder)
		if idx.Sink == nil {
			idx.Sink = LogSink{Recorder: idx.Recorder}
		}
	})
}

// Corpus returns the cached corpus, building it on first use or after an
// invalidation. Only the content source can make this fail.
func (idx *Index) Corpus() (*Corpus, error) {
	idx.init()
	corpus, hit, err := idx.Cache.GetOrBuild(idx.build)
	if err != nil {
		return nil, err
	}
	category := string(idx.Category)
	if hit {
		idx.Recorder.IncCacheHit(category)
	} else {
		idx.Recorder.IncCacheMiss(category)
	}
	return corpus, nil
}

// AllDocuments returns every document of the corpus in enumeration order.
func (idx *Index) AllDocuments() ([]*Document, error) {
	corpus, err := idx.Corpus()
	if err != nil {
		return nil, err
	}
	return corpus.All(), nil
}

// ClearCache discards the memoized corpus; the next call rebuilds it.
func (idx *Index) ClearCache() {
	idx.Invalidate(ReasonManual)
}

// Invalidate discards the memoized corpus, recording why.
func (idx *Index) Invalidate(reason string) {
	idx.init()
	if idx.Cache.Invalidate() {
		slog.Debug("Document index invalidated",
			logfields.Category(string(idx.Category)),
			slog.String("reason", reason))
	}
	idx.Recorder.IncCacheInvalidation(reason)
}

func (idx *Index) build() (*Corpus, error) {
	start := time.Now()
	category := string(idx.Category)

	if idx.Source == nil {
		idx.Recorder.ObserveIndexBuildDuration(category, time.Since(start), metrics.ResultFailed)
		return nil, ferrors.InternalError("document index has no content source").
			WithContext("category", category).Build()
	}

	files, err := idx.Source.Files()
	if err != nil {
		idx.Recorder.ObserveIndexBuildDuration(category, time.Since(start), metrics.ResultFailed)
		if ferrors.IsClassified(err) {
			return nil, err
		}
		return nil, ferrors.WrapError(err, ferrors.CategoryDocs, "load documentation sources").
			WithContext("category", category).Build()
	}

	corpus, diags := Build(files, BuildOptions{Category: idx.Category, Registry: idx.Registry})
	for _, d := range diags {
		idx.Sink.Report(d)
	}

	elapsed := time.Since(start)
	idx.Recorder.ObserveIndexBuildDuration(category, elapsed, metrics.ResultSuccess)
	idx.Recorder.SetDocumentCount(category, corpus.Len())
	slog.Info("Document index built",
		logfields.Category(category),
		logfields.Count(corpus.Len()),
		slog.Int("diagnostics", len(diags)),
		slog.Int("source_files", len(files)),
		logfields.DurationMS(float64(elapsed.Microseconds())/1000))
	return corpus, nil
}
