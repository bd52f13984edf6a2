package metrics

import "time"

// ResultLabel enumerates outcome categories for counters.
type ResultLabel string

const (
	ResultSuccess ResultLabel = "success"
	ResultFailed  ResultLabel = "failed"
)

// Recorder defines observability hooks for corpus builds, lookups and page
// renders. Implementations may forward to Prometheus or any other backend.
type Recorder interface {
	ObserveIndexBuildDuration(category string, d time.Duration, result ResultLabel)
	SetDocumentCount(category string, n int)
	IncDiagnostic(kind string)
	IncCacheHit(category string)
	IncCacheMiss(category string)
	IncCacheInvalidation(reason string)
	ObserveRenderDuration(version string, d time.Duration)
}

// NoopRecorder is a Recorder that does nothing (default when metrics not configured).
type NoopRecorder struct{}

func (NoopRecorder) ObserveIndexBuildDuration(string, time.Duration, ResultLabel) {}
func (NoopRecorder) SetDocumentCount(string, int)                                 {}
func (NoopRecorder) IncDiagnostic(string)                                         {}
func (NoopRecorder) IncCacheHit(string)                                           {}
func (NoopRecorder) IncCacheMiss(string)                                          {}
func (NoopRecorder) IncCacheInvalidation(string)                                  {}
func (NoopRecorder) ObserveRenderDuration(string, time.Duration)                  {}

// OrNoop returns r, or a NoopRecorder when r is nil.
func OrNoop(r Recorder) Recorder {
	if r == nil {
		return NoopRecorder{}
	}
	return r
}
