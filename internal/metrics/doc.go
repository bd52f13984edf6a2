// Package metrics provides the observability hooks for docnav.
//
// Components receive a Recorder through dependency injection and default to
// NoopRecorder, so metrics never require nil checks at call sites:
//
//	idx := &docs.Index{Recorder: metrics.NoopRecorder{}}
//
// The serve command swaps in a PrometheusRecorder and exposes it with
// HTTPHandler on /metrics.
package metrics
