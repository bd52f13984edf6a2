package metrics

import (
	"net/http"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "docnav"

// PrometheusRecorder implements Recorder using Prometheus metrics.
type PrometheusRecorder struct {
	indexBuildDuration *prom.HistogramVec
	documents          *prom.GaugeVec
	diagnostics        *prom.CounterVec
	cacheLookups       *prom.CounterVec
	cacheInvalidations *prom.CounterVec
	renderDuration     *prom.HistogramVec
}

// NewPrometheusRecorder constructs the metrics and registers them with reg.
// A nil registry gets a private one.
func NewPrometheusRecorder(reg prom.Registerer) *PrometheusRecorder {
	if reg == nil {
		reg = prom.NewRegistry()
	}
	pr := &PrometheusRecorder{
		indexBuildDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "index_build_duration_seconds",
			Help:      "Duration of document corpus builds",
			Buckets:   prom.DefBuckets,
		}, []string{"category", "result"}),
		documents: prom.NewGaugeVec(prom.GaugeOpts{
			Namespace: namespace,
			Name:      "documents",
			Help:      "Documents in the most recently built corpus",
		}, []string{"category"}),
		diagnostics: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "diagnostics_total",
			Help:      "Malformed-source diagnostics by kind",
		}, []string{"kind"}),
		cacheLookups: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "cache_lookups_total",
			Help:      "Corpus cache lookups by outcome",
		}, []string{"category", "outcome"}),
		cacheInvalidations: prom.NewCounterVec(prom.CounterOpts{
			Namespace: namespace,
			Name:      "cache_invalidations_total",
			Help:      "Corpus cache invalidations by reason",
		}, []string{"reason"}),
		renderDuration: prom.NewHistogramVec(prom.HistogramOpts{
			Namespace: namespace,
			Name:      "page_render_duration_seconds",
			Help:      "Duration of page renders",
			Buckets:   prom.DefBuckets,
		}, []string{"version"}),
	}
	reg.MustRegister(
		pr.indexBuildDuration,
		pr.documents,
		pr.diagnostics,
		pr.cacheLookups,
		pr.cacheInvalidations,
		pr.renderDuration,
	)
	return pr
}

func (p *PrometheusRecorder) ObserveIndexBuildDuration(category string, d time.Duration, result ResultLabel) {
	if p == nil {
		return
	}
	p.indexBuildDuration.WithLabelValues(category, string(result)).Observe(d.Seconds())
}

func (p *PrometheusRecorder) SetDocumentCount(category string, n int) {
	if p == nil {
		return
	}
	p.documents.WithLabelValues(category).Set(float64(n))
}

func (p *PrometheusRecorder) IncDiagnostic(kind string) {
	if p == nil {
		return
	}
	p.diagnostics.WithLabelValues(kind).Inc()
}

func (p *PrometheusRecorder) IncCacheHit(category string) {
	if p == nil {
		return
	}
	p.cacheLookups.WithLabelValues(category, "hit").Inc()
}

func (p *PrometheusRecorder) IncCacheMiss(category string) {
	if p == nil {
		return
	}
	p.cacheLookups.WithLabelValues(category, "miss").Inc()
}

func (p *PrometheusRecorder) IncCacheInvalidation(reason string) {
	if p == nil {
		return
	}
	p.cacheInvalidations.WithLabelValues(reason).Inc()
}

func (p *PrometheusRecorder) ObserveRenderDuration(version string, d time.Duration) {
	if p == nil {
		return
	}
	p.renderDuration.WithLabelValues(version).Observe(d.Seconds())
}

// HTTPHandler returns an http.Handler that serves the metrics gathered by g.
func HTTPHandler(g prom.Gatherer) http.Handler {
	if g == nil {
		g = prom.DefaultGatherer
	}
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{EnableOpenMetrics: true})
}
