package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusRecorder(t *testing.T) {
	reg := prom.NewRegistry()
	pr := NewPrometheusRecorder(reg)
	pr.ObserveIndexBuildDuration("docs", 150*time.Millisecond, ResultSuccess)
	pr.SetDocumentCount("docs", 42)
	pr.IncDiagnostic("orphan")
	pr.IncDiagnostic("orphan")
	pr.IncCacheHit("docs")
	pr.IncCacheMiss("docs")
	pr.IncCacheInvalidation("watch")
	pr.ObserveRenderDuration("6", 5*time.Millisecond)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, mfs, 6)

	assert.InDelta(t, 42, testutil.ToFloat64(pr.documents.WithLabelValues("docs")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(pr.diagnostics.WithLabelValues("orphan")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(pr.cacheLookups.WithLabelValues("docs", "hit")), 0)
}

func TestPrometheusRecorder_NilReceiver(t *testing.T) {
	var pr *PrometheusRecorder
	assert.NotPanics(t, func() {
		pr.IncDiagnostic("orphan")
		pr.SetDocumentCount("docs", 1)
		pr.ObserveRenderDuration("6", time.Second)
	})
}

func TestHTTPHandler(t *testing.T) {
	reg := prom.NewRegistry()
	NewPrometheusRecorder(reg).IncDiagnostic("duplicate_slug")

	rec := httptest.NewRecorder()
	HTTPHandler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `docnav_diagnostics_total{kind="duplicate_slug"} 1`))
}

func TestOrNoop(t *testing.T) {
	assert.Equal(t, NoopRecorder{}, OrNoop(nil))
	pr := NewPrometheusRecorder(nil)
	assert.Same(t, pr, OrNoop(pr))
}
