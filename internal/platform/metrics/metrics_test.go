package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestMetricsExposedThroughHandler(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := New(reg)
	m.ObserveImport(ResultSuccess, 20*time.Millisecond)
	m.AddBatchUnits(2, 1)

	rec := httptest.NewRecorder()
	Handler(reg).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body := rec.Body.String()
	for _, want := range []string{
		`mtg_tracker_tournament_imports_total{result="success"} 1`,
		`mtg_tracker_batch_match_units_total{result="failed"} 1`,
		`mtg_tracker_batch_match_units_total{result="success"} 2`,
	} {
		if !strings.Contains(body, want) {
			t.Fatalf("expected %q in metrics output:\n%s", want, body)
		}
	}
}

func TestNilMetricsIsNoop(t *testing.T) {
	t.Parallel()

	var m *Metrics
	m.ObserveImport(ResultFailed, time.Second)
	m.AddBatchUnits(1, 1)
}
