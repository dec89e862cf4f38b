package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "mtg_tracker"

const (
	ResultSuccess = "success"
	ResultFailed  = "failed"
)

// Metrics holds the write-path collectors. A nil *Metrics records nothing.
type Metrics struct {
	imports        *prometheus.CounterVec
	importDuration prometheus.Histogram
	batchUnits     *prometheus.CounterVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		imports: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "tournament_imports_total",
			Help:      "Tournament imports by result.",
		}, []string{"result"}),
		importDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "tournament_import_duration_seconds",
			Help:      "Wall time of tournament imports, committed or rolled back.",
			Buckets:   prometheus.DefBuckets,
		}),
		batchUnits: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "batch_match_units_total",
			Help:      "Batch match units by result.",
		}, []string{"result"}),
	}
	if reg != nil {
		reg.MustRegister(m.imports, m.importDuration, m.batchUnits)
	}
	return m
}

func (m *Metrics) ObserveImport(result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.imports.WithLabelValues(result).Inc()
	m.importDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) AddBatchUnits(success, failed int) {
	if m == nil {
		return
	}
	m.batchUnits.WithLabelValues(ResultSuccess).Add(float64(success))
	m.batchUnits.WithLabelValues(ResultFailed).Add(float64(failed))
}

// Handler exposes g in the Prometheus text format.
func Handler(g prometheus.Gatherer) http.Handler {
	return promhttp.HandlerFor(g, promhttp.HandlerOpts{})
}
