package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for one
// report build. Each Metrics value owns a private registry: the pipeline is a
// one-shot batch job with nothing to scrape, so metrics are persisted into
// the version directory as a textfile instead (see WriteTextfile).
type Metrics struct {
	registry *prometheus.Registry

	DatasetsFetched prometheus.Counter
	FetchErrors     prometheus.Counter
	ChronCacheReads prometheus.Counter
	FetchDuration   prometheus.Histogram

	RowsJoined    prometheus.Gauge
	SitesReviewed prometheus.Gauge
	SitesMoved    prometheus.Gauge
}

// NewMetrics creates and registers all pipeline metrics on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		DatasetsFetched: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neotoma_lakes",
			Name:      "datasets_fetched_total",
			Help:      "Datasets whose chronology was fetched from the API.",
		}),
		FetchErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neotoma_lakes",
			Name:      "fetch_errors_total",
			Help:      "Per-dataset chronology lookups that degraded to identifiers-only records.",
		}),
		ChronCacheReads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "neotoma_lakes",
			Name:      "chron_cache_reads_total",
			Help:      "Runs that reused the version's chronology cache file instead of fetching.",
		}),
		FetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "neotoma_lakes",
			Name:      "fetch_duration_seconds",
			Help:      "Duration of a full national-scope dataset fetch.",
			Buckets:   []float64{1, 5, 15, 30, 60, 120, 300, 600},
		}),
		RowsJoined: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "neotoma_lakes",
			Name:      "rows_joined",
			Help:      "Overlay rows in the joined table after the longitude filter.",
		}),
		SitesReviewed: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "neotoma_lakes",
			Name:      "sites_reviewed",
			Help:      "Distinct sites that passed manual review.",
		}),
		SitesMoved: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "neotoma_lakes",
			Name:      "sites_moved",
			Help:      "Records with a positive displacement after correction.",
		}),
	}

	m.registry.MustRegister(
		m.DatasetsFetched,
		m.FetchErrors,
		m.ChronCacheReads,
		m.FetchDuration,
		m.RowsJoined,
		m.SitesReviewed,
		m.SitesMoved,
	)
	return m
}

// WriteTextfile persists the current metric values in the Prometheus
// text exposition format, the convention used by the node-exporter textfile
// collector for batch jobs.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}
