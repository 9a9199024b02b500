package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for the dashboard.
type Metrics struct {
	DatasetRows     prometheus.Gauge
	DatasetLoads    prometheus.Counter
	DatasetFailures prometheus.Counter
	LoadDuration    prometheus.Histogram

	// Missing-data gauges per column of the cleaned table.
	MissingValues *prometheus.GaugeVec // label: column

	APIRequests *prometheus.CounterVec // labels: endpoint, status
}

// NewMetrics creates and registers all dashboard metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.DatasetRows,
		m.DatasetLoads,
		m.DatasetFailures,
		m.LoadDuration,
		m.MissingValues,
		m.APIRequests,
	)
	return m
}

// NewMetricsForTesting creates Metrics without registry registration to
// avoid "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetRows: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "airq",
			Name:      "dataset_rows",
			Help:      "Rows in the cleaned in-memory table.",
		}),
		DatasetLoads: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "airq",
			Name:      "dataset_loads_total",
			Help:      "Successful dataset load-and-clean runs.",
		}),
		DatasetFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "airq",
			Name:      "dataset_load_failures_total",
			Help:      "Dataset loads that failed before producing a table.",
		}),
		LoadDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "airq",
			Name:      "dataset_load_duration_seconds",
			Help:      "Duration of a complete load-and-clean run.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}),
		MissingValues: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: "airq",
			Name:      "dataset_missing_values",
			Help:      "Absent cells per column after cleaning.",
		}, []string{"column"}),
		APIRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "airq",
			Name:      "api_requests_total",
			Help:      "Dashboard API requests by endpoint and status code.",
		}, []string{"endpoint", "status"}),
	}
}
