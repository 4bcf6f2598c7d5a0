// Package metrics defines the Prometheus collectors for the full-text engine
// and exposes an HTTP handler for scraping.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Search result types recorded on SearchQueriesTotal.
const (
	ResultHit        = "hit"
	ResultZeroResult = "zero_result"
	ResultError      = "error"
)

// Metrics holds the engine's Prometheus collectors. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	DocsIndexedTotal   prometheus.Counter
	DocsDeletedTotal   prometheus.Counter
	IndexClearsTotal   prometheus.Counter
	SearchQueriesTotal *prometheus.CounterVec
	SearchLatency      prometheus.Histogram
	SearchResultsCount prometheus.Histogram
	Documents          prometheus.Gauge
	Terms              prometheus.Gauge

	gatherer prometheus.Gatherer
}

// New creates the collectors and registers them with reg. A nil reg
// registers against a fresh private registry.
func New(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		DocsIndexedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ft_docs_indexed_total",
				Help: "Total documents indexed, including re-indexed documents.",
			},
		),
		DocsDeletedTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ft_docs_deleted_total",
				Help: "Total documents removed from the index.",
			},
		),
		IndexClearsTotal: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "ft_index_clears_total",
				Help: "Total number of index resets.",
			},
		),
		SearchQueriesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "ft_search_queries_total",
				Help: "Total search queries by result type (hit, zero_result, error).",
			},
			[]string{"result_type"},
		),
		SearchLatency: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ft_search_latency_seconds",
				Help:    "Search query latency in seconds.",
				Buckets: []float64{0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
			},
		),
		SearchResultsCount: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "ft_search_results_count",
				Help:    "Number of results returned per search query.",
				Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 1000},
			},
		),
		Documents: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ft_documents",
				Help: "Number of documents currently stored.",
			},
		),
		Terms: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "ft_terms",
				Help: "Number of distinct words with a non-empty posting list.",
			},
		),
		gatherer: reg,
	}

	reg.MustRegister(
		m.DocsIndexedTotal,
		m.DocsDeletedTotal,
		m.IndexClearsTotal,
		m.SearchQueriesTotal,
		m.SearchLatency,
		m.SearchResultsCount,
		m.Documents,
		m.Terms,
	)

	return m
}

func (m *Metrics) ObserveIndex(docs, terms int) {
	if m == nil {
		return
	}
	m.DocsIndexedTotal.Inc()
	m.setSize(docs, terms)
}

func (m *Metrics) ObserveDelete(docs, terms int) {
	if m == nil {
		return
	}
	m.DocsDeletedTotal.Inc()
	m.setSize(docs, terms)
}

func (m *Metrics) ObserveClear() {
	if m == nil {
		return
	}
	m.IndexClearsTotal.Inc()
	m.setSize(0, 0)
}

// ObserveSearch records one query. A non-nil err counts as an error result.
func (m *Metrics) ObserveSearch(elapsed time.Duration, results int, err error) {
	if m == nil {
		return
	}
	resultType := ResultHit
	switch {
	case err != nil:
		resultType = ResultError
	case results == 0:
		resultType = ResultZeroResult
	}
	m.SearchQueriesTotal.WithLabelValues(resultType).Inc()
	m.SearchLatency.Observe(elapsed.Seconds())
	if err == nil {
		m.SearchResultsCount.Observe(float64(results))
	}
}

func (m *Metrics) setSize(docs, terms int) {
	m.Documents.Set(float64(docs))
	m.Terms.Set(float64(terms))
}

// Handler returns the Prometheus scrape HTTP handler for the registry the
// collectors were registered with.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}
