package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus collectors exposed on /metrics.
type Metrics struct {
	registry         *prometheus.Registry
	httpRequests     *prometheus.CounterVec
	httpDuration     *prometheus.HistogramVec
	analyses         *prometheus.CounterVec
	analysisDuration prometheus.Histogram
	qualityScores    prometheus.Histogram
	persistFailures  prometheus.Counter
}

// NewMetrics registers the server collectors on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	m := &Metrics{
		registry: reg,
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resumesense",
			Name:      "http_requests_total",
			Help:      "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "resumesense",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"route"}),
		analyses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "resumesense",
			Name:      "analyses_total",
			Help:      "Completed analyses by scoring model and JD presence.",
		}, []string{"model_used", "with_jd"}),
		analysisDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "resumesense",
			Name:      "analysis_duration_seconds",
			Help:      "Engine time per analysis.",
			Buckets:   []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}),
		qualityScores: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "resumesense",
			Name:      "quality_score",
			Help:      "Distribution of quality scores.",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		persistFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "resumesense",
			Name:      "persist_failures_total",
			Help:      "Analyses that could not be stored.",
		}),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpDuration,
		m.analyses,
		m.analysisDuration,
		m.qualityScores,
		m.persistFailures,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(route, method string, status int, elapsed time.Duration) {
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(route).Observe(elapsed.Seconds())
}

// ObserveAnalysis records one completed engine run.
func (m *Metrics) ObserveAnalysis(modelUsed string, withJD bool, qualityScore float64, elapsed time.Duration) {
	m.analyses.WithLabelValues(modelUsed, strconv.FormatBool(withJD)).Inc()
	m.analysisDuration.Observe(elapsed.Seconds())
	m.qualityScores.Observe(qualityScore)
}

// ObservePersistFailure counts an analysis that was returned but not stored.
func (m *Metrics) ObservePersistFailure() {
	m.persistFailures.Inc()
}
