package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/SscSPs/fixed_assets_app/internal/core/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "fixed_assets"

// Metrics holds the application's prometheus collectors on a private registry.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	registry *prometheus.Registry

	runs               *prometheus.CounterVec
	assetOutcomes      *prometheus.CounterVec
	depreciationBooked prometheus.Counter
	runDuration        prometheus.Histogram
	httpRequests       *prometheus.CounterVec
	httpDuration       *prometheus.HistogramVec
}

// New creates the collectors and registers them together with the Go runtime
// and process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "depreciation_runs_total",
			Help:      "Completed depreciation batch runs, by whether any asset failed.",
		}, []string{"result"}),
		assetOutcomes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "depreciation_asset_outcomes_total",
			Help:      "Per-asset outcomes of depreciation batch runs.",
		}, []string{"outcome"}),
		depreciationBooked: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "depreciation_booked_amount_total",
			Help:      "Sum of depreciation amounts booked by batch runs.",
		}),
		runDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "depreciation_run_duration_seconds",
			Help:      "Wall time of depreciation batch runs.",
			Buckets:   prometheus.DefBuckets,
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route and status code.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency by method and route.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"method", "route"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.runs,
		m.assetOutcomes,
		m.depreciationBooked,
		m.runDuration,
		m.httpRequests,
		m.httpDuration,
	)
	return m
}

// Registry exposes the underlying registry, mainly for tests.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRun records one finished batch run.
func (m *Metrics) ObserveRun(run *domain.DepreciationRun, elapsed time.Duration) {
	if m == nil || run == nil {
		return
	}
	result := "ok"
	if run.AssetsFailed > 0 {
		result = "partial_failure"
	}
	m.runs.WithLabelValues(result).Inc()
	m.runDuration.Observe(elapsed.Seconds())
	for _, r := range run.Results {
		m.assetOutcomes.WithLabelValues(string(r.Outcome)).Inc()
	}
	m.depreciationBooked.Add(run.TotalDepreciation.InexactFloat64())
}

// ObserveHTTP records one served request. route is the matched route pattern.
func (m *Metrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	if m == nil {
		return
	}
	if route == "" {
		route = "unmatched"
	}
	m.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(method, route).Observe(elapsed.Seconds())
}
