// Package metrics defines the Prometheus collectors for sweep dispatch and the
// plan API, registered on a dedicated registry.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus collectors for the sweep tooling.
type Metrics struct {
	Registry *prometheus.Registry

	ExperimentsTotal    *prometheus.CounterVec
	ExperimentDuration  *prometheus.HistogramVec
	ExperimentsInFlight prometheus.Gauge
	PlanSize            prometheus.Gauge
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them, together with the Go runtime
// and process collectors, on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		Registry: reg,
		ExperimentsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "sweep_experiments_total",
				Help: "Experiments dispatched by model and outcome (ok, error, canceled).",
			},
			[]string{"model", "outcome"},
		),
		ExperimentDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "sweep_experiment_duration_seconds",
				Help:    "Time spent handling one experiment.",
				Buckets: []float64{0.01, 0.1, 0.5, 1, 5, 15, 60, 300, 900},
			},
			[]string{"model"},
		),
		ExperimentsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "sweep_experiments_in_flight",
				Help: "Experiments currently being handled.",
			},
		),
		PlanSize: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "sweep_plan_experiments",
				Help: "Number of experiments in the loaded plan.",
			},
		),
		HTTPRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests by method, path, and status.",
			},
			[]string{"method", "path", "status"},
		),
		HTTPRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "http_request_duration_seconds",
				Help:    "HTTP request latency in seconds.",
				Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1},
			},
			[]string{"method", "path"},
		),
	}

	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ExperimentsTotal,
		m.ExperimentDuration,
		m.ExperimentsInFlight,
		m.PlanSize,
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
	)

	return m
}

// Handler returns the scrape handler for m's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{})
}
