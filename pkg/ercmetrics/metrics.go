// Package ercmetrics instruments ERC runs with Prometheus metrics the way
// platform-lib's pkg/metrics instruments HTTP/DB calls. Only the CLI and
// HTTP gateway use this; the pure erc package has no metrics concern.
package ercmetrics

import (
	"time"

	"github.com/athena/erc-engine/pkg/erc"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for ERC runs.
type Metrics struct {
	registry        *prometheus.Registry
	runsTotal       *prometheus.CounterVec
	runDuration     prometheus.Histogram
	violationsTotal *prometheus.CounterVec
}

// New creates and registers the ERC metric collectors.
func New() *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.runsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "erc_runs_total",
		Help: "Total number of ERC runs, labeled by pass/fail outcome.",
	}, []string{"outcome"})

	m.runDuration = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "erc_run_duration_seconds",
		Help:    "Duration of a single ERC run.",
		Buckets: prometheus.DefBuckets,
	})

	m.violationsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "erc_violations_total",
		Help: "Total ERC violations emitted, labeled by severity and rule code.",
	}, []string{"severity", "rule_code"})

	m.registry.MustRegister(m.runsTotal, m.runDuration, m.violationsTotal)
	return m
}

// Registry exposes the underlying Prometheus registry for a /metrics handler.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// Observe records one completed ERC run and its report.
func (m *Metrics) Observe(report *erc.Report, duration time.Duration) {
	outcome := "fail"
	if report.Passed {
		outcome = "pass"
	}
	m.runsTotal.WithLabelValues(outcome).Inc()
	m.runDuration.Observe(duration.Seconds())

	for _, v := range report.Violations {
		m.violationsTotal.WithLabelValues(string(v.Severity), v.Code).Inc()
	}
}
