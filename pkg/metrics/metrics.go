// Package metrics exposes Prometheus metrics for watch mode.
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/depscope/depscope/pkg/compliance"
)

// Collector registers and updates the depscope metrics.
type Collector struct {
	registry *prometheus.Registry

	licenses *prometheus.GaugeVec
	state    *prometheus.GaugeVec

	issues          prometheus.Gauge
	vulnerabilities prometheus.Gauge

	reloads         *prometheus.CounterVec
	analyzerRuns    *prometheus.CounterVec
	analyzeDuration prometheus.Histogram
}

// NewCollector creates a collector with a fresh registry including the
// standard Go process collectors.
func NewCollector() *Collector {
	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	c := &Collector{
		registry: registry,
		licenses: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "depscope_licenses",
			Help: "Number of projects and packages per license risk category",
		}, []string{"risk"}),
		state: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "depscope_compliance_state",
			Help: "Current compliance state (1 for the active state, 0 otherwise)",
		}, []string{"state"}),
		issues: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "depscope_analyzer_issues",
			Help: "Number of analyzer issues in the current result",
		}),
		vulnerabilities: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "depscope_vulnerabilities",
			Help: "Number of advisor vulnerabilities in the current result",
		}),
		reloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "depscope_result_reloads_total",
			Help: "Total result file reloads",
		}, []string{"status"}),
		analyzerRuns: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "depscope_analyzer_runs_total",
			Help: "Total ort analyzer invocations",
		}, []string{"status"}),
		analyzeDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "depscope_analyzer_run_duration_seconds",
			Help:    "Duration of ort analyzer invocations in seconds",
			Buckets: []float64{1, 5, 10, 30, 60, 120, 300, 600, 1800},
		}),
	}

	registry.MustRegister(c.licenses, c.state, c.issues, c.vulnerabilities,
		c.reloads, c.analyzerRuns, c.analyzeDuration)
	return c
}

// Handler returns the /metrics HTTP handler.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}

// ObserveStatus publishes the stats and state of one compliance evaluation.
func (c *Collector) ObserveStatus(status compliance.Status) {
	c.licenses.WithLabelValues("permissive").Set(float64(status.Stats.Permissive))
	c.licenses.WithLabelValues("weak-copyleft").Set(float64(status.Stats.WeakCopyleft))
	c.licenses.WithLabelValues("strong-copyleft").Set(float64(status.Stats.StrongCopyleft))
	c.licenses.WithLabelValues("unknown").Set(float64(status.Stats.Unknown))

	for _, state := range []compliance.State{
		compliance.StateCompliant, compliance.StateIssues,
		compliance.StateCritical, compliance.StateUnknown,
	} {
		value := 0.0
		if state == status.State {
			value = 1.0
		}
		c.state.WithLabelValues(string(state)).Set(value)
	}

	c.issues.Set(float64(status.IssueCount))
	c.vulnerabilities.Set(float64(status.VulnerabilityCount))
}

// ObserveReload counts one result file reload.
func (c *Collector) ObserveReload(ok bool) {
	c.reloads.WithLabelValues(statusLabel(ok)).Inc()
}

// ObserveAnalyzerRun counts one ort invocation and its duration.
func (c *Collector) ObserveAnalyzerRun(d time.Duration, ok bool) {
	c.analyzerRuns.WithLabelValues(statusLabel(ok)).Inc()
	c.analyzeDuration.Observe(d.Seconds())
}

func statusLabel(ok bool) string {
	if ok {
		return "success"
	}
	return "error"
}
