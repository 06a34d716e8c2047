package graph

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics is a Prometheus collector for graph execution.
//
// Metrics exposed (namespaced with "blogagent_"):
//
//  1. runs_total (counter): completed runs by outcome.
//     Labels: status (success, error, cancelled).
//
//  2. node_latency_ms (histogram): node execution duration in
//     milliseconds, from dispatch to merge.
//     Labels: node_id, status (success, error).
//     Buckets span 1ms to 60s; LLM-backed nodes routinely take seconds.
//
//  3. node_skips_total (counter): nodes that declined to run because
//     their precondition did not hold.
//     Labels: node_id.
//
// A nil *Metrics is valid and records nothing, so callers can disable
// collection by passing nil to NewBuilder.
//
// Expose via HTTP for scraping:
//
//	registry := prometheus.NewRegistry()
//	metrics := graph.NewMetrics(registry)
//	http.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
type Metrics struct {
	runs        *prometheus.CounterVec
	nodeLatency *prometheus.HistogramVec
	nodeSkips   *prometheus.CounterVec
}

// NewMetrics creates and registers the graph execution metrics with the
// provided registry. Pass prometheus.DefaultRegisterer for the global
// registry, or a fresh prometheus.NewRegistry for isolation.
func NewMetrics(registry prometheus.Registerer) *Metrics {
	if registry == nil {
		registry = prometheus.DefaultRegisterer
	}

	factory := promauto.With(registry)

	return &Metrics{
		runs: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blogagent",
			Name:      "runs_total",
			Help:      "Completed workflow runs by outcome",
		}, []string{"status"}),
		nodeLatency: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "blogagent",
			Name:      "node_latency_ms",
			Help:      "Node execution duration in milliseconds",
			Buckets:   []float64{1, 5, 10, 50, 100, 500, 1000, 5000, 10000, 30000, 60000},
		}, []string{"node_id", "status"}),
		nodeSkips: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "blogagent",
			Name:      "node_skips_total",
			Help:      "Node executions skipped because the precondition did not hold",
		}, []string{"node_id"}),
	}
}

// RecordNodeLatency records the execution duration of one node.
// status is "success" or "error".
func (m *Metrics) RecordNodeLatency(nodeID string, latency time.Duration, status string) {
	if m == nil {
		return
	}
	m.nodeLatency.WithLabelValues(nodeID, status).Observe(float64(latency.Milliseconds()))
}

// IncRuns increments the run counter for the given outcome.
func (m *Metrics) IncRuns(status string) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(status).Inc()
}

// IncSkips increments the skip counter for the given node.
func (m *Metrics) IncSkips(nodeID string) {
	if m == nil {
		return
	}
	m.nodeSkips.WithLabelValues(nodeID).Inc()
}
