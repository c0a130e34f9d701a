// SPDX-License-Identifier: MIT
// Package: lvtopo/metrics
//
// metrics.go - Prometheus instruments for topology generation and verification.
//
// Contract:
//   • Each Registry owns a private prometheus.Registry; nothing is registered
//     on the global default registerer.
//   • status labels are "ok" or "error".
//   • WriteTextfile emits the text exposition format for node_exporter's
//     textfile collector.

package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Status label values.
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// sizeBuckets spans the node and edge counts of typical fixtures.
var sizeBuckets = []float64{1, 10, 100, 1000, 10000, 100000, 1000000}

// Registry holds the lvtopo instruments.
type Registry struct {
	GenerationsTotal   *prometheus.CounterVec
	GenerationDuration *prometheus.HistogramVec
	GeneratedNodes     *prometheus.HistogramVec
	GeneratedEdges     *prometheus.HistogramVec
	VerificationsTotal *prometheus.CounterVec
	FixturesWritten    prometheus.Counter

	registry *prometheus.Registry
}

// NewRegistry creates a Registry with every instrument registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	factory := promauto.With(r.registry)

	r.GenerationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvtopo_generations_total",
			Help: "Total number of topology generation attempts",
		},
		[]string{"kind", "status"},
	)
	r.GenerationDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lvtopo_generation_duration_seconds",
			Help:    "Topology generation duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"kind"},
	)
	r.GeneratedNodes = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lvtopo_generated_nodes",
			Help:    "Number of nodes per generated topology",
			Buckets: sizeBuckets,
		},
		[]string{"kind"},
	)
	r.GeneratedEdges = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "lvtopo_generated_edges",
			Help:    "Number of edges per generated topology",
			Buckets: sizeBuckets,
		},
		[]string{"kind"},
	)
	r.VerificationsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lvtopo_verifications_total",
			Help: "Total number of structural verifications",
		},
		[]string{"kind", "status"},
	)
	r.FixturesWritten = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "lvtopo_fixtures_written_total",
			Help: "Total number of fixture documents written",
		},
	)

	return r
}

// RecordGeneration records one generator call. nodes and edges are observed
// only on success.
func (r *Registry) RecordGeneration(kind string, err error, duration time.Duration, nodes, edges int) {
	status := statusOf(err)
	r.GenerationsTotal.WithLabelValues(kind, status).Inc()
	r.GenerationDuration.WithLabelValues(kind).Observe(duration.Seconds())
	if err != nil {
		return
	}
	r.GeneratedNodes.WithLabelValues(kind).Observe(float64(nodes))
	r.GeneratedEdges.WithLabelValues(kind).Observe(float64(edges))
}

// RecordVerification records one check.Verify outcome.
func (r *Registry) RecordVerification(kind string, err error) {
	r.VerificationsTotal.WithLabelValues(kind, statusOf(err)).Inc()
}

// RecordWrite counts a fixture document written to disk or stdout.
func (r *Registry) RecordWrite() {
	r.FixturesWritten.Inc()
}

// Gatherer exposes the underlying registry, e.g. for promhttp or testutil.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile atomically writes all metrics to path in text format.
func (r *Registry) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

func statusOf(err error) string {
	if err != nil {
		return StatusError
	}

	return StatusOK
}
