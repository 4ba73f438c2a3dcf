// SPDX-License-Identifier: MIT

// Package metrics instruments Bayesian-network queries with Prometheus.
//
// A Registry owns its own prometheus.Registry; there is no process-wide
// default instance. Attach one to a network with network.WithMetrics.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Query kinds used as the "kind" label.
const (
	KindMarginal            = "marginal"
	KindPosterior           = "posterior"
	KindEvidenceProbability = "evidence_probability"
)

// Query statuses used as the "status" label.
const (
	StatusOK         = "ok"
	StatusError      = "error"
	StatusDegenerate = "degenerate"
)

// Registry holds the query metrics of one process or component.
type Registry struct {
	QueriesTotal     *prometheus.CounterVec
	QueryDuration    *prometheus.HistogramVec
	EnumerationCalls *prometheus.HistogramVec
	NetworkMutations *prometheus.CounterVec

	registry *prometheus.Registry
}

// NewRegistry creates a Registry with every metric registered.
func NewRegistry() *Registry {
	r := &Registry{registry: prometheus.NewRegistry()}
	r.initQueryMetrics()
	r.initNetworkMetrics()

	return r
}

func (r *Registry) initQueryMetrics() {
	r.QueriesTotal = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "bayesnet_queries_total",
			Help: "Total number of inference queries",
		},
		[]string{"kind", "status"},
	)

	r.QueryDuration = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bayesnet_query_duration_seconds",
			Help:    "Inference query duration in seconds",
			Buckets: []float64{0.0001, 0.001, 0.01, 0.1, 1.0, 10.0},
		},
		[]string{"kind"},
	)

	r.EnumerationCalls = promauto.With(r.registry).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "bayesnet_enumeration_calls",
			Help:    "Recursive enumeration calls per query",
			Buckets: prometheus.ExponentialBuckets(1, 4, 10),
		},
		[]string{"kind"},
	)
}

func (r *Registry) initNetworkMetrics() {
	r.NetworkMutations = promauto.With(r.registry).NewCounterVec(
		prometheus.CounterOpts{
			Name: "bayesnet_network_mutations_total",
			Help: "Structural network mutations by operation",
		},
		[]string{"op"},
	)
}

// RecordQuery records one finished query.
func (r *Registry) RecordQuery(kind, status string, duration time.Duration, calls int) {
	r.QueriesTotal.WithLabelValues(kind, status).Inc()
	r.QueryDuration.WithLabelValues(kind).Observe(duration.Seconds())
	r.EnumerationCalls.WithLabelValues(kind).Observe(float64(calls))
}

// RecordMutation records one structural mutation (add, delete, rename, reset).
func (r *Registry) RecordMutation(op string) {
	r.NetworkMutations.WithLabelValues(op).Inc()
}

// Gatherer exposes the underlying registry for scraping or dumping.
func (r *Registry) Gatherer() prometheus.Gatherer {
	return r.registry
}
