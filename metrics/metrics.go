// Package metrics exposes prometheus counters for spanning tree runs.
//
// A Metrics value owns its own registry so that several runs, or tests, do
// not collide on the global default registerer. Selector hooks returned by
// Options feed the counters; Observe records a finished run.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/kruskal"
)

const namespace = "spantree"

// Metrics groups the collectors of one process.
type Metrics struct {
	registry *prometheus.Registry

	EdgesAccepted  *prometheus.CounterVec
	EdgesRejected  *prometheus.CounterVec
	EdgesSkipped   *prometheus.CounterVec
	EdgesDuplicate *prometheus.CounterVec
	RunsCompleted  *prometheus.CounterVec
	LastTreeCost   *prometheus.GaugeVec
	RunDuration    *prometheus.HistogramVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		EdgesAccepted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "selector",
			Name:      "edges_accepted_total",
			Help:      "Edges accepted into the spanning tree, per tracker method",
		}, []string{"method"}),
		EdgesRejected: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "selector",
			Name:      "edges_rejected_total",
			Help:      "Edges discarded because they would close a cycle, per tracker method",
		}, []string{"method"}),
		EdgesSkipped: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "selector",
			Name:      "edges_skipped_total",
			Help:      "Weight index entries skipped because their pair was already known",
		}, []string{"method"}),
		EdgesDuplicate: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "selector",
			Name:      "edges_duplicate_total",
			Help:      "Edges refused at insertion because their reverse already existed",
		}, []string{"method"}),
		RunsCompleted: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "completed_total",
			Help:      "Runs that reached completion, labelled by whether the result spans",
		}, []string{"method", "spanning"}),
		LastTreeCost: factory.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "last_tree_cost",
			Help:      "Total cost of the most recent tree, per tracker method",
		}, []string{"method"}),
		RunDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "run",
			Name:      "duration_seconds",
			Help:      "Wall time from first insertion to completion",
			Buckets:   []float64{0.0001, 0.001, 0.01, 0.1, 0.5, 1, 5, 30},
		}, []string{"method"}),
	}
}

// Registry returns the gatherer holding all collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// Options returns selector hooks that count decisions under the method label.
func (m *Metrics) Options(method string) []kruskal.Option {
	accepted := m.EdgesAccepted.WithLabelValues(method)
	rejected := m.EdgesRejected.WithLabelValues(method)
	skipped := m.EdgesSkipped.WithLabelValues(method)
	duplicate := m.EdgesDuplicate.WithLabelValues(method)

	return []kruskal.Option{
		kruskal.WithOnAccept(func(core.Edge) { accepted.Inc() }),
		kruskal.WithOnReject(func(core.Edge) { rejected.Inc() }),
		kruskal.WithOnSkip(func(core.Edge) { skipped.Inc() }),
		kruskal.WithOnDuplicate(func(core.Edge) { duplicate.Inc() }),
	}
}

// Observe records a finished run.
func (m *Metrics) Observe(method string, cost int64, spanning bool, elapsed time.Duration) {
	m.RunsCompleted.WithLabelValues(method, fmt.Sprint(spanning)).Inc()
	m.LastTreeCost.WithLabelValues(method).Set(float64(cost))
	m.RunDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// WriteFile dumps the registry in the text exposition format, atomically.
func (m *Metrics) WriteFile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("metrics: write %s: %w", path, err)
	}

	return nil
}
