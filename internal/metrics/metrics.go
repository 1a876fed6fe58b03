// SPDX-License-Identifier: MIT

// Package metrics records graphsample run statistics in a prometheus
// registry and exports them in text exposition format, suitable for the
// node_exporter textfile collector.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/graphsample/core"
	"github.com/katalvlaran/graphsample/distance"
	"github.com/katalvlaran/graphsample/runner"
)

// Phase labels, one per estimator pass.
const (
	PhaseDistance = "distance"
	PhaseIn       = "in_closeness"
	PhaseOut      = "out_closeness"
)

// Metrics is a private registry with the graphsample collectors.
type Metrics struct {
	reg *prometheus.Registry

	bfsRuns     *prometheus.CounterVec
	bfsDuration *prometheus.HistogramVec
	sampleSize  *prometheus.GaugeVec
	distances   prometheus.Counter
	graphNodes  prometheus.Gauge
	graphEdges  prometheus.Gauge
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		reg: reg,
		bfsRuns: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "graphsample_bfs_runs_total",
				Help: "Completed BFS runs from sampled start nodes",
			},
			[]string{"phase"},
		),
		bfsDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "graphsample_bfs_duration_seconds",
				Help: "Wall time of a single BFS run",
				// From tiny synthetic graphs up to full SNAP crawls.
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1, 5},
			},
			[]string{"phase"},
		),
		sampleSize: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "graphsample_sample_size",
				Help: "Start nodes actually sampled (capped by the eligible set)",
			},
			[]string{"phase"},
		),
		distances: factory.NewCounter(prometheus.CounterOpts{
			Name: "graphsample_distances_observed_total",
			Help: "Finite positive distances observed by the distance pass",
		}),
		graphNodes: factory.NewGauge(prometheus.GaugeOpts{
			Name: "graphsample_graph_nodes",
			Help: "Nodes in the loaded graph",
		}),
		graphEdges: factory.NewGauge(prometheus.GaugeOpts{
			Name: "graphsample_graph_edges",
			Help: "Edges in the loaded graph",
		}),
	}
}

// Registry exposes the underlying registry as a Gatherer.
func (m *Metrics) Registry() prometheus.Gatherer { return m.reg }

// ObserveGraph records the graph's order and size.
func (m *Metrics) ObserveGraph(g *core.Graph) {
	m.graphNodes.Set(float64(g.Order()))
	m.graphEdges.Set(float64(g.Size()))
}

// ObserveReport records the sample size and observation count of a
// distance pass.
func (m *Metrics) ObserveReport(r distance.Report) {
	m.sampleSize.WithLabelValues(PhaseDistance).Set(float64(len(r.Samples)))
	m.distances.Add(float64(r.Count))
}

// ObserveSamples records the sample size of a closeness pass.
func (m *Metrics) ObserveSamples(phase string, n int) {
	m.sampleSize.WithLabelValues(phase).Set(float64(n))
}

// Phase returns a runner.Observer that attributes runs to phase.
func (m *Metrics) Phase(phase string) runner.Observer {
	return phaseObserver{
		runs:     m.bfsRuns.WithLabelValues(phase),
		duration: m.bfsDuration.WithLabelValues(phase),
	}
}

// WriteFile writes every metric to path in text exposition format. The file
// is replaced atomically.
func (m *Metrics) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, m.reg)
}

type phaseObserver struct {
	runs     prometheus.Counter
	duration prometheus.Observer
}

func (p phaseObserver) ObserveRun(_ int, elapsed time.Duration) {
	p.runs.Inc()
	p.duration.Observe(elapsed.Seconds())
}
