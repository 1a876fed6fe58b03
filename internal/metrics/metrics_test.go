// SPDX-License-Identifier: MIT
package metrics_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsample/core"
	"github.com/katalvlaran/graphsample/distance"
	"github.com/katalvlaran/graphsample/internal/metrics"
	"github.com/katalvlaran/graphsample/runner"
	"github.com/katalvlaran/graphsample/sample"
)

// value returns the first sample of family name whose labels contain label
// (or any sample when label is empty).
func value(t *testing.T, m *metrics.Metrics, name, label string) float64 {
	t.Helper()
	families, err := m.Registry().Gather()
	require.NoError(t, err)
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, metric := range mf.GetMetric() {
			if label != "" {
				found := false
				for _, lp := range metric.GetLabel() {
					if lp.GetValue() == label {
						found = true
					}
				}
				if !found {
					continue
				}
			}
			switch {
			case metric.GetCounter() != nil:
				return metric.GetCounter().GetValue()
			case metric.GetGauge() != nil:
				return metric.GetGauge().GetValue()
			case metric.GetHistogram() != nil:
				return float64(metric.GetHistogram().GetSampleCount())
			}
		}
	}
	t.Fatalf("metric %s{%s} not found", name, label)
	return 0
}

func TestObserversThroughCollect(t *testing.T) {
	g, err := core.New([][]int{{1, 2}, {2}, {3}, {}})
	require.NoError(t, err)

	m := metrics.New()
	m.ObserveGraph(g)

	rep, err := distance.Collect(context.Background(), g, 3, sample.NewRand(1),
		runner.WithObserver(m.Phase(metrics.PhaseDistance)))
	require.NoError(t, err)
	m.ObserveReport(rep)
	m.ObserveSamples(metrics.PhaseOut, 2)

	assert.Equal(t, 4.0, value(t, m, "graphsample_graph_nodes", ""))
	assert.Equal(t, 4.0, value(t, m, "graphsample_graph_edges", ""))
	assert.Equal(t, 3.0, value(t, m, "graphsample_bfs_runs_total", metrics.PhaseDistance))
	assert.Equal(t, 3.0, value(t, m, "graphsample_bfs_duration_seconds", metrics.PhaseDistance))
	assert.Equal(t, 3.0, value(t, m, "graphsample_sample_size", metrics.PhaseDistance))
	assert.Equal(t, 2.0, value(t, m, "graphsample_sample_size", metrics.PhaseOut))
	assert.Equal(t, 6.0, value(t, m, "graphsample_distances_observed_total", ""))
}

func TestWriteFile(t *testing.T) {
	m := metrics.New()
	m.Phase(metrics.PhaseIn).ObserveRun(0, 0)

	path := filepath.Join(t.TempDir(), "graphsample.prom")
	require.NoError(t, m.WriteFile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `graphsample_bfs_runs_total{phase="in_closeness"} 1`)
}
