// SPDX-License-Identifier: MIT
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsample/builder"
)

func TestTopologies(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor
		opts []builder.BuilderOption
		want [][]int
	}{
		{"path", builder.Path(4), nil, [][]int{{1}, {2}, {3}, {}}},
		{"cycle", builder.Cycle(3), nil, [][]int{{1}, {2}, {0}}},
		{"star", builder.Star(4), nil, [][]int{{1, 2, 3}, {}, {}, {}}},
		{"complete", builder.Complete(3), nil, [][]int{{1, 2}, {0, 2}, {0, 1}}},
		{"isolated", builder.Isolated(2), nil, [][]int{{}, {}}},
		{"bidirectional path", builder.Path(3), []builder.BuilderOption{builder.WithBidirectional()},
			[][]int{{1}, {0, 2}, {1}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.cons)
			require.NoError(t, err)
			assert.Equal(t, tc.want, g.AdjacencyList())
		})
	}
}

func TestComposeOverlaysNodes(t *testing.T) {
	// Path(3) on nodes 0..2 plus isolated nodes up to 4.
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Isolated(5))
	require.NoError(t, err)
	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 2, g.Size())
}

func TestValidation(t *testing.T) {
	_, err := builder.BuildGraph(nil, builder.Path(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, builder.Cycle(1))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(5, 1.5))
	assert.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, builder.RandomSparse(5, 0.5))
	assert.ErrorIs(t, err, builder.ErrNeedRandSource)

	_, err = builder.BuildGraph(nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestRandomSparse_Extremes(t *testing.T) {
	// p=0 and p=1 need no RNG.
	empty, err := builder.BuildGraph(nil, builder.RandomSparse(4, 0))
	require.NoError(t, err)
	assert.Equal(t, 4, empty.Order())
	assert.Equal(t, 0, empty.Size())

	full, err := builder.BuildGraph(nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 12, full.Size()) // n(n-1), no loops

	looped, err := builder.BuildGraph([]builder.BuilderOption{builder.WithLoops()}, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	assert.Equal(t, 16, looped.Size())
}

func TestRandomSparse_SeedDeterminism(t *testing.T) {
	opts := []builder.BuilderOption{builder.WithSeed(7)}
	a, err := builder.BuildGraph(opts, builder.RandomSparse(50, 0.1))
	require.NoError(t, err)
	b, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(7)}, builder.RandomSparse(50, 0.1))
	require.NoError(t, err)
	assert.Equal(t, a.AdjacencyList(), b.AdjacencyList())
	assert.Positive(t, a.Size())
}

func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.MustBuild(nil, builder.Path(-1)) })
}
