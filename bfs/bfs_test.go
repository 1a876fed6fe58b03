// SPDX-License-Identifier: MIT
package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/graphsample/bfs"
	"github.com/katalvlaran/graphsample/builder"
	"github.com/katalvlaran/graphsample/core"
)

const u = bfs.Unreachable

// mustGraph builds a core.Graph from a literal adjacency list.
func mustGraph(t testing.TB, adj [][]int) *core.Graph {
	t.Helper()
	g, err := core.New(adj)
	require.NoError(t, err)
	return g
}

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := mustGraph(t, [][]int{{1}, {}})
	_, err = bfs.BFS(g, 2)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfRange)
	_, err = bfs.BFS(g, -1)
	assert.ErrorIs(t, err, bfs.ErrStartOutOfRange)

	_, err = bfs.BFS(g, 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Diamond(t *testing.T) {
	g := mustGraph(t, [][]int{{1, 2}, {2}, {3}, {}})

	d, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, bfs.Distances{0, 1, 1, 2}, d)

	d, err = bfs.BFS(g, 2)
	require.NoError(t, err)
	assert.Equal(t, bfs.Distances{u, u, 0, 1}, d)
}

// TestBFS_FollowsDirection ensures edges are only walked From→To.
func TestBFS_FollowsDirection(t *testing.T) {
	g := mustGraph(t, [][]int{{1}, {2}, {3}, {}})

	d, err := bfs.BFS(g, 3)
	require.NoError(t, err)
	assert.Equal(t, bfs.Distances{u, u, u, 0}, d)

	// inbound distances come from the reverse graph
	in, err := bfs.BFS(g.Reverse(), 3)
	require.NoError(t, err)
	assert.Equal(t, bfs.Distances{3, 2, 1, 0}, in)
}

// TestBFS_SelfLoopAndParallel ensures loops and parallel edges do not enqueue twice.
func TestBFS_SelfLoopAndParallel(t *testing.T) {
	g := mustGraph(t, [][]int{{0, 1, 1}, {}})

	var visits []int
	d, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(node, _ int) error {
		visits = append(visits, node)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, bfs.Distances{0, 1}, d)
	assert.Equal(t, []int{0, 1}, visits)
}

func TestBFS_IsolatedStart(t *testing.T) {
	g := mustGraph(t, [][]int{{}, {0}})
	d, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, bfs.Distances{0, u}, d)

	count, sum := d.Summary()
	assert.Zero(t, count)
	assert.Zero(t, sum)
	assert.Zero(t, d.Eccentricity())
}

// TestBFS_MaxDepth verifies WithMaxDepth for positive, zero (no limit), and large depths.
func TestBFS_MaxDepth(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(4))

	d, err := bfs.BFS(g, 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, bfs.Distances{0, 1, u, u}, d)

	d, err = bfs.BFS(g, 0, bfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, bfs.Distances{0, 1, 2, 3}, d)

	d, err = bfs.BFS(g, 0, bfs.WithMaxDepth(10))
	require.NoError(t, err)
	assert.Equal(t, bfs.Distances{0, 1, 2, 3}, d)
}

// TestBFS_OnVisitOrder asserts level order and that hook errors abort.
func TestBFS_OnVisitOrder(t *testing.T) {
	g := builder.MustBuild(nil, builder.Star(4), builder.Path(2))

	var depths []int
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(_, depth int) error {
		depths = append(depths, depth)
		return nil
	}))
	require.NoError(t, err)
	assert.IsNonDecreasing(t, depths)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, 0, bfs.WithOnVisit(func(node, _ int) error {
		if node == 2 {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := builder.MustBuild(nil, builder.Path(100))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}

// TestBFS_Properties checks the distance-vector invariants on random graphs:
// d[start] == 0, every d[v] = k > 0 has an in-neighbor at k-1, no edge
// shortcuts a level, and repeated runs are identical.
func TestBFS_Properties(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(seed), builder.WithLoops()},
			builder.RandomSparse(60, 0.04))
		rev := g.Reverse()

		for start := 0; start < g.Order(); start++ {
			d, err := bfs.BFS(g, start)
			require.NoError(t, err)
			require.Len(t, d, g.Order())
			assert.Equal(t, 0, d[start])

			for v, dv := range d {
				if dv <= 0 {
					continue
				}
				found := false
				for _, p := range rev.Neighbors(v) {
					if d[p] == dv-1 {
						found = true
						break
					}
				}
				assert.True(t, found, "seed %d start %d: node %d at %d has no predecessor", seed, start, v, dv)
			}
			// no edge u→v with finite d[u] may leave v farther than d[u]+1
			for x := 0; x < g.Order(); x++ {
				if d[x] == u {
					continue
				}
				for _, y := range g.Neighbors(x) {
					require.NotEqual(t, u, d[y])
					assert.LessOrEqual(t, d[y], d[x]+1)
				}
			}

			again, err := bfs.BFS(g, start)
			require.NoError(t, err)
			assert.Equal(t, d, again)
		}
	}
}

func TestDistances_Helpers(t *testing.T) {
	d := bfs.Distances{2, 0, u, 1, 3}

	assert.True(t, d.Reachable(0))
	assert.False(t, d.Reachable(2))
	assert.False(t, d.Reachable(9))

	count, sum := d.Summary()
	assert.Equal(t, 3, count)
	assert.Equal(t, 6, sum)
	assert.Equal(t, 3, d.Eccentricity())

	var seen []int
	d.Each(func(node, _ int) { seen = append(seen, node) })
	assert.Equal(t, []int{0, 3, 4}, seen)
}

// TestBFS_ConcurrentSafety ensures concurrent runs on the same graph agree.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := builder.MustBuild([]builder.BuilderOption{builder.WithSeed(3)}, builder.RandomSparse(200, 0.02))
	want, err := bfs.BFS(g, 0)
	require.NoError(t, err)

	results := make(chan bfs.Distances, 4)
	for i := 0; i < 4; i++ {
		go func() {
			d, _ := bfs.BFS(g, 0)
			results <- d
		}()
	}
	for i := 0; i < 4; i++ {
		assert.Equal(t, want, <-results)
	}
}
