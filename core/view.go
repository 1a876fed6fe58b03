// SPDX-License-Identifier: MIT
//
// File: view.go
// Role: Non-mutating derived graphs.
// Determinism:
//   - Reverse visits sources in ascending order, so rev[v] lists the
//     in-neighbors of v in ascending source order (repeated per parallel edge).
// Concurrency:
//   - Reads the receiver only; the result is a fresh Graph.

package core

// Reverse returns the transpose of g: every edge u→v appearing k times in g
// appears as v→u exactly k times in the result. The receiver is not touched.
//
// A nil receiver yields the empty graph.
//
// Example: [[1],[2],[3],[]] (0→1→2→3) reverses to [[],[0],[1],[2]].
//
// Complexity: O(V + E) time and space.
func (g *Graph) Reverse() *Graph {
	if g == nil {
		return &Graph{}
	}
	n := len(g.adj)

	// Size each reversed list by in-degree to avoid regrowth on large graphs.
	indeg := make([]int, n)
	for _, nbrs := range g.adj {
		for _, v := range nbrs {
			indeg[v]++
		}
	}
	rev := make([][]int, n)
	for v, d := range indeg {
		if d > 0 {
			rev[v] = make([]int, 0, d)
		}
	}
	for u, nbrs := range g.adj {
		for _, v := range nbrs {
			rev[v] = append(rev[v], u)
		}
	}

	return &Graph{adj: rev, size: g.size}
}
