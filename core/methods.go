// SPDX-License-Identifier: MIT
//
// File: methods.go
// Role: Read-only accessors and degree statistics.
// Policy:
//   - No method mutates the receiver.
//   - Out-of-range indices are answered (empty / false / 0), never panic.

package core

// Order returns N, the number of node slots (0..N-1).
// Complexity: O(1).
func (g *Graph) Order() int {
	if g == nil {
		return 0
	}
	return len(g.adj)
}

// Size returns the number of edges, counting parallel edges and self-loops.
// Complexity: O(1).
func (g *Graph) Size() int {
	if g == nil {
		return 0
	}
	return g.size
}

// HasNode reports whether u is a valid node index.
func (g *Graph) HasNode(u int) bool {
	return g != nil && u >= 0 && u < len(g.adj)
}

// Neighbors returns the destinations of u's out-edges in insertion order.
// The returned slice aliases internal storage and must not be modified.
// Invalid u yields nil.
// Complexity: O(1).
func (g *Graph) Neighbors(u int) []int {
	if !g.HasNode(u) {
		return nil
	}
	return g.adj[u]
}

// OutDegree returns len(Neighbors(u)).
func (g *Graph) OutDegree(u int) int {
	return len(g.Neighbors(u))
}

// AdjacencyList returns a deep copy of the adjacency lists. Nodes without
// out-edges map to an empty (non-nil) slice so the result compares equal to
// hand-written literals such as [][]int{{1}, {}}.
// Complexity: O(V + E).
func (g *Graph) AdjacencyList() [][]int {
	if g == nil {
		return [][]int{}
	}
	out := make([][]int, len(g.adj))
	for u, nbrs := range g.adj {
		out[u] = append(make([]int, 0, len(nbrs)), nbrs...)
	}

	return out
}

// Stats is a degree summary of a Graph.
type Stats struct {
	Nodes     int // N
	Edges     int // E, parallel edges and self-loops included
	Sinks     int // nodes with out-degree 0 and in-degree > 0
	Sources   int // nodes with in-degree 0 and out-degree > 0
	Isolated  int // nodes with no incident edges at all
	SelfLoops int // edges u→u
	MaxOut    int // largest out-degree
	MaxIn     int // largest in-degree
}

// Stats computes a Stats snapshot in a single pass over the edges.
// Complexity: O(V + E) time, O(V) space.
func (g *Graph) Stats() Stats {
	n := g.Order()
	s := Stats{Nodes: n, Edges: g.Size()}
	if n == 0 {
		return s
	}

	indeg := make([]int, n)
	for u, nbrs := range g.adj {
		s.MaxOut = max(s.MaxOut, len(nbrs))
		for _, v := range nbrs {
			indeg[v]++
			if v == u {
				s.SelfLoops++
			}
		}
	}
	for u := 0; u < n; u++ {
		out, in := len(g.adj[u]), indeg[u]
		s.MaxIn = max(s.MaxIn, in)
		switch {
		case out == 0 && in == 0:
			s.Isolated++
		case out == 0:
			s.Sinks++
		case in == 0:
			s.Sources++
		}
	}

	return s
}
