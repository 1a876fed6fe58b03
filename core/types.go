// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Graph and Edge types, sentinel errors, and constructors.
// Determinism:
//   - Adjacency order is exactly the order edges were supplied in.
// Concurrency:
//   - A constructed Graph is never mutated; concurrent reads need no locking.

package core

import (
	"errors"
	"fmt"
)

// Sentinel errors for core graph construction.
var (
	// ErrNodeOutOfRange indicates an edge endpoint outside 0..N-1 (or negative).
	ErrNodeOutOfRange = errors.New("core: node index out of range")
)

// Edge is a single directed edge From→To between node indices.
type Edge struct {
	From int
	To   int
}

// Graph is an immutable directed graph over node indices 0..N-1.
//
// adj[u] holds the destinations of u's out-edges in insertion order.
// size caches the total edge count.
type Graph struct {
	adj  [][]int
	size int
}

// New builds a Graph from an adjacency list, deep-copying adj so the caller
// may reuse or mutate it afterwards. N is len(adj); every destination must be
// in 0..N-1, otherwise ErrNodeOutOfRange is returned.
//
// Complexity: O(V + E) time and space.
func New(adj [][]int) (*Graph, error) {
	n := len(adj)
	out := make([][]int, n)
	size := 0
	var u, v int
	for u = 0; u < n; u++ {
		for _, v = range adj[u] {
			if v < 0 || v >= n {
				return nil, fmt.Errorf("%w: edge %d→%d with N=%d", ErrNodeOutOfRange, u, v, n)
			}
		}
		if len(adj[u]) > 0 {
			out[u] = append([]int(nil), adj[u]...)
		}
		size += len(adj[u])
	}

	return &Graph{adj: out, size: size}, nil
}

// FromEdges builds a Graph sized max(From, To)+1 over all edges. Edges are
// appended to their source's list in slice order. An empty slice yields the
// empty graph (N = 0). Negative endpoints return ErrNodeOutOfRange.
//
// Complexity: O(V + E).
func FromEdges(edges []Edge) (*Graph, error) {
	maxNode := -1
	for i, e := range edges {
		if e.From < 0 || e.To < 0 {
			return nil, fmt.Errorf("%w: edge #%d is %d→%d", ErrNodeOutOfRange, i, e.From, e.To)
		}
		maxNode = max(maxNode, e.From, e.To)
	}

	// Count out-degrees first so each list is allocated exactly once.
	n := maxNode + 1
	deg := make([]int, n)
	for _, e := range edges {
		deg[e.From]++
	}
	adj := make([][]int, n)
	for u, d := range deg {
		if d > 0 {
			adj[u] = make([]int, 0, d)
		}
	}
	for _, e := range edges {
		adj[e.From] = append(adj[e.From], e.To)
	}

	return &Graph{adj: adj, size: len(edges)}, nil
}
