// SPDX-License-Identifier: MIT
//
// Package core provides the immutable, index-addressed directed Graph that
// every estimator in graphsample reads from.
//
// The Graph G = (V,E) is stored as dense adjacency lists:
//
//	adj[u] = [v1, v2, ...]   // destinations of the out-edges of u, in insertion order
//
// Node IDs are the integers 0..N-1, where N = max(observed id) + 1, so every
// index in that range exists even when it carries no edges.
//
// Properties:
//
//   - Directed only. Undirected data is modelled by inserting both u→v and v→u.
//   - Parallel edges and self-loops are kept as-is (never deduplicated).
//   - Immutable after construction: constructors copy their input, and no
//     method mutates the receiver. A *Graph is therefore safe for concurrent
//     readers without locks; independent BFS runs may share one Graph.
//   - Reverse() derives the transpose graph (u→v becomes v→u), preserving
//     edge multiplicities, as a fresh independently owned Graph.
//
// Construction:
//
//	g, err := core.New([][]int{{1, 2}, {2}, {3}, {}})  // 0→1, 0→2, 1→2, 2→3
//	g, err := core.FromEdges([]core.Edge{{From: 0, To: 1}, {From: 1, To: 2}})
//
// Query:
//
//	Order() int                // N, number of node slots
//	Size() int                 // E, number of edges (parallel/self-loops included)
//	Neighbors(u int) []int     // read-only view of adj[u]
//	OutDegree(u int) int
//	HasNode(u int) bool
//	AdjacencyList() [][]int    // deep copy
//	Reverse() *Graph           // O(V+E) transpose
//	Stats() Stats              // O(V+E) degree summary
//
// Errors:
//
//	ErrNodeOutOfRange – an edge endpoint is negative or ≥ N.
package core
