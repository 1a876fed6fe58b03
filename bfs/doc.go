// SPDX-License-Identifier: MIT
//
// Package bfs computes single-source unweighted shortest-path distances over
// a core.Graph by breadth-first search.
//
// What
//
//   - Explore nodes in non-decreasing hop distance from a start node,
//     following edge direction exactly as the Graph stores it.
//   - Return a Distances vector of length N: d[v] is the hop count from the
//     start to v, or Unreachable (-1) when no directed path exists.
//   - d[start] == 0 always; every d[v] = k > 0 has an in-neighbor u with
//     d[u] == k-1 (the node that discovered v).
//
// Inbound distances
//
//	Distances *to* a node are computed by running BFS on g.Reverse():
//
//	    in, _ := bfs.BFS(g.Reverse(), v)   // in[u] = hops from u to v in g
//
// Determinism
//
//	Neighbors are scanned in adjacency order and the frontier is FIFO, so
//	the result is a pure function of (graph, start, options). Repeated calls
//	return identical vectors; nothing is shared between calls, so
//	concurrent calls over one Graph are safe.
//
// Complexity (V = nodes, E = edges)
//
//   - Time:   O(V + E)   (each node enqueued at most once, each edge scanned once)
//   - Memory: O(V)       (distance vector doubles as the visited marker, plus the queue)
//
// Options
//
//   - WithContext(ctx):   cancellation, checked once per dequeued node.
//   - WithMaxDepth(d):    do not discover nodes beyond depth d (>0); 0 = no limit.
//   - WithOnVisit(fn):    called per dequeued node; a non-nil error aborts BFS.
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrStartOutOfRange  if start is not in 0..N-1.
//   - ErrOptionViolation  if an Option is invalid (e.g. negative MaxDepth).
//   - ctx.Err()           on cancellation.
//   - Wrapped OnVisit errors.
package bfs
