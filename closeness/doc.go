// SPDX-License-Identifier: MIT
//
// Package closeness scores nodes of a directed graph by sampled closeness
// centrality and ranks them.
//
// Score
//
//	For one BFS distance vector d:
//
//	    score = reachable / total
//
//	where reachable is the number of nodes with a finite positive distance
//	and total is the sum of those distances. This is the reachable-set
//	normalized variant, not the textbook (N-1)/total: nodes that reach few
//	others are not penalized for the unreachable remainder.
//
// Direction
//
//   - Out(g, v): distances from v (forward BFS on g).
//   - In(g, v):  distances to v (forward BFS on g.Reverse()).
//
// Zero total
//
//	A node that reaches nothing has total == 0. The two directions treat
//	this differently, on purpose:
//
//	    Out → NaN  (0/0 propagated as data, policy ZeroNaN)
//	    In  → 0.0  (guarded, policy ZeroZero)
//
//	Score exposes the policy explicitly for callers that need either one.
//
// Ranking
//
//	RankOut / RankIn sample k eligible nodes (out-edges for Out, in-edges
//	for In), score each, and return a Ranking sorted by score descending.
//	NaN scores sort after every number, so sorting never fails; ties are
//	ordered by node index.
package closeness
