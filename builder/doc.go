// SPDX-License-Identifier: MIT
//
// Package builder generates deterministic synthetic graphs (paths, cycles,
// stars, complete graphs, Erdős–Rényi-like random graphs) as core.Graph
// values. Fixtures drive tests and benchmarks, and the CLI uses RandomSparse
// for its synthetic mode.
//
// Usage:
//
//	g, err := builder.BuildGraph(
//	    []builder.BuilderOption{builder.WithSeed(42)},
//	    builder.RandomSparse(1000, 0.005),
//	)
//
// Constructors write into a shared draft over node indices 0..n-1; several
// constructors in one BuildGraph call overlay their edges on the same nodes.
// WithBidirectional mirrors every edge (u→v also adds v→u), which models an
// undirected graph on top of the directed core.
//
// Errors (sentinels, match with errors.Is):
//
//	ErrTooFewVertices      – n below the constructor's minimum.
//	ErrInvalidProbability  – p outside [0,1].
//	ErrNeedRandSource      – stochastic constructor without WithSeed/WithRand.
//	ErrConstructFailed     – nil constructor or core rejected the draft.
package builder
