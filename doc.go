// SPDX-License-Identifier: MIT

// Package graphsample estimates shortest-path statistics of large directed
// graphs from a random sample of BFS start nodes.
//
// Exact all-pairs analysis of a graph with hundreds of thousands of nodes
// is out of reach for a quick look, so every estimator here draws k
// distinct start nodes uniformly (without replacement) from the nodes that
// have at least one edge in the walked direction and runs one unweighted
// BFS per start node.
//
// Packages:
//
//	core/        immutable index-based directed Graph, Reverse, degree Stats
//	bfs/         single-source hop distances with context and depth options
//	sample/      seeded uniform sampling without replacement
//	runner/      bounded parallel fan-out of per-start work (errgroup)
//	distance/    mean distance, distance Histogram, single-pass Collect
//	closeness/   out/in closeness scores and NaN-safe rankings
//	edgelist/    SNAP-style "from to" edge-list ingestion
//	render/      terminal histogram bar chart and ranking listings
//	builder/     synthetic graphs for tests, benchmarks and demo runs
//
// The graphsample command in cmd/graphsample wires these together with
// YAML configuration, slog logging and prometheus metrics.
//
// Quick start:
//
//	g, _, err := edgelist.Load("amazon0302.txt")
//	rep, err := distance.Collect(ctx, g, 500, sample.NewRand(42))
//	top, err := closeness.RankOut(ctx, g, 500, sample.NewRand(42))
package graphsample
