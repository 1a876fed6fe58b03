// SPDX-License-Identifier: MIT
//
// Package distance estimates the shortest-path length distribution of a
// directed graph from BFS runs started at a uniform sample of nodes.
//
// Aggregators
//
//   - Mean:    average of every finite, strictly positive distance observed
//     across all sampled runs.
//   - Tally:   Histogram (distance → count) of the same observations.
//   - Collect: both from a single sampling pass.
//
// Start nodes are drawn with sample.Choose over nodes with at least one
// out-edge. The random source is an explicit argument: pass
// sample.NewRand(seed) for reproducible estimates.
//
// Zero observations
//
//	When no positive finite distance is observed (k == 0, no eligible
//	nodes, or every sampled node only reaches itself), Mean returns NaN
//	(0/0) as an ordinary value, not an error, and Tally returns an empty
//	Histogram. Callers test with math.IsNaN.
//
// Concurrency
//
//	runner.Option values control the fan-out. Every BFS writes its partial
//	tally into its own slot; slots are merged once after all runs finish.
package distance
