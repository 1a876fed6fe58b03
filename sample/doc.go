// SPDX-License-Identifier: MIT
//
// Package sample selects start nodes for sampled estimators: a uniform,
// duplicate-free random subset of the nodes that have at least one
// out-edge.
//
// Eligibility
//
//	A node is eligible when its adjacency list in the Graph passed in is
//	non-empty. Pass g for out-direction metrics and g.Reverse() for
//	in-direction metrics (eligible = nodes with in-edges in g).
//
// Uniformity
//
//	Choose draws min(k, |eligible|) indices by a partial Fisher–Yates
//	shuffle: after k swap steps the first k positions hold a uniformly
//	random k-subset (every subset of that size is equally likely). When k
//	covers the whole eligible set the result is exactly that set.
//
// Randomness
//
//	There is no process-wide source. Every draw takes an explicit
//	*rand.Rand; NewRand(seed) builds a deterministic one (seed 0 maps to
//	DefaultSeed). math/rand.Rand is NOT goroutine-safe: draw samples before
//	fanning work out to goroutines, or give each goroutine its own source.
package sample
