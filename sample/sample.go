// SPDX-License-Identifier: MIT
//
// File: sample.go
// Role: Eligible-set computation and uniform selection without replacement.

package sample

import (
	"math/rand"

	"github.com/katalvlaran/graphsample/core"
)

// Eligible returns, in ascending order, every node of g whose adjacency
// list is non-empty. A nil graph has no eligible nodes.
//
// Complexity: O(V).
func Eligible(g *core.Graph) []int {
	out := make([]int, 0)
	for u := 0; u < g.Order(); u++ {
		if g.OutDegree(u) > 0 {
			out = append(out, u)
		}
	}
	return out
}

// Choose draws min(k, |Eligible(g)|) distinct eligible nodes of g uniformly
// at random without replacement. k <= 0 or an empty eligible set yields an
// empty (non-nil) slice. Output order is unspecified.
// A nil rng uses a fresh DefaultSeed stream, so every nil call makes the
// same fixed draw; pass a shared *rand.Rand for independent samples.
//
// Complexity: O(V) to build the eligible set plus O(k) swaps.
func Choose(g *core.Graph, k int, rng *rand.Rand) []int {
	if k <= 0 {
		return []int{}
	}
	return pick(Eligible(g), k, rng)
}

// Pick draws min(k, len(candidates)) elements of candidates uniformly at
// random without replacement. candidates is not modified. Duplicates in
// candidates are the caller's concern; Pick never repeats a position.
//
// Complexity: O(len(candidates)) copy plus O(k) swaps.
func Pick(candidates []int, k int, rng *rand.Rand) []int {
	if k <= 0 || len(candidates) == 0 {
		return []int{}
	}
	return pick(append([]int(nil), candidates...), k, rng)
}

// pick runs k steps of an in-place Fisher–Yates shuffle over pool (which it
// owns) and returns the selected prefix.
func pick(pool []int, k int, rng *rand.Rand) []int {
	n := len(pool)
	if k >= n {
		return pool
	}
	r := orDefault(rng)

	var i, j int
	for i = 0; i < k; i++ {
		j = i + r.Intn(n-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:k:k]
}
