// SPDX-License-Identifier: MIT
//
// File: rank.go
// Role: Sampled ranking by out- or in-closeness.

package closeness

import (
	"context"
	"math/rand"

	"github.com/katalvlaran/graphsample/bfs"
	"github.com/katalvlaran/graphsample/core"
	"github.com/katalvlaran/graphsample/runner"
	"github.com/katalvlaran/graphsample/sample"
)

// RankOut samples k nodes with at least one out-edge, scores each with Out
// semantics, and returns them ranked.
//
// Complexity: O(k·(V + E)) time.
func RankOut(ctx context.Context, g *core.Graph, k int, rng *rand.Rand, opts ...runner.Option) (Ranking, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	return rank(ctx, g, k, rng, ZeroNaN, opts...)
}

// RankIn samples k nodes with at least one in-edge, scores each with In
// semantics, and returns them ranked. The reverse graph is built once and
// shared by every BFS.
//
// Complexity: O(V + E) to reverse plus O(k·(V + E)).
func RankIn(ctx context.Context, g *core.Graph, k int, rng *rand.Rand, opts ...runner.Option) (Ranking, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	return rank(ctx, g.Reverse(), k, rng, ZeroZero, opts...)
}

// rank scores a sample of walk's eligible nodes by BFS over walk.
func rank(ctx context.Context, walk *core.Graph, k int, rng *rand.Rand, policy ZeroPolicy, opts ...runner.Option) (Ranking, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	starts := sample.Choose(walk, k, rng)
	entries := make([]Entry, len(starts))

	err := runner.Run(ctx, starts, func(ctx context.Context, i, start int) error {
		d, err := bfs.BFS(walk, start, bfs.WithContext(ctx))
		if err != nil {
			return err
		}
		entries[i] = Entry{Node: start, Score: Score(d, policy)}
		return nil
	}, opts...)
	if err != nil {
		return nil, err
	}

	return NewRanking(entries), nil
}
