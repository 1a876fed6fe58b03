// SPDX-License-Identifier: MIT
//
// File: distance.go
// Role: Sampled average-distance and histogram aggregators.

package distance

import (
	"context"
	"errors"
	"math/rand"

	"github.com/katalvlaran/graphsample/bfs"
	"github.com/katalvlaran/graphsample/core"
	"github.com/katalvlaran/graphsample/runner"
	"github.com/katalvlaran/graphsample/sample"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("distance: graph is nil")

// Report is the result of one sampling pass.
type Report struct {
	// Samples are the start nodes actually used (order unspecified).
	Samples []int
	// Count is the number of finite positive distances observed.
	Count int
	// Sum is their total.
	Sum int
	// Mean is float64(Sum)/float64(Count); NaN when Count == 0.
	Mean float64
	// Histogram tallies the same observations.
	Histogram Histogram
}

// partial is the per-start contribution, owned by one runner slot.
type partial struct {
	count, sum int
	// levels[d] = number of nodes at distance d (index 0 unused).
	levels []int
}

// Mean samples k start nodes with at least one out-edge, runs BFS from each,
// and returns the mean of every finite distance > 0 over all runs.
// Zero observations yield NaN, not an error.
func Mean(ctx context.Context, g *core.Graph, k int, rng *rand.Rand, opts ...runner.Option) (float64, error) {
	rep, err := Collect(ctx, g, k, rng, opts...)
	if err != nil {
		return 0, err
	}
	return rep.Mean, nil
}

// Tally samples like Mean and returns the Histogram of every finite
// distance > 0 over all runs. Zero observations yield an empty Histogram.
func Tally(ctx context.Context, g *core.Graph, k int, rng *rand.Rand, opts ...runner.Option) (Histogram, error) {
	rep, err := Collect(ctx, g, k, rng, opts...)
	if err != nil {
		return nil, err
	}
	return rep.Histogram, nil
}

// Collect draws one sample of k start nodes and computes both the mean and
// the histogram from the same BFS runs.
//
// Complexity: O(k·(V + E)) time; O(V) per in-flight BFS.
func Collect(ctx context.Context, g *core.Graph, k int, rng *rand.Rand, opts ...runner.Option) (Report, error) {
	if g == nil {
		return Report{}, ErrGraphNil
	}
	if ctx == nil {
		ctx = context.Background()
	}

	starts := sample.Choose(g, k, rng)
	parts := make([]partial, len(starts))
	err := runner.Run(ctx, starts, func(ctx context.Context, i, start int) error {
		d, err := bfs.BFS(g, start, bfs.WithContext(ctx))
		if err != nil {
			return err
		}
		parts[i] = summarize(d)
		return nil
	}, opts...)
	if err != nil {
		return Report{}, err
	}

	rep := Report{Samples: starts, Histogram: make(Histogram)}
	for _, p := range parts {
		rep.Count += p.count
		rep.Sum += p.sum
		for dist, c := range p.levels {
			if c > 0 {
				rep.Histogram[dist] += c
			}
		}
	}
	// 0/0 is NaN by IEEE 754; returned as data.
	rep.Mean = float64(rep.Sum) / float64(rep.Count)

	return rep, nil
}

// summarize reduces one distance vector to its positive-distance tally.
func summarize(d bfs.Distances) partial {
	p := partial{levels: make([]int, d.Eccentricity()+1)}
	d.Each(func(_, dist int) {
		p.count++
		p.sum += dist
		p.levels[dist]++
	})
	return p
}
