// SPDX-License-Identifier: MIT
//
// File: score.go
// Role: Per-node closeness scores.

package closeness

import (
	"errors"
	"math"

	"github.com/katalvlaran/graphsample/bfs"
	"github.com/katalvlaran/graphsample/core"
)

// ErrGraphNil is returned if a nil graph pointer is passed.
var ErrGraphNil = errors.New("closeness: graph is nil")

// ZeroPolicy decides the score of a node whose total distance is zero.
type ZeroPolicy int

const (
	// ZeroNaN returns 0/0 = NaN (out-closeness behavior).
	ZeroNaN ZeroPolicy = iota
	// ZeroZero returns 0.0 (in-closeness behavior).
	ZeroZero
)

// Score computes reachable/total from one distance vector.
func Score(d bfs.Distances, policy ZeroPolicy) float64 {
	reachable, total := d.Summary()
	if total == 0 {
		if policy == ZeroZero {
			return 0
		}
		return math.NaN()
	}
	return float64(reachable) / float64(total)
}

// Out returns the out-closeness of node: BFS forward from node over g.
// A node that reaches nothing scores NaN.
//
// Complexity: O(V + E).
func Out(g *core.Graph, node int) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	d, err := bfs.BFS(g, node)
	if err != nil {
		return 0, err
	}
	return Score(d, ZeroNaN), nil
}

// In returns the in-closeness of node: BFS forward from node over the
// reverse of g, i.e. shortest distances from every other node to node.
// A node nothing reaches scores 0.
//
// In builds the reverse graph on every call; to score many nodes reverse
// once and use InOnReverse (RankIn does this).
//
// Complexity: O(V + E).
func In(g *core.Graph, node int) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	return InOnReverse(g.Reverse(), node)
}

// InOnReverse is In for a caller that already holds rev = g.Reverse().
func InOnReverse(rev *core.Graph, node int) (float64, error) {
	if rev == nil {
		return 0, ErrGraphNil
	}
	d, err := bfs.BFS(rev, node)
	if err != nil {
		return 0, err
	}
	return Score(d, ZeroZero), nil
}
