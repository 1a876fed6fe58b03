// SPDX-License-Identifier: MIT
//
// Package bfs provides tunable options, error definitions, and the
// Distances result type for breadth-first search over a core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Unreachable marks a node with no directed path from the start node.
const Unreachable = -1

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartOutOfRange is returned when start is not a node index of the graph.
	ErrStartOutOfRange = errors.New("bfs: start node out of range")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnVisit is called when a node is dequeued, with its depth from the
	// start. If it returns an error, BFS aborts and propagates that error.
	OnVisit func(node, depth int) error

	// MaxDepth, if > 0, stops discovery beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - Context.Background()
//   - no depth limit (MaxDepth == 0)
//   - no-op OnVisit hook
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		OnVisit:  func(int, int) error { return nil },
		MaxDepth: 0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(node, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops discovery at the given depth (inclusive).
//
//	d > 0: nodes farther than d hops stay Unreachable
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Distances is a per-node hop-count vector produced by BFS. Index v holds
// the shortest hop count from the start node, or Unreachable.
type Distances []int

// Reachable reports whether v has a finite distance.
func (d Distances) Reachable(v int) bool {
	return v >= 0 && v < len(d) && d[v] != Unreachable
}

// Each calls fn for every node with a finite, strictly positive distance,
// in ascending node order. The start node (distance 0) is skipped.
func (d Distances) Each(fn func(node, dist int)) {
	for v, dist := range d {
		if dist > 0 {
			fn(v, dist)
		}
	}
}

// Summary returns how many nodes have a finite positive distance and the
// sum of those distances.
// Complexity: O(V).
func (d Distances) Summary() (count, sum int) {
	for _, dist := range d {
		if dist > 0 {
			count++
			sum += dist
		}
	}
	return count, sum
}

// Eccentricity returns the largest finite distance (0 when nothing but the
// start is reachable).
func (d Distances) Eccentricity() int {
	ecc := 0
	for _, dist := range d {
		ecc = max(ecc, dist)
	}
	return ecc
}
