// SPDX-License-Identifier: MIT
// Package: graphsample/builder
//
// impl_topology.go - deterministic topologies: Path, Cycle, Star, Complete, Isolated.
//
// Every constructor emits edges in ascending index order so that adjacency
// lists are stable across runs.

package builder

import "fmt"

const (
	methodPath     = "Path"
	methodCycle    = "Cycle"
	methodStar     = "Star"
	methodComplete = "Complete"
	methodIsolated = "Isolated"

	minPathNodes     = 1
	minCycleNodes    = 2
	minStarNodes     = 2
	minCompleteNodes = 1
	minIsolatedNodes = 1
)

// Path emits 0→1→…→(n-1).
func Path(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}
		d.grow(n)
		for i := 1; i < n; i++ {
			d.link(i-1, i)
		}
		return nil
	}
}

// Cycle emits 0→1→…→(n-1)→0.
func Cycle(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}
		d.grow(n)
		for i := 0; i < n; i++ {
			d.link(i, (i+1)%n)
		}
		return nil
	}
}

// Star emits the hub 0 pointing at every leaf 1..n-1.
func Star(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}
		d.grow(n)
		for i := 1; i < n; i++ {
			d.link(0, i)
		}
		return nil
	}
}

// Complete emits every ordered pair u→v with u != v.
// With WithBidirectional each pair appears twice per direction.
func Complete(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}
		d.grow(n)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				if u != v {
					d.link(u, v)
				}
			}
		}
		return nil
	}
}

// Isolated makes sure nodes 0..n-1 exist without adding edges.
func Isolated(n int) Constructor {
	return func(d *draft, _ builderConfig) error {
		if n < minIsolatedNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodIsolated, n, minIsolatedNodes, ErrTooFewVertices)
		}
		d.grow(n)
		return nil
	}
}
