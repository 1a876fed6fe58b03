// SPDX-License-Identifier: MIT
//
// Package bfs provides breadth-first search over a core.Graph,
// returning unweighted shortest-path distances from one start node.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/graphsample/core"
)

// walker encapsulates mutable BFS state. A walker is private to one BFS
// call; nothing in it is shared with other calls.
type walker struct {
	graph *core.Graph
	opts  Options
	ctx   context.Context
	queue []int // FIFO frontier; head advances instead of reslicing
	head  int
	dist  Distances // doubles as the visited marker
}

// BFS runs breadth-first search on g starting from start,
// applying any number of functional Options.
// Returns ErrGraphNil or ErrStartOutOfRange for invalid input,
// ErrOptionViolation for bad options, ctx.Err() on cancellation,
// or a wrapped OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (Distances, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if !g.HasNode(start) {
		return nil, fmt.Errorf("%w: %d not in [0,%d)", ErrStartOutOfRange, start, g.Order())
	}

	n := g.Order()
	w := &walker{
		graph: g,
		opts:  o,
		ctx:   o.Ctx,
		queue: make([]int, 0, n),
		dist:  make(Distances, n),
	}
	for i := range w.dist {
		w.dist[i] = Unreachable
	}

	// Seed queue with the start node at depth 0
	w.enqueue(start, 0)
	if err := w.loop(); err != nil {
		return nil, err
	}

	return w.dist, nil
}

// enqueue marks v discovered at depth d and appends it to the frontier.
func (w *walker) enqueue(v, d int) {
	w.dist[v] = d
	w.queue = append(w.queue, v)
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for w.head < len(w.queue) {
		// cancellation check (once per dequeue)
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		u := w.queue[w.head]
		w.head++
		du := w.dist[u]
		if err := w.opts.OnVisit(u, du); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %d: %w", u, err)
		}
		w.enqueueNeighbors(u, du)
	}
	return nil
}

// enqueueNeighbors discovers every unseen out-neighbor of u at depth du+1,
// honoring MaxDepth.
func (w *walker) enqueueNeighbors(u, du int) {
	next := du + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for _, v := range w.graph.Neighbors(u) {
		// first time seen?
		if w.dist[v] == Unreachable {
			w.enqueue(v, next)
		}
	}
}
