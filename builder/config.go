// SPDX-License-Identifier: MIT
// Package: graphsample/builder
//
// config.go - internal configuration, deterministic defaults, and the
// edge draft shared by constructors.

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// RNG for stochastic choices; nil means “no randomness”.
	rng *rand.Rand
	// mirror every emitted edge (u→v also adds v→u).
	bidirectional bool
	// allow u→u in RandomSparse.
	loops bool
}

// newBuilderConfig constructs a config with deterministic defaults and applies
// all options in order (later overrides earlier).
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// draft accumulates adjacency lists while constructors run.
type draft struct {
	adj           [][]int
	bidirectional bool
}

// grow makes sure node indices 0..n-1 exist.
func (d *draft) grow(n int) {
	for len(d.adj) < n {
		d.adj = append(d.adj, nil)
	}
}

// link emits u→v (and v→u when mirroring; a self-loop is emitted once).
func (d *draft) link(u, v int) {
	d.adj[u] = append(d.adj[u], v)
	if d.bidirectional && u != v {
		d.adj[v] = append(d.adj[v], u)
	}
}
