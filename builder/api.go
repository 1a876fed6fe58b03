// SPDX-License-Identifier: MIT
// Package: graphsample/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Resolves cfg, runs cons in
//     order over one draft, then freezes the draft into a core.Graph.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/graphsample/core"
)

// Constructor applies a deterministic mutation to the draft using the
// resolved builderConfig. Constructors validate parameters early and return
// sentinel errors (no panics).
type Constructor func(d *draft, cfg builderConfig) error

// BuildGraph resolves the builder configuration from bopts and applies all
// constructors in order. Any constructor error is wrapped with the context
// "BuildGraph: %w" and returned immediately.
//
// Complexity: Σ cost of each constructor plus O(V + E) to freeze the graph.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	d := &draft{bidirectional: cfg.bidirectional}

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(d, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	g, err := core.New(d.adj)
	if err != nil {
		return nil, fmt.Errorf("BuildGraph: %w: %w", ErrConstructFailed, err)
	}
	return g, nil
}

// MustBuild is BuildGraph for fixtures with constant arguments; it panics
// on error.
func MustBuild(bopts []BuilderOption, cons ...Constructor) *core.Graph {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		panic(err)
	}
	return g
}
