// SPDX-License-Identifier: MIT
// Package: planarity/builder
//
// api.go: the Constructor contract and the BuildGraph entry point.

package builder

import (
	"fmt"

	"github.com/katalvlaran/planarity/core"
)

// Constructor mutates g according to one graph family, using cfg for IDs,
// weights and randomness. Constructors never create the graph themselves.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a graph with gopts, resolves bopts once and applies every
// constructor in order. The first failing constructor aborts the build.
//
// Errors: ErrConstructFailed for a nil constructor, otherwise the wrapped
// constructor error.
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	return g, nil
}

// connect adds u-v with a drawn weight, mirroring it on directed graphs.
func connect(g *core.Graph, cfg builderConfig, method, u, v string) error {
	var w int64
	if g.Weighted() {
		w = cfg.weightFn(cfg.rng)
	}
	if _, err := g.AddEdge(u, v, w); err != nil {
		return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, u, v, w, err)
	}
	if g.Directed() {
		if _, err := g.AddEdge(v, u, w); err != nil {
			return fmt.Errorf("%s: AddEdge(%s→%s, w=%d): %w", method, v, u, w, err)
		}
	}

	return nil
}

// addVertices inserts idFn(0..n-1) and returns the IDs in order.
func addVertices(g *core.Graph, cfg builderConfig, method string, n int) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = cfg.idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, fmt.Errorf("%s: AddVertex(%s): %w", method, ids[i], err)
		}
	}

	return ids, nil
}
