// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// api.go - public entry point for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Each constructor appends a fresh block of nodes starting at g.NodeCount.
//   - Determinism: same options, seed and constructor order give identical edge lists.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/loader"
)

// Constructor appends nodes and edges to g using the resolved builderConfig.
// Constructors validate parameters first and return sentinel errors.
type Constructor func(g *loader.Graph, cfg builderConfig) error

// BuildGraph resolves bopts, applies all constructors in order and, when
// WithShuffle is set, permutes the final edge list.
// Constructor errors are wrapped as "BuildGraph: %w".
//
// Complexity: Σ cost of the constructors plus O(E) for a shuffle.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*loader.Graph, error) {
	cfg := newBuilderConfig(bopts...)
	if cfg.rng == nil && cfg.stochastic() {
		return nil, fmt.Errorf("BuildGraph: shuffle or reversal: %w", ErrNeedRandSource)
	}

	g := &loader.Graph{}
	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}

	if cfg.shuffle {
		cfg.rng.Shuffle(len(g.Edges), func(i, j int) {
			g.Edges[i], g.Edges[j] = g.Edges[j], g.Edges[i]
		})
	}

	return g, nil
}

// Edges is BuildGraph for callers that only need the edge list and node count.
func Edges(bopts []BuilderOption, cons ...Constructor) (int, []core.Edge, error) {
	g, err := BuildGraph(bopts, cons...)
	if err != nil {
		return 0, nil, err
	}

	return g.NodeCount, g.Edges, nil
}

// grow reserves n new nodes on g and returns the first new id.
func grow(g *loader.Graph, n int) core.NodeID {
	base := core.NodeID(g.NodeCount)
	g.NodeCount += n

	return base
}

// emit appends u-v with a weight drawn from cfg, flipping the orientation
// when the reversal policy says so.
func emit(g *loader.Graph, cfg builderConfig, u, v core.NodeID) {
	w := cfg.weightFn(cfg.rng)
	switch {
	case cfg.reversal >= probMax:
		u, v = v, u
	case cfg.reversal > 0 && cfg.rng.Float64() < cfg.reversal:
		u, v = v, u
	}
	g.Edges = append(g.Edges, core.NewEdge(u, v, w))
}
