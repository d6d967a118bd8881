// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_random_sparse.go - RandomSparse(n, p) constructor.
//
// Erdős–Rényi-like: each unordered pair {i,j}, i<j, is kept independently
// with probability p. Trials run i ascending, then j ascending, so a fixed
// seed gives a fixed edge list.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource).
//
// Complexity: O(n²) Bernoulli trials, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/loader"
)

const (
	methodRandomSparse      = "RandomSparse"
	methodRandomConnected   = "RandomConnected"
	minRandomSparseVertices = 1
	probMin                 = 0.0
	probMax                 = 1.0
)

// RandomSparse returns a Constructor that samples a random simple graph over
// n nodes with independent edge probability p.
func RandomSparse(n int, p float64) Constructor {
	return func(g *loader.Graph, cfg builderConfig) error {
		if n < minRandomSparseVertices {
			return fmt.Errorf("%s: n=%d < min=%d: %w",
				methodRandomSparse, n, minRandomSparseVertices, ErrTooFewVertices)
		}
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomSparse, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomSparse, ErrNeedRandSource)
		}

		base := grow(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax, cfg.rng.Float64() < p:
					emit(g, cfg, base+core.NodeID(i), base+core.NodeID(j))
				}
			}
		}

		return nil
	}
}

// RandomConnected returns a Constructor that lays down Path(n) as a backbone
// and then adds each remaining pair with probability p, so the result is
// always connected.
func RandomConnected(n int, p float64) Constructor {
	backbone := Path(n)
	return func(g *loader.Graph, cfg builderConfig) error {
		if p < probMin || p > probMax {
			return fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
				methodRandomConnected, p, probMin, probMax, ErrInvalidProbability)
		}
		if cfg.rng == nil && p > probMin && p < probMax {
			return fmt.Errorf("%s: rng is required: %w", methodRandomConnected, ErrNeedRandSource)
		}

		base := core.NodeID(g.NodeCount)
		if err := backbone(g, cfg); err != nil {
			return fmt.Errorf("%s: %w", methodRandomConnected, err)
		}
		for i := 0; i < n; i++ {
			for j := i + 2; j < n; j++ {
				switch {
				case p == probMin:
					continue
				case p == probMax, cfg.rng.Float64() < p:
					emit(g, cfg, base+core.NodeID(i), base+core.NodeID(j))
				}
			}
		}

		return nil
	}
}
