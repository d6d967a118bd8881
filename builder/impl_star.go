// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_star.go - Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewVertices).
//   • The first node of the block is the hub; spokes hub-leaf for leaves ascending.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/loader"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star with one hub and n-1 leaves.
func Star(n int) Constructor {
	return func(g *loader.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
		}

		hub := grow(g, n)
		for i := 1; i < n; i++ {
			emit(g, cfg, hub, hub+core.NodeID(i))
		}

		return nil
	}
}
