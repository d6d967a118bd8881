// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_path.go - Path(n) and Cycle(n) constructors.
//
// Contract:
//   • Path: n ≥ 2, edges i-(i+1) for i ascending.
//   • Cycle: n ≥ 3, the Path edges followed by the closing edge 0-(n-1).
//   • Node ids are relative to the block offset chosen by BuildGraph.
//
// Complexity: O(n) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/loader"
)

const (
	methodPath    = "Path"
	methodCycle   = "Cycle"
	minPathNodes  = 2
	minCycleNodes = 3
)

// Path returns a Constructor that builds the simple path P_n.
func Path(n int) Constructor {
	return func(g *loader.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewVertices)
		}

		base := grow(g, n)
		for i := 0; i+1 < n; i++ {
			emit(g, cfg, base+core.NodeID(i), base+core.NodeID(i+1))
		}

		return nil
	}
}

// Cycle returns a Constructor that builds the simple cycle C_n.
func Cycle(n int) Constructor {
	return func(g *loader.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
		}

		base := grow(g, n)
		for i := 0; i < n; i++ {
			u, v := i, (i+1)%n
			if v < u {
				u, v = v, u
			}
			emit(g, cfg, base+core.NodeID(u), base+core.NodeID(v))
		}

		return nil
	}
}
