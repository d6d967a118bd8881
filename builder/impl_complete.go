// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// impl_complete.go - Complete(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewVertices); K_1 has no edges.
//   • Emits i-j for i ascending, then j ascending with j > i.
//
// Complexity: O(n²) time, O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/loader"
)

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds the complete graph K_n.
func Complete(n int) Constructor {
	return func(g *loader.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
		}

		base := grow(g, n)
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				emit(g, cfg, base+core.NodeID(i), base+core.NodeID(j))
			}
		}

		return nil
	}
}
