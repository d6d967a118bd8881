// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// weight_fn.go - edge weight distributions.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is assigned to each edge when no WeightFn is configured.
const DefaultEdgeWeight int64 = 1

// WeightFn produces an edge weight from an optional RNG.
// It must be deterministic for a given RNG state.
type WeightFn func(rng *rand.Rand) int64

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) int64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn always yields value. Panics if value < 0.
func ConstantWeightFn(value int64) WeightFn {
	if value < 0 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 0, got %d", value))
	}

	return func(_ *rand.Rand) int64 {
		return value
	}
}

// UniformWeightFn samples uniformly in [lo, hi] inclusive.
// With a nil rng it yields lo. Panics if lo < 0 or hi < lo.
func UniformWeightFn(lo, hi int64) WeightFn {
	if lo < 0 || hi < lo {
		panic(fmt.Sprintf("UniformWeightFn: require 0 ≤ lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int64 {
		if rng == nil || hi == lo {
			return lo
		}
		if hi-lo == math.MaxInt64 {
			return lo + rng.Int63() // hi-lo+1 does not fit in int64
		}

		return lo + rng.Int63n(hi-lo+1)
	}
}

// SequentialWeightFn yields start, start+1, start+2, … in emission order.
// Every edge of a build gets a distinct weight, which removes ties.
// The returned function carries state; use one per build.
func SequentialWeightFn(start int64) WeightFn {
	next := start

	return func(_ *rand.Rand) int64 {
		w := next
		next++

		return w
	}
}
