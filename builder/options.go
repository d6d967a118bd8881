// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// options.go - functional options for the builder package.
//
// Option constructors validate and panic on meaningless inputs.
// Constructors themselves never panic.

package builder

import (
	"fmt"
	"math/rand"
)

// BuilderOption customizes a build by mutating builderConfig before any
// constructor runs.
type BuilderOption func(*builderConfig)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) BuilderOption {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *builderConfig) {
		c.rng = r
	}
}

// WithSeed creates a new *rand.Rand with the given seed.
// Use this in tests and examples to lock outcomes.
func WithSeed(seed int64) BuilderOption {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn overrides the per-edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) BuilderOption {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight is shorthand for WithWeightFn(ConstantWeightFn(w)).
func WithConstantWeight(w int64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight is shorthand for WithWeightFn(UniformWeightFn(lo, hi)).
func WithUniformWeight(lo, hi int64) BuilderOption {
	return WithWeightFn(UniformWeightFn(lo, hi))
}

// WithReversal flips the orientation of each emitted edge with probability p.
// p == 1 reverses every edge and needs no RNG. Panics unless 0 ≤ p ≤ 1.
func WithReversal(p float64) BuilderOption {
	if p < probMin || p > probMax {
		panic(fmt.Sprintf("builder: WithReversal(%g) outside [0,1]", p))
	}
	return func(c *builderConfig) {
		c.reversal = p
	}
}

// WithShuffle permutes the final edge list. Requires an RNG at build time.
func WithShuffle() BuilderOption {
	return func(c *builderConfig) {
		c.shuffle = true
	}
}
