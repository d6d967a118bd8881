// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// config.go - internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • rng      = nil       (pure unless seeded)
//   • weightFn = DefaultWeightFn
//   • reversal = 0         (edges keep their canonical i<j orientation)
//   • shuffle  = false     (edges keep constructor emission order)

package builder

import "math/rand"

// builderConfig aggregates all knobs used by constructors.
// It is passed by value to constructors.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
	reversal float64
	shuffle  bool
}

// newBuilderConfig applies opts over the defaults; later options win.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// stochastic reports whether the config needs an RNG beyond weight sampling.
func (c builderConfig) stochastic() bool {
	return c.shuffle || (c.reversal > 0 && c.reversal < 1)
}
