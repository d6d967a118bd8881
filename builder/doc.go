// SPDX-License-Identifier: MIT
// Package: spantree/builder
//
// Package builder generates deterministic weighted edge lists for tests,
// benchmarks and the generate command.
//
// A build composes Constructor closures over one *loader.Graph. Each
// constructor appends its own block of nodes after the ones already present,
// so BuildGraph(nil, Path(3), Path(2)) yields a disconnected graph over five
// nodes with two components.
//
// Available shapes:
//   - Path(n):            0-1, 1-2, …, (n-2)-(n-1)        n ≥ 2
//   - Cycle(n):           Path(n) plus the closing (n-1)-0  n ≥ 3
//   - Star(n):            hub 0 joined to 1..n-1            n ≥ 2
//   - Complete(n):        every pair i<j                    n ≥ 1
//   - RandomSparse(n, p): each pair i<j kept with prob. p   n ≥ 1, 0 ≤ p ≤ 1
//
// Knobs (BuilderOption):
//   - WithSeed / WithRand:      RNG for weights, sampling, flips and shuffles.
//   - WithWeightFn and friends: per-edge weight policy (default constant 1).
//   - WithReversal(p):          flip each edge orientation with probability p.
//   - WithShuffle():            permute the final edge list.
//
// Orientation matters to the pair-scan tracker, so WithReversal and
// WithShuffle are the cheapest way to produce inputs that exercise it.
//
// Errors are sentinels (ErrTooFewVertices, ErrInvalidProbability,
// ErrNeedRandSource, ErrConstructFailed) wrapped with the constructor name.
// Option constructors panic on meaningless values.
package builder
