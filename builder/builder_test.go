// Package builder_test verifies topology, composition, determinism and
// validation of the edge-list generators.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/spanning"
)

// TestBuilders_Functional checks node and edge counts plus connectivity.
func TestBuilders_Functional(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		ctor       builder.Constructor
		wantNodes  int
		wantEdges  int
		components int
	}{
		{name: "Path(5)", ctor: builder.Path(5), wantNodes: 5, wantEdges: 4, components: 1},
		{name: "Cycle(5)", ctor: builder.Cycle(5), wantNodes: 5, wantEdges: 5, components: 1},
		{name: "Star(6)", ctor: builder.Star(6), wantNodes: 6, wantEdges: 5, components: 1},
		{name: "Complete(5)", ctor: builder.Complete(5), wantNodes: 5, wantEdges: 10, components: 1},
		{name: "Complete(1)", ctor: builder.Complete(1), wantNodes: 1, wantEdges: 0, components: 1},
		{name: "RandomSparse(6,0)", ctor: builder.RandomSparse(6, 0), wantNodes: 6, wantEdges: 0, components: 6},
		{name: "RandomSparse(6,1)", ctor: builder.RandomSparse(6, 1), wantNodes: 6, wantEdges: 15, components: 1},
		{name: "RandomConnected(6,0)", ctor: builder.RandomConnected(6, 0), wantNodes: 6, wantEdges: 5, components: 1},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g, err := builder.BuildGraph(nil, tc.ctor)
			require.NoError(t, err)
			assert.Equal(t, tc.wantNodes, g.NodeCount)
			assert.Len(t, g.Edges, tc.wantEdges)

			shape, _ := spanning.CheckEdges(g.NodeCount, g.Edges)
			assert.Equal(t, tc.components, shape.Components)
			for _, e := range g.Edges {
				assert.Equal(t, builder.DefaultEdgeWeight, e.Weight())
				assert.False(t, e.IsLoop())
			}
		})
	}
}

// TestCycle_EmissionOrder pins the canonical orientation and order.
func TestCycle_EmissionOrder(t *testing.T) {
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithWeightFn(builder.SequentialWeightFn(1))},
		builder.Cycle(4),
	)
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{
		core.NewEdge(0, 1, 1),
		core.NewEdge(1, 2, 2),
		core.NewEdge(2, 3, 3),
		core.NewEdge(0, 3, 4),
	}, g.Edges)
}

// TestBuildGraph_Composition offsets each constructor's block of nodes.
func TestBuildGraph_Composition(t *testing.T) {
	g, err := builder.BuildGraph(nil, builder.Path(3), builder.Star(3))
	require.NoError(t, err)

	assert.Equal(t, 6, g.NodeCount)
	assert.Equal(t, []core.Edge{
		core.NewEdge(0, 1, 1),
		core.NewEdge(1, 2, 1),
		core.NewEdge(3, 4, 1),
		core.NewEdge(3, 5, 1),
	}, g.Edges)

	shape, err := spanning.CheckEdges(g.NodeCount, g.Edges)
	require.NoError(t, err)
	assert.Equal(t, 2, shape.Components)
}

// TestBuildGraph_Deterministic repeats a seeded build.
func TestBuildGraph_Deterministic(t *testing.T) {
	opts := func() []builder.BuilderOption {
		return []builder.BuilderOption{
			builder.WithSeed(42),
			builder.WithUniformWeight(1, 100),
			builder.WithReversal(0.5),
			builder.WithShuffle(),
		}
	}
	a, err := builder.BuildGraph(opts(), builder.RandomConnected(30, 0.2))
	require.NoError(t, err)
	b, err := builder.BuildGraph(opts(), builder.RandomConnected(30, 0.2))
	require.NoError(t, err)
	assert.Equal(t, a, b)

	c, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(43)}, builder.RandomSparse(30, 0.2))
	require.NoError(t, err)
	assert.NotEqual(t, a.Edges, c.Edges)
}

// TestWithReversal_All flips every edge without needing an RNG.
func TestWithReversal_All(t *testing.T) {
	g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithReversal(1)}, builder.Path(3))
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{core.NewEdge(1, 0, 1), core.NewEdge(2, 1, 1)}, g.Edges)
}

// TestBuildGraph_Errors exercises every sentinel.
func TestBuildGraph_Errors(t *testing.T) {
	tests := []struct {
		name string
		opts []builder.BuilderOption
		ctor builder.Constructor
		want error
	}{
		{name: "path too small", ctor: builder.Path(1), want: builder.ErrTooFewVertices},
		{name: "cycle too small", ctor: builder.Cycle(2), want: builder.ErrTooFewVertices},
		{name: "star too small", ctor: builder.Star(1), want: builder.ErrTooFewVertices},
		{name: "complete empty", ctor: builder.Complete(0), want: builder.ErrTooFewVertices},
		{name: "sparse empty", ctor: builder.RandomSparse(0, 0.5), want: builder.ErrTooFewVertices},
		{name: "connected too small", ctor: builder.RandomConnected(1, 0), want: builder.ErrTooFewVertices},
		{name: "bad probability", ctor: builder.RandomSparse(4, 1.5), want: builder.ErrInvalidProbability},
		{name: "negative probability", ctor: builder.RandomConnected(4, -0.1), want: builder.ErrInvalidProbability},
		{name: "sparse without rng", ctor: builder.RandomSparse(4, 0.5), want: builder.ErrNeedRandSource},
		{name: "shuffle without rng", opts: []builder.BuilderOption{builder.WithShuffle()}, ctor: builder.Path(3), want: builder.ErrNeedRandSource},
		{name: "partial reversal without rng", opts: []builder.BuilderOption{builder.WithReversal(0.3)}, ctor: builder.Path(3), want: builder.ErrNeedRandSource},
		{name: "nil constructor", want: builder.ErrConstructFailed},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g, err := builder.BuildGraph(tc.opts, tc.ctor)
			assert.ErrorIs(t, err, tc.want)
			assert.Nil(t, g)
		})
	}
}

// TestEdges returns the flattened build.
func TestEdges(t *testing.T) {
	n, edges, err := builder.Edges(nil, builder.Complete(3))
	require.NoError(t, err)
	assert.Equal(t, 3, n)
	assert.Len(t, edges, 3)

	_, _, err = builder.Edges(nil, builder.Cycle(0))
	assert.ErrorIs(t, err, builder.ErrTooFewVertices)
}

// TestWeightFns covers the distributions and their validation.
func TestWeightFns(t *testing.T) {
	assert.Equal(t, int64(1), builder.DefaultWeightFn(nil))
	assert.Equal(t, int64(7), builder.ConstantWeightFn(7)(nil))
	assert.Equal(t, int64(3), builder.UniformWeightFn(3, 9)(nil), "nil rng yields the lower bound")

	rng := rand.New(rand.NewSource(1))
	uni := builder.UniformWeightFn(3, 9)
	for i := 0; i < 200; i++ {
		w := uni(rng)
		assert.GreaterOrEqual(t, w, int64(3))
		assert.LessOrEqual(t, w, int64(9))
	}

	full := builder.UniformWeightFn(0, math.MaxInt64)
	for i := 0; i < 50; i++ {
		assert.GreaterOrEqual(t, full(rng), int64(0), "full int64 range must not overflow")
	}

	seq := builder.SequentialWeightFn(10)
	assert.Equal(t, []int64{10, 11, 12}, []int64{seq(nil), seq(nil), seq(nil)})

	assert.Panics(t, func() { builder.ConstantWeightFn(-1) })
	assert.Panics(t, func() { builder.UniformWeightFn(5, 4) })
	assert.Panics(t, func() { builder.UniformWeightFn(-1, 4) })
}

// TestOptions_Panic surfaces programmer errors at option construction.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithWeightFn(nil) })
	assert.Panics(t, func() { builder.WithReversal(2) })
	assert.NotPanics(t, func() { builder.WithRand(rand.New(rand.NewSource(1))) })
}
