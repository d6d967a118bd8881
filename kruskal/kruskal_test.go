package kruskal_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/kruskal"
	"github.com/katalvlaran/spantree/spanning"
	"github.com/katalvlaran/spantree/tracker"
)

// edges is shorthand for a list of (s,d,w) triples.
func edges(triples ...[3]int) []core.Edge {
	out := make([]core.Edge, len(triples))
	for i, tr := range triples {
		out[i] = core.NewEdge(core.NodeID(tr[0]), core.NodeID(tr[1]), int64(tr[2]))
	}

	return out
}

// newSelector builds a selector and inserts every edge, failing on any error.
func newSelector(t *testing.T, nodes int, list []core.Edge, opts ...kruskal.Option) *kruskal.Selector {
	t.Helper()
	sel, err := kruskal.NewSelector(nodes, opts...)
	require.NoError(t, err)
	for _, e := range list {
		require.NoError(t, sel.InsertEdge(e.Source(), e.Destination(), e.Weight()))
	}

	return sel
}

// drain runs SelectNext to completion and returns every result, the final one included.
func drain(t *testing.T, sel *kruskal.Selector) []kruskal.Result {
	t.Helper()
	var out []kruskal.Result
	for i := 0; i < 1000; i++ {
		res := sel.SelectNext()
		out = append(out, res)
		if res.Done() {
			return out
		}
	}
	t.Fatal("selection did not complete")

	return nil
}

var methods = []string{kruskal.MethodPairScan, kruskal.MethodUnionFind}

// TestScenario_Square: 4 nodes on a square, the heaviest side is dropped.
func TestScenario_Square(t *testing.T) {
	for _, m := range methods {
		t.Run(m, func(t *testing.T) {
			tree, stats, err := kruskal.Compute(4, edges(
				[3]int{0, 1, 1}, [3]int{1, 2, 2}, [3]int{2, 3, 3}, [3]int{0, 3, 4},
			), kruskal.WithMethod(m))
			require.NoError(t, err)

			assert.Equal(t, edges([3]int{0, 1, 1}, [3]int{1, 2, 2}, [3]int{2, 3, 3}), tree.Edges())
			assert.Equal(t, int64(6), tree.TotalCost())
			assert.Equal(t, 3, stats.Accepted)
		})
	}
}

// TestScenario_TieBreak: equal weights resolve by insertion order.
func TestScenario_TieBreak(t *testing.T) {
	for _, m := range methods {
		t.Run(m, func(t *testing.T) {
			tree, _, err := kruskal.Compute(3, edges(
				[3]int{0, 1, 5}, [3]int{1, 2, 5}, [3]int{0, 2, 1},
			), kruskal.WithMethod(m))
			require.NoError(t, err)

			assert.Equal(t, edges([3]int{0, 2, 1}, [3]int{0, 1, 5}), tree.Edges())
			assert.Equal(t, int64(6), tree.TotalCost())
		})
	}
}

// TestScenario_Disconnected: two islands complete after two edges without error.
func TestScenario_Disconnected(t *testing.T) {
	for _, m := range methods {
		t.Run(m, func(t *testing.T) {
			sel := newSelector(t, 4, edges([3]int{0, 1, 1}, [3]int{2, 3, 2}), kruskal.WithMethod(m))
			results := drain(t, sel)

			require.Len(t, results, 3)
			assert.Equal(t, kruskal.StatusAccepted, results[0].Status)
			assert.Equal(t, kruskal.StatusAccepted, results[1].Status)
			assert.Equal(t, kruskal.StatusComplete, results[2].Status)
			assert.Equal(t, 2, sel.Tracker().AcceptedEdgeCount())
			assert.False(t, sel.Tracker().IsSpanningComplete(4))

			// Complete is sticky and has no side effects.
			before := sel.Stats()
			assert.True(t, sel.SelectNext().Done())
			assert.Equal(t, before, sel.Stats())
		})
	}
}

// TestSelectNext_Sequence pins the exact decision stream, rejection included.
func TestSelectNext_Sequence(t *testing.T) {
	for _, m := range methods {
		t.Run(m, func(t *testing.T) {
			sel := newSelector(t, 4, edges(
				[3]int{0, 1, 1}, [3]int{0, 2, 2}, [3]int{1, 2, 3}, [3]int{2, 3, 4},
			), kruskal.WithMethod(m))

			got := drain(t, sel)
			want := []kruskal.Result{
				{Status: kruskal.StatusAccepted, Edge: core.NewEdge(0, 1, 1)},
				{Status: kruskal.StatusAccepted, Edge: core.NewEdge(0, 2, 2)},
				{Status: kruskal.StatusRejected, Edge: core.NewEdge(1, 2, 3)},
				{Status: kruskal.StatusAccepted, Edge: core.NewEdge(2, 3, 4)},
				{Status: kruskal.StatusComplete},
			}
			assert.Equal(t, want, got)
			assert.Equal(t, kruskal.Stats{Inserted: 4, Accepted: 3, Rejected: 1}, sel.Stats())

			// The rejected entry left the index for good.
			assert.NotContains(t, sel.Order(), core.NewEdge(1, 2, 3))
			assert.Empty(t, sel.Remaining())
		})
	}
}

// TestSelectNext_SkipsKnownPair covers the already-known branch: once (0,1)
// and (1,2) are accepted, the propagated pair (0,2) makes a later 0→2 edge a skip.
func TestSelectNext_SkipsKnownPair(t *testing.T) {
	var skipped []core.Edge
	sel := newSelector(t, 4, edges(
		[3]int{0, 1, 1}, [3]int{1, 2, 2}, [3]int{0, 2, 3}, [3]int{2, 3, 4},
	), kruskal.WithOnSkip(func(e core.Edge) { skipped = append(skipped, e) }))

	results := drain(t, sel)
	require.Len(t, results, 4)
	assert.Equal(t, core.NewEdge(2, 3, 4), results[2].Edge)
	assert.Equal(t, []core.Edge{core.NewEdge(0, 2, 3)}, skipped)
	assert.Equal(t, 1, sel.Stats().Skipped)
}

// TestSelectNext_EmptyAndTrivial covers graphs with no edges or a single node.
func TestSelectNext_EmptyAndTrivial(t *testing.T) {
	sel := newSelector(t, 0, nil)
	assert.True(t, sel.SelectNext().Done())

	sel = newSelector(t, 1, edges([3]int{0, 0, 3}))
	assert.True(t, sel.SelectNext().Done(), "one node needs zero edges")
	assert.Len(t, sel.Remaining(), 1, "nothing was visited")
}

// TestInsertEdge_ReverseDuplicate pins the reverse-only duplicate rule.
func TestInsertEdge_ReverseDuplicate(t *testing.T) {
	var dups []core.Edge
	sel, err := kruskal.NewSelector(3, kruskal.WithOnDuplicate(func(e core.Edge) { dups = append(dups, e) }))
	require.NoError(t, err)

	require.NoError(t, sel.InsertEdge(0, 1, 5))
	assert.ErrorIs(t, sel.InsertEdge(1, 0, 5), kruskal.ErrDuplicateReverseEdge)
	assert.NoError(t, sel.InsertEdge(1, 0, 6), "different weight is a different edge")
	assert.NoError(t, sel.InsertEdge(0, 1, 5), "same orientation is not checked")

	assert.Equal(t, edges([3]int{0, 1, 5}, [3]int{1, 0, 6}, [3]int{0, 1, 5}), sel.Edges())
	assert.Equal(t, []core.Edge{core.NewEdge(1, 0, 5)}, dups)
	assert.Equal(t, kruskal.Stats{Inserted: 3, Duplicates: 1}, sel.Stats())
}

// TestInsertEdge_AfterFinalize rejects late insertions.
func TestInsertEdge_AfterFinalize(t *testing.T) {
	sel := newSelector(t, 2, edges([3]int{0, 1, 1}))
	sel.FinalizeOrder()
	sel.FinalizeOrder()

	assert.ErrorIs(t, sel.InsertEdge(1, 0, 2), kruskal.ErrAlreadyFinalized)
	assert.Len(t, sel.Edges(), 1)
}

// TestNewSelector_Validation covers constructor errors.
func TestNewSelector_Validation(t *testing.T) {
	_, err := kruskal.NewSelector(-1)
	assert.ErrorIs(t, err, kruskal.ErrInvalidNodeCount)

	_, err = kruskal.NewSelector(3, kruskal.WithExpectedEdges(-2))
	assert.ErrorIs(t, err, kruskal.ErrOptionViolation)

	_, err = kruskal.NewSelector(3, kruskal.WithMethod("reverse-delete"))
	assert.ErrorIs(t, err, tracker.ErrUnknownMethod)

	sel, err := kruskal.NewSelector(3, kruskal.WithMethod(kruskal.MethodUnionFind))
	require.NoError(t, err)
	assert.Equal(t, kruskal.MethodUnionFind, sel.Method())
	assert.Equal(t, 3, sel.NodeCount())
}

// TestOrder_WeightThenIndex checks the weight index ordering.
func TestOrder_WeightThenIndex(t *testing.T) {
	sel := newSelector(t, 5, edges(
		[3]int{0, 1, 7}, [3]int{1, 2, 3}, [3]int{2, 3, 7}, [3]int{3, 4, 3}, [3]int{0, 4, 1},
	))

	assert.Equal(t, edges(
		[3]int{0, 4, 1}, [3]int{1, 2, 3}, [3]int{3, 4, 3}, [3]int{0, 1, 7}, [3]int{2, 3, 7},
	), sel.Order())
	assert.Equal(t, []kruskal.Entry{
		{Weight: 1, Index: 4}, {Weight: 3, Index: 1}, {Weight: 3, Index: 3}, {Weight: 7, Index: 0}, {Weight: 7, Index: 2},
	}, sel.Entries())
}

// TestPairScan_AcceptsReverseOfPropagatedPair shows the documented gap end to end:
// pair scan keeps 2→0 and closes a triangle, union-find rejects it and reaches node 3.
func TestPairScan_AcceptsReverseOfPropagatedPair(t *testing.T) {
	list := edges([3]int{0, 1, 1}, [3]int{1, 2, 2}, [3]int{2, 0, 3}, [3]int{2, 3, 4})

	scan, _, err := kruskal.Compute(4, list, kruskal.WithMethod(kruskal.MethodPairScan))
	require.NoError(t, err)
	assert.Equal(t, edges([3]int{0, 1, 1}, [3]int{1, 2, 2}, [3]int{2, 0, 3}), scan.Edges())
	_, err = scan.Check(4)
	assert.ErrorIs(t, err, spanning.ErrCycle)

	uf, stats, err := kruskal.Compute(4, list, kruskal.WithMethod(kruskal.MethodUnionFind))
	require.NoError(t, err)
	assert.Equal(t, edges([3]int{0, 1, 1}, [3]int{1, 2, 2}, [3]int{2, 3, 4}), uf.Edges())
	assert.Equal(t, int64(7), uf.TotalCost())
	assert.Equal(t, 1, stats.Rejected)
	shape, err := uf.Check(4)
	require.NoError(t, err)
	assert.True(t, shape.Spanning)
}

// TestPairScan_MissesUnpropagatedChain: after 0-1, 2-3 and 1-2 the pair (0,3)
// was never derived, so 3→0 is accepted and node 4 stays unreached.
func TestPairScan_MissesUnpropagatedChain(t *testing.T) {
	list := edges([3]int{0, 1, 1}, [3]int{2, 3, 2}, [3]int{1, 2, 3}, [3]int{3, 0, 4}, [3]int{3, 4, 5})

	scan, _, err := kruskal.Compute(5, list)
	require.NoError(t, err)
	assert.Equal(t, int64(10), scan.TotalCost())
	assert.Contains(t, scan.Edges(), core.NewEdge(3, 0, 4))

	uf, _, err := kruskal.Compute(5, list, kruskal.WithMethod(kruskal.MethodUnionFind))
	require.NoError(t, err)
	assert.Equal(t, int64(11), uf.TotalCost())
	assert.Contains(t, uf.Edges(), core.NewEdge(3, 4, 5))
}

// TestHooks_FireInOrder verifies hook chaining and the single OnComplete call.
func TestHooks_FireInOrder(t *testing.T) {
	var trail []string
	var completions []kruskal.Stats
	sel := newSelector(t, 4, edges(
		[3]int{0, 1, 1}, [3]int{0, 2, 2}, [3]int{1, 2, 3}, [3]int{2, 3, 4},
	),
		kruskal.WithOnAccept(func(e core.Edge) { trail = append(trail, "a:"+e.String()) }),
		kruskal.WithOnAccept(func(e core.Edge) { trail = append(trail, "A:"+e.String()) }),
		kruskal.WithOnReject(func(e core.Edge) { trail = append(trail, "r:"+e.String()) }),
		kruskal.WithOnComplete(func(s kruskal.Stats) { completions = append(completions, s) }),
	)
	drain(t, sel)
	sel.SelectNext()

	assert.Equal(t, []string{
		"a:0-1(1)", "A:0-1(1)",
		"a:0-2(2)", "A:0-2(2)",
		"r:1-2(3)",
		"a:2-3(4)", "A:2-3(4)",
	}, trail)
	require.Len(t, completions, 1)
	assert.Equal(t, 3, completions[0].Accepted)
}

// TestLogger_DecisionTrail checks that the selector narrates its decisions.
func TestLogger_DecisionTrail(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	sel := newSelector(t, 4, edges(
		[3]int{0, 1, 1}, [3]int{0, 2, 2}, [3]int{1, 2, 3}, [3]int{2, 3, 4},
	), kruskal.WithLogger(logger))
	_ = sel.InsertEdge(1, 0, 1)
	drain(t, sel)

	out := buf.String()
	assert.Contains(t, out, "cannot insert edge, reverse already exists")
	assert.Contains(t, out, "processing edge")
	assert.Contains(t, out, "cycle witness")
	assert.Contains(t, out, "edge would create a cycle, rejecting")
	assert.Contains(t, out, "spanning tree complete, terminating")
}

// TestRun_Cancelled stops before the first decision when ctx is done.
func TestRun_Cancelled(t *testing.T) {
	sel := newSelector(t, 3, edges([3]int{0, 1, 1}, [3]int{1, 2, 1}))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	tree := spanning.NewTree()
	stats, err := kruskal.Run(ctx, sel, tree)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, stats.Accepted)
	assert.Zero(t, tree.Len())
}

// TestCompute_SkipsReverseDuplicates keeps going past reverse duplicates.
func TestCompute_SkipsReverseDuplicates(t *testing.T) {
	tree, stats, err := kruskal.Compute(3, edges(
		[3]int{0, 1, 2}, [3]int{1, 0, 2}, [3]int{1, 2, 3},
	))
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Duplicates)
	assert.Equal(t, int64(5), tree.TotalCost())
}

// TestCompute_Deterministic reruns the same input and expects identical output.
func TestCompute_Deterministic(t *testing.T) {
	list := randomConnected(30, 90, 7)
	for _, m := range methods {
		t.Run(m, func(t *testing.T) {
			first, _, err := kruskal.Compute(30, list, kruskal.WithMethod(m))
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				again, _, err := kruskal.Compute(30, list, kruskal.WithMethod(m))
				require.NoError(t, err)
				assert.Equal(t, first.Edges(), again.Edges())
				assert.Equal(t, first.TotalCost(), again.TotalCost())
			}
		})
	}
}

// TestStatus_String covers the status labels.
func TestStatus_String(t *testing.T) {
	assert.Equal(t, "accepted", kruskal.StatusAccepted.String())
	assert.Equal(t, "rejected", kruskal.StatusRejected.String())
	assert.Equal(t, "complete", kruskal.StatusComplete.String())
	assert.Equal(t, "status(9)", kruskal.Status(9).String())
}
