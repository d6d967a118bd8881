package kruskal

import (
	"context"
	"errors"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/spanning"
)

// Accumulator receives accepted edges. *spanning.Tree satisfies it.
type Accumulator interface {
	AddEdge(e core.Edge)
}

// Run calls SelectNext until StatusComplete, forwarding every accepted edge
// to acc. ctx is checked between calls; on cancellation Run returns ctx.Err()
// and the selector keeps the state reached so far.
func Run(ctx context.Context, sel *Selector, acc Accumulator) (Stats, error) {
	for {
		if err := ctx.Err(); err != nil {
			return sel.Stats(), err
		}

		res := sel.SelectNext()
		switch res.Status {
		case StatusAccepted:
			acc.AddEdge(res.Edge)
		case StatusRejected:
			// Discarded for good; ask again.
		case StatusComplete:
			return sel.Stats(), nil
		}
	}
}

// Compute inserts edges in order into a fresh Selector, runs selection to
// completion and returns the accumulated tree.
//
// Reverse duplicates are reported through the logger and OnDuplicate and do
// not fail the computation. Any other insertion error does.
//
// Complexity: O(E log E) for indexing plus the tracker cost per visited entry.
func Compute(nodeCount int, edges []core.Edge, opts ...Option) (*spanning.Tree, Stats, error) {
	opts = append([]Option{WithExpectedEdges(len(edges))}, opts...)
	sel, err := NewSelector(nodeCount, opts...)
	if err != nil {
		return nil, Stats{}, err
	}

	for _, e := range edges {
		if err := sel.InsertEdge(e.Source(), e.Destination(), e.Weight()); err != nil {
			if errors.Is(err, ErrDuplicateReverseEdge) {
				continue
			}
			return nil, sel.Stats(), err
		}
	}

	tree := spanning.NewTree()
	stats, err := Run(context.Background(), sel, tree)
	if err != nil {
		return nil, stats, err
	}

	return tree, stats, nil
}
