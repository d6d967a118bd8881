package loader

import (
	"errors"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/kruskal"
)

// Inserter accepts edges one at a time. *kruskal.Selector satisfies it.
type Inserter interface {
	InsertEdge(source, destination core.NodeID, w int64) error
}

// Load calls InsertEdge once per edge in source order. Reverse duplicates are
// collected and returned; any other insertion error stops loading.
func (g *Graph) Load(dst Inserter) ([]core.Edge, error) {
	var dropped []core.Edge
	for _, e := range g.Edges {
		err := dst.InsertEdge(e.Source(), e.Destination(), e.Weight())
		switch {
		case err == nil:
		case errors.Is(err, kruskal.ErrDuplicateReverseEdge):
			dropped = append(dropped, e)
		default:
			return dropped, err
		}
	}

	return dropped, nil
}

// Selector builds a kruskal.Selector sized for g and loads every edge into it.
func (g *Graph) Selector(opts ...kruskal.Option) (*kruskal.Selector, []core.Edge, error) {
	opts = append([]kruskal.Option{kruskal.WithExpectedEdges(len(g.Edges))}, opts...)
	sel, err := kruskal.NewSelector(g.NodeCount, opts...)
	if err != nil {
		return nil, nil, err
	}
	dropped, err := g.Load(sel)
	if err != nil {
		return nil, dropped, err
	}

	return sel, dropped, nil
}
