package spanning

import "github.com/katalvlaran/spantree/core"

// Tree is an ordered set of accepted edges plus their running cost.
// It only grows.
type Tree struct {
	edges []core.Edge
	cost  int64
}

// NewTree returns an empty tree.
func NewTree() *Tree {
	return &Tree{}
}

// AddEdge appends e and adds its weight to the total cost.
func (t *Tree) AddEdge(e core.Edge) {
	t.edges = append(t.edges, e)
	t.cost += e.Weight()
}

// TotalCost returns the sum of the weights of every added edge.
// Weights are not validated, so the sum wraps like any int64 addition
// when it leaves the int64 range.
func (t *Tree) TotalCost() int64 { return t.cost }

// Edges returns the added edges in acceptance order.
func (t *Tree) Edges() []core.Edge {
	out := make([]core.Edge, len(t.edges))
	copy(out, t.edges)

	return out
}

// Len returns the number of edges.
func (t *Tree) Len() int { return len(t.edges) }
