package spanning

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/spantree/core"
)

// ErrCycle indicates that the checked edges do not form a forest.
var ErrCycle = errors.New("spanning: edges contain a cycle")

// Shape summarises the structure of a set of edges over nodeCount nodes.
type Shape struct {
	Nodes      int  // declared nodes plus any out-of-range endpoint
	Edges      int  // edges checked
	Components int  // connected components, isolated nodes included
	Forest     bool // no cycles: Edges == Nodes - Components
	Spanning   bool // a forest with exactly one component
}

// Check builds an undirected gonum graph from the tree edges and reports its shape.
// It returns ErrCycle (with the shape filled in) when the edges are not a forest.
func (t *Tree) Check(nodeCount int) (Shape, error) {
	return CheckEdges(nodeCount, t.edges)
}

// CheckEdges is Check for an arbitrary edge slice.
func CheckEdges(nodeCount int, edges []core.Edge) (Shape, error) {
	g := simple.NewUndirectedGraph()
	for id := 0; id < nodeCount; id++ {
		g.AddNode(simple.Node(id))
	}

	// gonum's simple graph folds parallel edges and refuses loops, so both
	// are detected here: either one closes a cycle on its own.
	seen := make(map[core.Pair]struct{}, len(edges))
	closed := false
	for _, e := range edges {
		u, v := e.Source(), e.Destination()
		ensureNode(g, u)
		ensureNode(g, v)
		if u == v {
			closed = true
			continue
		}
		key := core.Pair{From: min(u, v), To: max(u, v)}
		if _, dup := seen[key]; dup {
			closed = true
			continue
		}
		seen[key] = struct{}{}
		g.SetEdge(g.NewEdge(simple.Node(u), simple.Node(v)))
	}

	nodes := g.Nodes().Len()
	components := len(topo.ConnectedComponents(g))
	shape := Shape{
		Nodes:      nodes,
		Edges:      len(edges),
		Components: components,
	}
	shape.Forest = !closed && shape.Edges == nodes-components
	shape.Spanning = shape.Forest && components == 1

	if !shape.Forest {
		return shape, fmt.Errorf("%w: %d edges over %d nodes in %d components",
			ErrCycle, shape.Edges, nodes, components)
	}

	return shape, nil
}

func ensureNode(g *simple.UndirectedGraph, id core.NodeID) {
	if g.Node(int64(id)) == nil {
		g.AddNode(simple.Node(id))
	}
}
