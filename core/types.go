package core

import "fmt"

// NodeID identifies a node inside [0, nodeCount).
type NodeID int

// Unset is the value every Edge field takes when left unspecified.
const Unset = -1

// Edge is an immutable weighted connection between two nodes.
//
// Equality compares all three fields exactly, so Edge is usable as a map key.
type Edge struct {
	source      NodeID
	destination NodeID
	weight      int64
}

// NewEdge returns the edge source→destination with the given weight.
func NewEdge(source, destination NodeID, weight int64) Edge {
	return Edge{source: source, destination: destination, weight: weight}
}

// SentinelEdge returns the (-1,-1,-1) edge.
func SentinelEdge() Edge {
	return Edge{source: Unset, destination: Unset, weight: Unset}
}

// Source returns the node the edge was inserted from.
func (e Edge) Source() NodeID { return e.source }

// Destination returns the node the edge was inserted to.
func (e Edge) Destination() NodeID { return e.destination }

// Weight returns the edge cost.
func (e Edge) Weight() int64 { return e.weight }

// Equal reports whether both edges have identical source, destination and weight.
func (e Edge) Equal(other Edge) bool {
	return e.source == other.source && e.destination == other.destination && e.weight == other.weight
}

// Reverse returns the same link with swapped orientation and equal weight.
func (e Edge) Reverse() Edge {
	return Edge{source: e.destination, destination: e.source, weight: e.weight}
}

// Pair returns the directed pair (Source, Destination).
func (e Edge) Pair() Pair {
	return Pair{From: e.source, To: e.destination}
}

// IsSentinel reports whether e is the (-1,-1,-1) marker.
func (e Edge) IsSentinel() bool {
	return e.Equal(SentinelEdge())
}

// IsLoop reports whether both endpoints are the same node.
func (e Edge) IsLoop() bool {
	return e.source == e.destination
}

// String renders the edge as "s-d(w)".
func (e Edge) String() string {
	return fmt.Sprintf("%d-%d(%d)", e.source, e.destination, e.weight)
}

// Pair is an ordered (From, To) tuple. Pair{a,b} and Pair{b,a} are distinct.
type Pair struct {
	From NodeID
	To   NodeID
}

// String renders the pair as "(a,b)".
func (p Pair) String() string {
	return fmt.Sprintf("(%d,%d)", p.From, p.To)
}
