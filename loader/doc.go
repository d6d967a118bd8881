// Package loader reads a graph description and feeds it to a kruskal.Selector.
//
// Three source formats are understood:
//
//	text  whitespace-separated integers: the node count, then one
//	      "source destination weight" triple per edge until end of data
//	yaml  {nodes: N, edges: [[s, d, w], ...]}
//	toml  nodes = N / edges = [[s, d, w], ...]
//
// Parsing is all-or-nothing. Any malformed source yields ErrMalformedInput
// and no Graph, so a selector is never fed a partially loaded graph. Node ids
// are not checked against the node count and weights may be negative.
package loader
