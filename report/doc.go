// Package report renders the outcome of a spanning tree run.
//
// A Report captures everything a caller may want to keep from one run: a
// unique run id, the tracker method, the node count, the accepted edges in
// acceptance order, their total cost, the decision counters and the shape of
// the result (components, forest, spanning).
//
// Three encodings are available:
//
//	text   the classic console layout
//	yaml   gopkg.in/yaml.v3
//	toml   github.com/pelletier/go-toml/v2
//
// The text layout is:
//
//	Minimum Spanning Tree and its components:
//	From 0, To: 2, Cost: 1
//	From 0, To: 1, Cost: 5
//	Cost of the Spanning Tree : 6
//
// WriteOrder prints the finalized traversal order in the companion layout
// "Edge[i] => Source : s, Destination: d, Weight: w".
package report
