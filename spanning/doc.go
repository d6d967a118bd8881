// Package spanning accumulates the edges a selection run accepts and reports
// the resulting tree and its cost.
//
// Tree trusts its caller: AddEdge performs no validation, so only accepted,
// non-sentinel edges should reach it. Check inspects a finished tree with
// gonum's graph toolkit and reports whether the edges form a forest and
// whether that forest spans every node.
package spanning
