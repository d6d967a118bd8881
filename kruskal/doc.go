// Package kruskal drives Kruskal-style greedy edge selection over an
// undirected, weighted graph whose nodes are the integers 0..nodeCount-1.
//
// What & Why
//
//   - A spanning tree of a connected graph with N nodes has exactly N−1 edges.
//     Kruskal builds one by visiting edges from lightest to heaviest and keeping
//     every edge that does not close a cycle with the edges kept so far.
//
//   - The Selector owns the edge list and the weight index, and hands out one
//     decision per SelectNext call, so callers can watch the tree grow, stop
//     early, or feed the accepted edges wherever they like.
//
// Lifecycle
//
//  1. NewSelector(nodeCount, opts...)
//  2. InsertEdge(s, d, w) once per edge, in source order. An edge whose exact
//     reverse (d, s, w) is already present is reported with
//     ErrDuplicateReverseEdge and dropped; the run continues.
//  3. FinalizeOrder() freezes the weight index, ordered by (weight, insertion
//     index). SelectNext finalizes implicitly.
//  4. SelectNext() until it returns StatusComplete:
//
//     StatusAccepted  the edge joined the tree; forward it to the accumulator.
//     StatusRejected  the edge would close a cycle and was dropped for good; call again.
//     StatusComplete  N−1 edges were accepted or the index ran out; stop.
//
// Run and Compute wrap steps 2–4 for callers that only want the final tree.
//
// Cycle detection is delegated to a tracker.Tracker chosen with WithMethod:
// MethodPairScan (default) replays the known-pair scan, MethodUnionFind uses a
// disjoint-set forest. See package tracker for the difference.
//
// Complexity
//
//   - InsertEdge: O(log E) for the index plus O(1) reverse lookup.
//   - SelectNext: amortised O(log E) index work per visited entry, plus the
//     tracker cost (O(N) for pair scan, ≈O(α(N)) for union-find).
//
// A Selector is not safe for concurrent use and serves exactly one run.
package kruskal
