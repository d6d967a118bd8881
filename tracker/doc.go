// Package tracker answers the one question Kruskal's algorithm keeps asking:
// would accepting edge (u,v) close a cycle in the forest built so far?
//
// Two implementations satisfy the Tracker interface.
//
// PairScan (MethodPairScan, the default) records connectivity as a set of
// directed "known pairs". Accepting (s,d) records (s,d) and then runs one
// propagation pass over the pairs known at that moment:
//
//	(x,s) known, x != d  ⇒  record (x,d)
//	(d,y) known, y != s  ⇒  record (s,y)
//
// A candidate (s,d) is reported as cycle-forming when some node k is a common
// destination (s,k),(d,k) or a common source (k,s),(k,d) in the pair set.
// The check costs O(nodeCount) per candidate. Because propagation is a single
// pass and pairs are orientation-sensitive, the pair set is not a full
// transitive closure. Every recorded pair joins two connected nodes, so a
// reported cycle is always real, but a cycle can go unreported: the reverse
// orientation of a propagated pair, or a chain whose closure was never
// propagated, slips through. That gap is part of the contract and is pinned
// by tests.
//
// UnionFind (MethodUnionFind) is the textbook disjoint-set forest with path
// compression and union by rank. It answers the same questions exactly and is
// the validated alternative when a true minimum spanning tree is required.
//
// Neither implementation is safe for concurrent use.
package tracker
