package tracker

import (
	"log/slog"
	"sort"

	"github.com/katalvlaran/spantree/core"
)

// UnionFind is a disjoint-set forest with path compression and union by rank.
//
// Nodes are created lazily on first use, so ids outside [0,nodeCount) are
// tolerated the same way PairScan tolerates them.
type UnionFind struct {
	parent   map[core.NodeID]core.NodeID
	rank     map[core.NodeID]int
	accepted map[core.Pair]struct{}
	count    int
	logger   *slog.Logger
}

// NewUnionFind returns a forest of nodeCount singleton sets.
func NewUnionFind(nodeCount int, opts ...Option) *UnionFind {
	o := resolve(opts)
	if nodeCount < 0 {
		nodeCount = 0
	}
	uf := &UnionFind{
		parent:   make(map[core.NodeID]core.NodeID, nodeCount),
		rank:     make(map[core.NodeID]int, nodeCount),
		accepted: make(map[core.Pair]struct{}),
		logger:   o.logger,
	}
	for id := core.NodeID(0); int(id) < nodeCount; id++ {
		uf.parent[id] = id
	}

	return uf
}

// Find returns the representative of u's set.
// Iterative, with path halving so deep chains never recurse.
func (uf *UnionFind) Find(u core.NodeID) core.NodeID {
	if _, ok := uf.parent[u]; !ok {
		uf.parent[u] = u
	}
	for uf.parent[u] != u {
		uf.parent[u] = uf.parent[uf.parent[u]]
		u = uf.parent[u]
	}

	return u
}

// Union merges the sets of u and v. It returns false when they were already joined.
func (uf *UnionFind) Union(u, v core.NodeID) bool {
	rootU, rootV := uf.Find(u), uf.Find(v)
	if rootU == rootV {
		return false
	}
	// Attach the shallower tree under the deeper one.
	if uf.rank[rootU] < uf.rank[rootV] {
		uf.parent[rootU] = rootV
	} else {
		uf.parent[rootV] = rootU
		if uf.rank[rootU] == uf.rank[rootV] {
			uf.rank[rootU]++
		}
	}

	return true
}

// IsPairKnown reports whether (a,b) was accepted with exactly this orientation.
func (uf *UnionFind) IsPairKnown(a, b core.NodeID) bool {
	_, ok := uf.accepted[core.Pair{From: a, To: b}]

	return ok
}

// WouldCreateCycle reports whether source and destination are already in one set.
func (uf *UnionFind) WouldCreateCycle(source, destination core.NodeID) bool {
	if uf.Find(source) != uf.Find(destination) {
		return false
	}
	uf.logger.Debug("cycle witness",
		"source", source, "destination", destination, "root", uf.Find(source))

	return true
}

// Accept joins the endpoints and records the pair.
func (uf *UnionFind) Accept(source, destination core.NodeID) {
	uf.Union(source, destination)
	uf.accepted[core.Pair{From: source, To: destination}] = struct{}{}
	uf.count++
}

// AcceptedEdgeCount returns the number of Accept calls.
func (uf *UnionFind) AcceptedEdgeCount() int { return uf.count }

// IsSpanningComplete reports whether nodeCount-1 edges were accepted.
func (uf *UnionFind) IsSpanningComplete(nodeCount int) bool {
	return complete(uf.count, nodeCount)
}

// Components groups every known node by set. Members are ascending and groups
// are ordered by their smallest member.
func (uf *UnionFind) Components() [][]core.NodeID {
	ids := make([]core.NodeID, 0, len(uf.parent))
	for id := range uf.parent {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	groups := make(map[core.NodeID]int)
	var out [][]core.NodeID
	for _, id := range ids {
		root := uf.Find(id)
		idx, ok := groups[root]
		if !ok {
			idx = len(out)
			groups[root] = idx
			out = append(out, nil)
		}
		out[idx] = append(out[idx], id)
	}

	return out
}
