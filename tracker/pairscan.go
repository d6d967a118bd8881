package tracker

import (
	"log/slog"
	"sort"

	"github.com/katalvlaran/spantree/core"
)

// Rule names the condition that made WouldCreateCycle fire.
type Rule int

const (
	// RuleNone means no cycle was detected.
	RuleNone Rule = iota
	// RuleSharedDestination means (source,k) and (destination,k) are both known.
	RuleSharedDestination
	// RuleSharedSource means (k,source) and (k,destination) are both known.
	RuleSharedSource
)

// String returns a short label suitable for log attributes.
func (r Rule) String() string {
	switch r {
	case RuleSharedDestination:
		return "shared-destination"
	case RuleSharedSource:
		return "shared-source"
	default:
		return "none"
	}
}

// PairScan tracks connectivity as a set of directed known pairs.
type PairScan struct {
	nodeCount int
	pairs     map[core.Pair]struct{}
	order     []core.Pair // insertion order of pairs, used for snapshots
	touched   map[core.NodeID]struct{}
	accepted  int
	logger    *slog.Logger
}

// NewPairScan returns an empty pair tracker for nodeCount nodes.
func NewPairScan(nodeCount int, opts ...Option) *PairScan {
	o := resolve(opts)

	return &PairScan{
		nodeCount: nodeCount,
		pairs:     make(map[core.Pair]struct{}),
		touched:   make(map[core.NodeID]struct{}),
		logger:    o.logger,
	}
}

// IsPairKnown reports whether (a,b) is in the pair set. (b,a) does not count.
func (t *PairScan) IsPairKnown(a, b core.NodeID) bool {
	_, ok := t.pairs[core.Pair{From: a, To: b}]

	return ok
}

// WouldCreateCycle reports whether source and destination share a recorded
// neighbour k in [0,nodeCount), either as common destination or common source.
// Complexity: O(nodeCount).
func (t *PairScan) WouldCreateCycle(source, destination core.NodeID) bool {
	k, rule := t.Witness(source, destination)
	if rule == RuleNone {
		return false
	}
	t.logger.Debug("cycle witness",
		"source", source, "destination", destination, "via", k, "rule", rule.String())

	return true
}

// Witness returns the first node k and rule that make (source,destination)
// cycle-forming, or (Unset, RuleNone) when there is none.
// Common destinations are scanned before common sources.
func (t *PairScan) Witness(source, destination core.NodeID) (core.NodeID, Rule) {
	for k := core.NodeID(0); int(k) < t.nodeCount; k++ {
		if t.IsPairKnown(source, k) && t.IsPairKnown(destination, k) {
			return k, RuleSharedDestination
		}
	}
	for k := core.NodeID(0); int(k) < t.nodeCount; k++ {
		if t.IsPairKnown(k, source) && t.IsPairKnown(k, destination) {
			return k, RuleSharedSource
		}
	}

	return core.Unset, RuleNone
}

// Accept records (source,destination), marks both nodes as touched, counts
// the edge and propagates the new connectivity.
func (t *PairScan) Accept(source, destination core.NodeID) {
	t.record(core.Pair{From: source, To: destination})
	t.accepted++ // augmentation never counts
	t.Propagate(source, destination)
}

// Propagate runs one augmentation pass for the accepted pair (source,destination)
// over the pairs known when the call starts:
//
//	(x,source)      with x != destination  adds (x,destination)
//	(destination,y) with y != source       adds (source,y)
//
// Pairs added by this pass are not revisited.
func (t *PairScan) Propagate(source, destination core.NodeID) {
	snapshot := make([]core.Pair, len(t.order))
	copy(snapshot, t.order)

	for _, p := range snapshot {
		if p.To == source && p.From != destination {
			t.augment(core.Pair{From: p.From, To: destination})
		}
		if p.From == destination && p.To != source {
			t.augment(core.Pair{From: source, To: p.To})
		}
	}
}

func (t *PairScan) augment(p core.Pair) {
	if t.IsPairKnown(p.From, p.To) {
		return
	}
	t.logger.Debug("augment known pairs", "pair", p.String())
	t.record(p)
}

func (t *PairScan) record(p core.Pair) {
	t.touched[p.From] = struct{}{}
	t.touched[p.To] = struct{}{}
	if _, ok := t.pairs[p]; ok {
		return
	}
	t.pairs[p] = struct{}{}
	t.order = append(t.order, p)
}

// AcceptedEdgeCount returns the number of Accept calls.
func (t *PairScan) AcceptedEdgeCount() int { return t.accepted }

// IsSpanningComplete reports whether nodeCount-1 edges were accepted.
func (t *PairScan) IsSpanningComplete(nodeCount int) bool {
	return complete(t.accepted, nodeCount)
}

// Pairs returns the known pairs in the order they were recorded.
func (t *PairScan) Pairs() []core.Pair {
	out := make([]core.Pair, len(t.order))
	copy(out, t.order)

	return out
}

// PairCount returns the size of the pair set.
func (t *PairScan) PairCount() int { return len(t.order) }

// TouchedNodes returns every node that appears in a known pair, ascending.
func (t *PairScan) TouchedNodes() []core.NodeID {
	out := make([]core.NodeID, 0, len(t.touched))
	for id := range t.touched {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
