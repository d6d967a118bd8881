package kruskal

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/tracker"
)

// Selector owns the loaded edges and hands out Kruskal decisions one at a time.
type Selector struct {
	nodeCount int
	edges     []core.Edge            // insertion order; Entry.Index points here
	present   map[core.Edge]struct{} // every stored edge, for reverse lookups
	index     *WeightIndex
	tracker   tracker.Tracker
	opts      Options
	stats     Stats
	finalized bool
	completed bool
}

// NewSelector prepares selection for a graph of nodeCount nodes.
//
// Errors:
//   - ErrInvalidNodeCount if nodeCount < 0.
//   - ErrOptionViolation if an option was invalid.
//   - tracker.ErrUnknownMethod (wrapped) for an unknown Method.
func NewSelector(nodeCount int, opts ...Option) (*Selector, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if nodeCount < 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidNodeCount, nodeCount)
	}

	tr, err := tracker.New(o.Method, nodeCount, tracker.WithLogger(o.Logger))
	if err != nil {
		return nil, fmt.Errorf("kruskal: %w", err)
	}

	return &Selector{
		nodeCount: nodeCount,
		edges:     make([]core.Edge, 0, o.ExpectedEdges),
		present:   make(map[core.Edge]struct{}, o.ExpectedEdges),
		index:     NewWeightIndex(),
		tracker:   tr,
		opts:      o,
	}, nil
}

// InsertEdge stores source→destination with weight w.
//
// When (destination, source, w) is already stored the edge is dropped and
// ErrDuplicateReverseEdge is returned; the selector remains usable. Only the
// exact reverse with the same weight is checked, so the same pair with another
// weight, or the same orientation twice, is stored.
func (s *Selector) InsertEdge(source, destination core.NodeID, w int64) error {
	if s.finalized {
		return ErrAlreadyFinalized
	}

	e := core.NewEdge(source, destination, w)
	if _, dup := s.present[e.Reverse()]; dup {
		s.stats.Duplicates++
		s.opts.Logger.Warn("cannot insert edge, reverse already exists",
			"edge", e.Pair().String(), "existing", e.Reverse().Pair().String(), "weight", w)
		s.opts.OnDuplicate(e)

		return fmt.Errorf("%w: %s", ErrDuplicateReverseEdge, e)
	}

	s.index.Insert(Entry{Weight: w, Index: len(s.edges)})
	s.edges = append(s.edges, e)
	s.present[e] = struct{}{}
	s.stats.Inserted++

	return nil
}

// FinalizeOrder freezes the weight index. Further InsertEdge calls fail.
// Calling it more than once is a no-op.
func (s *Selector) FinalizeOrder() {
	if s.finalized {
		return
	}
	s.finalized = true
	s.opts.Logger.Debug("weight index finalized", "edges", len(s.edges), "nodes", s.nodeCount)
}

// SelectNext visits the remaining weight index entries in ascending order and
// returns the first decision:
//
//  1. nodeCount-1 edges already accepted      → StatusComplete, no side effect.
//  2. the entry's pair is already known       → skip, keep going.
//  3. the entry would close a cycle           → remove it, StatusRejected.
//  4. otherwise                               → accept it, StatusAccepted.
//
// Running out of entries also yields StatusComplete.
func (s *Selector) SelectNext() Result {
	s.FinalizeOrder()

	for {
		if s.tracker.AcceptedEdgeCount() == s.nodeCount-1 {
			s.opts.Logger.Debug("spanning tree complete, terminating",
				"accepted", s.tracker.AcceptedEdgeCount())
			return s.complete()
		}

		entry, ok := s.index.Next()
		if !ok {
			s.opts.Logger.Debug("weight index exhausted, terminating",
				"accepted", s.tracker.AcceptedEdgeCount(), "want", s.nodeCount-1)
			return s.complete()
		}

		e := s.edges[entry.Index]
		src, dst := e.Source(), e.Destination()
		s.opts.Logger.Debug("processing edge", "edge", e.Pair().String(), "weight", e.Weight())

		if s.tracker.IsPairKnown(src, dst) {
			s.index.Advance(entry)
			s.stats.Skipped++
			s.opts.Logger.Debug("edge already known, skipping", "edge", e.Pair().String())
			s.opts.OnSkip(e)
			continue
		}

		if s.tracker.WouldCreateCycle(src, dst) {
			s.index.Remove(entry)
			s.index.Advance(entry)
			s.stats.Rejected++
			s.opts.Logger.Debug("edge would create a cycle, rejecting", "edge", e.Pair().String())
			s.opts.OnReject(e)

			return Result{Status: StatusRejected, Edge: e}
		}

		s.tracker.Accept(src, dst)
		s.index.Advance(entry)
		s.stats.Accepted++
		s.opts.Logger.Debug("edge accepted", "edge", e.Pair().String(), "weight", e.Weight())
		s.opts.OnAccept(e)

		return Result{Status: StatusAccepted, Edge: e}
	}
}

func (s *Selector) complete() Result {
	if !s.completed {
		s.completed = true
		s.opts.OnComplete(s.stats)
	}

	return Result{Status: StatusComplete}
}

// NodeCount returns the declared number of nodes.
func (s *Selector) NodeCount() int { return s.nodeCount }

// Method returns the tracker method in use.
func (s *Selector) Method() string {
	if s.opts.Method == "" {
		return MethodPairScan
	}

	return s.opts.Method
}

// Edges returns the stored edges in insertion order.
func (s *Selector) Edges() []core.Edge {
	out := make([]core.Edge, len(s.edges))
	copy(out, s.edges)

	return out
}

// Order returns every edge still in the weight index, in traversal order.
func (s *Selector) Order() []core.Edge {
	return s.resolve(s.index.Entries())
}

// Entries returns the weight index itself, in traversal order.
func (s *Selector) Entries() []Entry {
	return s.index.Entries()
}

// Remaining returns the edges not yet visited, in traversal order.
func (s *Selector) Remaining() []core.Edge {
	return s.resolve(s.index.Pending())
}

func (s *Selector) resolve(entries []Entry) []core.Edge {
	out := make([]core.Edge, len(entries))
	for i, en := range entries {
		out[i] = s.edges[en.Index]
	}

	return out
}

// Tracker exposes the connectivity tracker for inspection.
func (s *Selector) Tracker() tracker.Tracker { return s.tracker }

// Stats returns the decision counters so far.
func (s *Selector) Stats() Stats { return s.stats }

// Logger returns the logger the selector writes to.
func (s *Selector) Logger() *slog.Logger { return s.opts.Logger }
