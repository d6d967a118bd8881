package kruskal

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/tracker"
)

// Sentinel errors for edge selection.
var (
	// ErrDuplicateReverseEdge is returned by InsertEdge when (d,s,w) already exists.
	// It is informational: the edge is skipped and the selector stays usable.
	ErrDuplicateReverseEdge = errors.New("kruskal: reverse edge already exists")

	// ErrInvalidNodeCount is returned when a negative node count is supplied.
	ErrInvalidNodeCount = errors.New("kruskal: node count must be non-negative")

	// ErrAlreadyFinalized is returned when edges are inserted after FinalizeOrder.
	ErrAlreadyFinalized = errors.New("kruskal: weight index already finalized")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("kruskal: invalid option supplied")
)

// MethodPairScan selects the known-pair common-neighbour scan.
const MethodPairScan = tracker.MethodPairScan

// MethodUnionFind selects the disjoint-set forest.
const MethodUnionFind = tracker.MethodUnionFind

// Status tags the outcome of a SelectNext call.
type Status int

const (
	// StatusAccepted means Result.Edge joined the tree.
	StatusAccepted Status = iota
	// StatusRejected means Result.Edge would close a cycle and was discarded.
	StatusRejected
	// StatusComplete means selection is over; Result.Edge is meaningless.
	StatusComplete
)

// String returns the lower-case status name.
func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusRejected:
		return "rejected"
	case StatusComplete:
		return "complete"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Result is the tagged outcome of one SelectNext call.
type Result struct {
	Status Status
	Edge   core.Edge
}

// Done reports whether the caller must stop calling SelectNext.
func (r Result) Done() bool { return r.Status == StatusComplete }

// Stats counts the decisions a Selector has made so far.
type Stats struct {
	Inserted   int // edges stored by InsertEdge
	Duplicates int // edges dropped as reverse duplicates
	Accepted   int
	Rejected   int
	Skipped    int // entries whose pair was already known
}

// Options configures a Selector.
type Options struct {
	// Method picks the tracker: MethodPairScan or MethodUnionFind.
	Method string

	// Logger receives the decision trail at debug level and duplicate reports at warn level.
	Logger *slog.Logger

	// ExpectedEdges pre-sizes the edge list. Zero means no hint.
	ExpectedEdges int

	// OnAccept is called for each accepted edge.
	OnAccept func(e core.Edge)

	// OnReject is called for each edge discarded as cycle-forming.
	OnReject func(e core.Edge)

	// OnSkip is called for each entry whose pair was already known.
	OnSkip func(e core.Edge)

	// OnDuplicate is called for each edge dropped by InsertEdge.
	OnDuplicate func(e core.Edge)

	// OnComplete is called once, the first time selection completes.
	OnComplete func(stats Stats)

	err error
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns pair-scan selection with a discarding logger and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Method:      MethodPairScan,
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
		OnAccept:    func(core.Edge) {},
		OnReject:    func(core.Edge) {},
		OnSkip:      func(core.Edge) {},
		OnDuplicate: func(core.Edge) {},
		OnComplete:  func(Stats) {},
	}
}

// WithMethod selects the cycle-detection strategy.
func WithMethod(m string) Option {
	return func(o *Options) { o.Method = m }
}

// WithLogger sets the structured logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithExpectedEdges pre-sizes internal storage. Negative values are an ErrOptionViolation.
func WithExpectedEdges(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: ExpectedEdges cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.ExpectedEdges = n
	}
}

// WithOnAccept registers a callback for accepted edges.
// Hooks registered more than once run in registration order.
func WithOnAccept(fn func(e core.Edge)) Option {
	return func(o *Options) { o.OnAccept = chain(o.OnAccept, fn) }
}

// WithOnReject registers a callback for cycle rejections.
func WithOnReject(fn func(e core.Edge)) Option {
	return func(o *Options) { o.OnReject = chain(o.OnReject, fn) }
}

// WithOnSkip registers a callback for entries skipped as already known.
func WithOnSkip(fn func(e core.Edge)) Option {
	return func(o *Options) { o.OnSkip = chain(o.OnSkip, fn) }
}

// WithOnDuplicate registers a callback for reverse-duplicate insertions.
func WithOnDuplicate(fn func(e core.Edge)) Option {
	return func(o *Options) { o.OnDuplicate = chain(o.OnDuplicate, fn) }
}

// WithOnComplete registers a callback fired once when selection completes.
func WithOnComplete(fn func(stats Stats)) Option {
	return func(o *Options) { o.OnComplete = chain(o.OnComplete, fn) }
}

func chain[T any](prev, next func(T)) func(T) {
	switch {
	case next == nil:
		return prev
	case prev == nil:
		return next
	}

	return func(v T) {
		prev(v)
		next(v)
	}
}
