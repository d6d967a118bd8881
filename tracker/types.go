package tracker

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/spantree/core"
)

// ErrUnknownMethod indicates a tracker method name outside MethodPairScan and MethodUnionFind.
var ErrUnknownMethod = errors.New("tracker: unknown method")

// MethodPairScan selects the known-pair common-neighbour scan.
const MethodPairScan = "pairscan"

// MethodUnionFind selects the disjoint-set forest.
const MethodUnionFind = "unionfind"

// Tracker maintains connectivity facts for one selection run.
type Tracker interface {
	// IsPairKnown reports whether (a,b) is recorded exactly as given.
	IsPairKnown(a, b core.NodeID) bool

	// WouldCreateCycle reports whether accepting (source,destination) closes a cycle.
	WouldCreateCycle(source, destination core.NodeID) bool

	// Accept records (source,destination) as a tree edge.
	Accept(source, destination core.NodeID)

	// AcceptedEdgeCount returns how many edges Accept has recorded.
	AcceptedEdgeCount() int

	// IsSpanningComplete reports whether nodeCount-1 edges were accepted.
	IsSpanningComplete(nodeCount int) bool
}

// Option configures a tracker.
type Option func(*options)

type options struct {
	logger *slog.Logger
}

// WithLogger routes augmentation and cycle-witness records to l at debug level.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

func resolve(opts []Option) options {
	o := options{logger: slog.New(slog.NewTextHandler(io.Discard, nil))}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// New builds the tracker named by method for a graph of nodeCount nodes.
func New(method string, nodeCount int, opts ...Option) (Tracker, error) {
	switch method {
	case MethodPairScan, "":
		return NewPairScan(nodeCount, opts...), nil
	case MethodUnionFind:
		return NewUnionFind(nodeCount, opts...), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
}

// complete is shared by both trackers.
func complete(accepted, nodeCount int) bool {
	return accepted == nodeCount-1
}
