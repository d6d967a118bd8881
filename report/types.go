package report

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/kruskal"
	"github.com/katalvlaran/spantree/spanning"
)

// ErrUnknownFormat indicates an unsupported report format name.
var ErrUnknownFormat = errors.New("report: unknown format")

// Format names a report encoding.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatTOML Format = "toml"
)

// ParseFormat validates a format name. The empty string means FormatText.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case "", FormatText:
		return FormatText, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	case FormatTOML:
		return FormatTOML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}

// Edge is one accepted edge as it appears in a report.
type Edge struct {
	From int64 `yaml:"from" toml:"from"`
	To   int64 `yaml:"to" toml:"to"`
	Cost int64 `yaml:"cost" toml:"cost"`
}

// Stats mirrors kruskal.Stats with encoding tags.
type Stats struct {
	Inserted   int `yaml:"inserted" toml:"inserted"`
	Duplicates int `yaml:"duplicates" toml:"duplicates"`
	Accepted   int `yaml:"accepted" toml:"accepted"`
	Rejected   int `yaml:"rejected" toml:"rejected"`
	Skipped    int `yaml:"skipped" toml:"skipped"`
}

// Report is the outcome of one run.
type Report struct {
	RunID      string `yaml:"run_id" toml:"run_id"`
	Method     string `yaml:"method" toml:"method"`
	Nodes      int    `yaml:"nodes" toml:"nodes"`
	Cost       int64  `yaml:"cost" toml:"cost"`
	Components int    `yaml:"components" toml:"components"`
	Forest     bool   `yaml:"forest" toml:"forest"`
	Spanning   bool   `yaml:"spanning" toml:"spanning"`
	Stats      Stats  `yaml:"stats" toml:"stats"`
	Edges      []Edge `yaml:"edges" toml:"edges"`
	Dropped    []Edge `yaml:"dropped,omitempty" toml:"dropped,omitempty"`
}

// Option tweaks a Report under construction.
type Option func(*Report)

// WithRunID pins the run id instead of generating a random one.
func WithRunID(id string) Option {
	return func(r *Report) { r.RunID = id }
}

// WithDropped records edges the loader refused as reverse duplicates.
func WithDropped(edges []core.Edge) Option {
	return func(r *Report) { r.Dropped = rows(edges) }
}

// New summarises a finished run. The tree is checked against nodeCount to
// fill in the shape fields; a tree that is not a forest is still reported.
func New(method string, nodeCount int, tree *spanning.Tree, stats kruskal.Stats, opts ...Option) *Report {
	shape, _ := tree.Check(nodeCount)
	r := &Report{
		RunID:      uuid.NewString(),
		Method:     method,
		Nodes:      nodeCount,
		Cost:       tree.TotalCost(),
		Components: shape.Components,
		Forest:     shape.Forest,
		Spanning:   shape.Spanning,
		Stats: Stats{
			Inserted:   stats.Inserted,
			Duplicates: stats.Duplicates,
			Accepted:   stats.Accepted,
			Rejected:   stats.Rejected,
			Skipped:    stats.Skipped,
		},
		Edges: rows(tree.Edges()),
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

func rows(edges []core.Edge) []Edge {
	out := make([]Edge, len(edges))
	for i, e := range edges {
		out[i] = Edge{From: int64(e.Source()), To: int64(e.Destination()), Cost: e.Weight()}
	}

	return out
}
