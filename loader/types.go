package loader

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/core"
)

// Sentinel errors for graph loading.
var (
	// ErrMalformedInput indicates a source that could not be parsed as a graph.
	ErrMalformedInput = errors.New("loader: could not parse graph")

	// ErrUnknownFormat indicates an unsupported source format name.
	ErrUnknownFormat = errors.New("loader: unknown format")
)

// Format names a source encoding.
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

// FormatFromPath guesses the format from a file extension; unknown extensions are text.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	case ".toml":
		return FormatTOML
	default:
		return FormatText
	}
}

// Graph is a fully parsed source: a node count and edges in source order.
type Graph struct {
	NodeCount int
	Edges     []core.Edge
}

// document is the structured (YAML/TOML) shape of a graph.
type document struct {
	Nodes *int     `yaml:"nodes" toml:"nodes"`
	Edges []triple `yaml:"edges" toml:"edges"`
}

// triple is one [source, destination, weight] row.
type triple []int64

// MarshalYAML keeps each row on one line: [0, 1, 5].
func (t triple) MarshalYAML() (interface{}, error) {
	n := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, v := range t {
		n.Content = append(n.Content, &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: strconv.FormatInt(v, 10)})
	}

	return n, nil
}

func (d document) graph() (*Graph, error) {
	if d.Nodes == nil {
		return nil, fmt.Errorf("%w: missing node count", ErrMalformedInput)
	}
	if *d.Nodes < 0 {
		return nil, fmt.Errorf("%w: negative node count %d", ErrMalformedInput, *d.Nodes)
	}
	g := &Graph{NodeCount: *d.Nodes, Edges: make([]core.Edge, 0, len(d.Edges))}
	for i, row := range d.Edges {
		if len(row) != 3 {
			return nil, fmt.Errorf("%w: edge %d has %d fields, want 3", ErrMalformedInput, i, len(row))
		}
		g.Edges = append(g.Edges, core.NewEdge(core.NodeID(row[0]), core.NodeID(row[1]), row[2]))
	}

	return g, nil
}

func fromGraph(g *Graph) document {
	n := g.NodeCount
	d := document{Nodes: &n, Edges: make([]triple, len(g.Edges))}
	for i, e := range g.Edges {
		d.Edges[i] = triple{int64(e.Source()), int64(e.Destination()), e.Weight()}
	}

	return d
}
