package loader

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Write encodes g in the given format; the output reads back with Read.
func (g *Graph) Write(w io.Writer, f Format) error {
	switch f {
	case FormatText, "":
		return g.writeText(w)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(fromGraph(g)); err != nil {
			return fmt.Errorf("loader: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(fromGraph(g)); err != nil {
			return fmt.Errorf("loader: encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// writeText emits the node count on the first line and one triple per line.
func (g *Graph) writeText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, g.NodeCount)
	for _, e := range g.Edges {
		fmt.Fprintf(bw, "%d %d %d\n", e.Source(), e.Destination(), e.Weight())
	}

	return bw.Flush()
}
