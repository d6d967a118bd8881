package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/core"
	"github.com/katalvlaran/spantree/kruskal"
)

// Write encodes r in format f.
func (r *Report) Write(w io.Writer, f Format) error {
	switch f {
	case "", FormatText:
		return r.WriteText(w)
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(r); err != nil {
			return fmt.Errorf("report: encode yaml: %w", err)
		}
		return enc.Close()
	case FormatTOML:
		if err := toml.NewEncoder(w).Encode(r); err != nil {
			return fmt.Errorf("report: encode toml: %w", err)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteText prints the accepted edges and the total cost in the console layout.
func (r *Report) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, "Minimum Spanning Tree and its components:")
	for _, e := range r.Edges {
		fmt.Fprintf(bw, "From %d, To: %d, Cost: %d\n", e.From, e.To, e.Cost)
	}
	fmt.Fprintf(bw, "Cost of the Spanning Tree : %d\n", r.Cost)

	return bw.Flush()
}

// Lister exposes stored edges and the weight index. *kruskal.Selector satisfies it.
type Lister interface {
	Edges() []core.Edge
	Entries() []kruskal.Entry
}

// WriteOrder prints the weight index of sel, one line per entry.
func WriteOrder(w io.Writer, sel Lister) error {
	edges := sel.Edges()
	bw := bufio.NewWriter(w)
	for _, en := range sel.Entries() {
		e := edges[en.Index]
		fmt.Fprintf(bw, "Edge[%d] => Source : %d, Destination: %d, Weight: %d\n",
			en.Index, e.Source(), e.Destination(), e.Weight())
	}

	return bw.Flush()
}
