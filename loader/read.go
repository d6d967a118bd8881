package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/spantree/core"
)

// Read parses r in the given format.
func Read(r io.Reader, f Format) (*Graph, error) {
	switch f {
	case FormatText, "":
		return ReadText(r)
	case FormatYAML:
		return ReadYAML(r)
	case FormatTOML:
		return ReadTOML(r)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// ReadFile opens path and parses it. An empty format is guessed from the extension.
func ReadFile(path string, f Format) (*Graph, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loader: open %s: %w", path, err)
	}
	defer file.Close()

	if f == "" {
		f = FormatFromPath(path)
	}
	g, err := Read(file, f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return g, nil
}

// ReadText parses the whitespace-separated integer format.
//
// Errors (all ErrMalformedInput):
//   - no tokens at all;
//   - a non-integer token;
//   - a negative node count;
//   - a trailing triple with fewer than three tokens.
func ReadText(r io.Reader) (*Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	var (
		tokens []string
		pos    int
	)
	for sc.Scan() {
		tokens = append(tokens, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	if len(tokens) == 0 {
		return nil, fmt.Errorf("%w: empty source", ErrMalformedInput)
	}

	next := func() (int64, error) {
		tok := tokens[pos]
		pos++
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: token %d %q is not an integer", ErrMalformedInput, pos, tok)
		}
		return v, nil
	}

	nodes, err := next()
	if err != nil {
		return nil, err
	}
	if nodes < 0 {
		return nil, fmt.Errorf("%w: negative node count %d", ErrMalformedInput, nodes)
	}
	if rest := len(tokens) - pos; rest%3 != 0 {
		return nil, fmt.Errorf("%w: %d trailing tokens do not form an edge", ErrMalformedInput, rest%3)
	}

	g := &Graph{NodeCount: int(nodes), Edges: make([]core.Edge, 0, (len(tokens)-pos)/3)}
	for pos < len(tokens) {
		var triple [3]int64
		for i := range triple {
			if triple[i], err = next(); err != nil {
				return nil, err
			}
		}
		g.Edges = append(g.Edges, core.NewEdge(core.NodeID(triple[0]), core.NodeID(triple[1]), triple[2]))
	}

	return g, nil
}

// ReadYAML parses {nodes: N, edges: [[s,d,w], ...]}. Unknown keys are rejected.
func ReadYAML(r io.Reader) (*Graph, error) {
	var doc document
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return doc.graph()
}

// ReadTOML parses nodes = N / edges = [[s,d,w], ...]. Unknown keys are rejected.
func ReadTOML(r io.Reader) (*Graph, error) {
	var doc document
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	return doc.graph()
}
