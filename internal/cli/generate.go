package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/spantree/builder"
	"github.com/katalvlaran/spantree/loader"
)

// shapes maps --shape values to constructors.
var shapes = map[string]func(n int, p float64) builder.Constructor{
	"path":      func(n int, _ float64) builder.Constructor { return builder.Path(n) },
	"cycle":     func(n int, _ float64) builder.Constructor { return builder.Cycle(n) },
	"star":      func(n int, _ float64) builder.Constructor { return builder.Star(n) },
	"complete":  func(n int, _ float64) builder.Constructor { return builder.Complete(n) },
	"random":    builder.RandomSparse,
	"connected": builder.RandomConnected,
}

func newGenerateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Print a generated graph source",
		Long: `Generates a weighted graph and prints it in a format solve can read.

Shapes: path, cycle, star, complete, random (each pair kept with probability
--p) and connected (a path backbone plus random chords).`,
		Args: cobra.NoArgs,
		RunE: runGenerate,
	}

	flags := cmd.Flags()
	flags.String("shape", "connected", "graph shape")
	flags.Int("nodes", 8, "number of nodes")
	flags.Float64("p", 0.3, "edge probability for random shapes")
	flags.Int64("seed", 1, "random seed")
	flags.Int64("min-weight", 1, "smallest edge weight")
	flags.Int64("max-weight", 20, "largest edge weight")
	flags.Float64("reverse", 0, "probability of flipping each edge orientation")
	flags.Bool("shuffle", false, "shuffle the edge order")
	flags.StringP("format", "o", string(loader.FormatText), "output format: text, yaml or toml")

	return cmd
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	flags := cmd.Flags()
	shape, _ := flags.GetString("shape")
	nodes, _ := flags.GetInt("nodes")
	p, _ := flags.GetFloat64("p")
	seed, _ := flags.GetInt64("seed")
	lo, _ := flags.GetInt64("min-weight")
	hi, _ := flags.GetInt64("max-weight")
	reverse, _ := flags.GetFloat64("reverse")
	shuffle, _ := flags.GetBool("shuffle")
	name, _ := flags.GetString("format")

	ctor, ok := shapes[shape]
	if !ok {
		return fmt.Errorf("generate: unknown shape %q", shape)
	}
	format, err := loader.ParseFormat(name)
	if err != nil {
		return err
	}
	if lo < 0 || hi < lo {
		return fmt.Errorf("generate: weight range [%d,%d] is empty or negative", lo, hi)
	}
	if reverse < 0 || reverse > 1 {
		return fmt.Errorf("generate: --reverse %g not in [0,1]", reverse)
	}

	opts := []builder.BuilderOption{
		builder.WithSeed(seed),
		builder.WithUniformWeight(lo, hi),
		builder.WithReversal(reverse),
	}
	if shuffle {
		opts = append(opts, builder.WithShuffle())
	}

	g, err := builder.BuildGraph(opts, ctor(nodes, p))
	if err != nil {
		return err
	}

	return g.Write(cmd.OutOrStdout(), format)
}
