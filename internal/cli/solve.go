package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spantree/internal/config"
	"github.com/katalvlaran/spantree/kruskal"
	"github.com/katalvlaran/spantree/loader"
	"github.com/katalvlaran/spantree/metrics"
	"github.com/katalvlaran/spantree/report"
	"github.com/katalvlaran/spantree/spanning"
)

// stdinName selects standard input as the graph source.
const stdinName = "-"

// ErrNotAForest is returned by solve --verify when the accepted edges close a cycle.
var ErrNotAForest = errors.New("solve: accepted edges are not a forest")

func newSolveCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file|-]",
		Short: "Select a minimum spanning tree from a graph source",
		Long: `Reads a graph (text, YAML or TOML) from a file, or from standard input when
the argument is "-" or missing, runs edge selection to completion and prints
the accepted edges and their total cost.

The text source is whitespace-separated integers: the node count, then one
"source destination weight" triple per edge.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	flags := cmd.Flags()
	flags.String("method", kruskal.MethodPairScan, "cycle check: pairscan or unionfind")
	flags.StringP("format", "o", string(report.FormatText), "report format: text, yaml or toml")
	flags.String("input-format", "", "source format: text, yaml or toml (default: from the file extension)")
	flags.Bool("verify", false, "fail unless the accepted edges form a forest")
	flags.Bool("show-order", false, "print the weight index before selecting")
	flags.String("metrics-file", "", "write prometheus metrics to this file after each run")
	flags.BoolP("watch", "w", false, "re-solve whenever the file changes")

	_ = viper.BindPFlag("method", flags.Lookup("method"))
	_ = viper.BindPFlag("format", flags.Lookup("format"))
	_ = viper.BindPFlag("input_format", flags.Lookup("input-format"))
	_ = viper.BindPFlag("verify", flags.Lookup("verify"))
	_ = viper.BindPFlag("show_order", flags.Lookup("show-order"))
	_ = viper.BindPFlag("metrics_file", flags.Lookup("metrics-file"))

	return cmd
}

func runSolve(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	src := stdinName
	if len(args) == 1 {
		src = args[0]
	}
	watch, _ := cmd.Flags().GetBool("watch")
	if watch && src == stdinName {
		return errors.New("solve: --watch needs a file argument")
	}

	s := &solver{
		cfg:    cfg,
		logger: newLogger(cmd.ErrOrStderr(), cfg.Level()),
		out:    cmd.OutOrStdout(),
		in:     cmd.InOrStdin(),
	}
	if cfg.MetricsFile != "" {
		s.metrics = metrics.New()
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if err := s.solve(ctx, src); err != nil {
		if !watch {
			return err
		}
		s.logger.Error("solve failed", "source", src, "err", err)
	}
	if !watch {
		return nil
	}

	s.logger.Info("watching for changes", "source", src)
	return watchFile(ctx, src, func() {
		if err := s.solve(ctx, src); err != nil {
			s.logger.Error("solve failed", "source", src, "err", err)
		}
	})
}

// solver performs one complete run per call. Nothing but metrics carries over
// between calls.
type solver struct {
	cfg     config.Config
	logger  *slog.Logger
	metrics *metrics.Metrics
	out     io.Writer
	in      io.Reader
}

func (s *solver) read(src string) (*loader.Graph, error) {
	if src == stdinName {
		f := s.cfg.SourceFormat()
		if f == "" {
			f = loader.FormatText
		}
		return loader.Read(s.in, f)
	}

	return loader.ReadFile(src, s.cfg.SourceFormat())
}

func (s *solver) solve(ctx context.Context, src string) error {
	g, err := s.read(src)
	if err != nil {
		return err
	}

	method := s.cfg.Method
	opts := []kruskal.Option{
		kruskal.WithMethod(method),
		kruskal.WithLogger(s.logger),
	}
	if s.metrics != nil {
		opts = append(opts, s.metrics.Options(method)...)
	}

	start := time.Now()
	sel, dropped, err := g.Selector(opts...)
	if err != nil {
		return err
	}
	if s.cfg.ShowOrder {
		sel.FinalizeOrder()
		if err := report.WriteOrder(s.out, sel); err != nil {
			return err
		}
	}

	tree := spanning.NewTree()
	stats, err := kruskal.Run(ctx, sel, tree)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	r := report.New(method, g.NodeCount, tree, stats, report.WithDropped(dropped))
	s.logger.Info("run complete",
		"run_id", r.RunID,
		"method", method,
		"nodes", r.Nodes,
		"edges", r.Stats.Inserted,
		"accepted", r.Stats.Accepted,
		"cost", r.Cost,
		"spanning", r.Spanning,
		"elapsed", elapsed,
	)
	if !r.Spanning && r.Forest {
		s.logger.Warn("graph is not connected", "components", r.Components)
	}

	if err := r.Write(s.out, s.cfg.ReportFormat()); err != nil {
		return err
	}

	if s.metrics != nil {
		s.metrics.Observe(method, r.Cost, r.Spanning, elapsed)
		if err := s.metrics.WriteFile(s.cfg.MetricsFile); err != nil {
			return err
		}
	}

	if s.cfg.Verify && !r.Forest {
		return fmt.Errorf("%w: run %s (%d edges, %d components)", ErrNotAForest, r.RunID, len(r.Edges), r.Components)
	}

	return nil
}
