// Package cli wires the spantree cobra commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/spantree/internal/config"
)

// Version is stamped at build time with -ldflags "-X ...cli.Version=v1.2.3".
var Version = "dev"

// NewRootCommand builds a fresh command tree. Flags are bound to the global
// viper instance, so callers that build more than one tree should viper.Reset
// in between.
func NewRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "spantree",
		Short: "Kruskal-style minimum spanning trees",
		Long: `spantree reads a weighted undirected graph and selects a minimum spanning
tree with a greedy Kruskal-style pass over the edges in ascending weight.

Two cycle checks are available: the pair-scan tracker (default), which keeps a
set of known node pairs and looks for a shared neighbour, and a union-find
forest, which is exact.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfgFile, _ := cmd.Flags().GetString("config")
			return config.Init(cfgFile)
		},
	}

	root.PersistentFlags().String("config", "", "config file (default .spantree.yaml)")
	root.PersistentFlags().BoolP("verbose", "v", false, "log every selection decision")
	root.PersistentFlags().String("log-level", "info", "log level: debug, info, warn, error")
	_ = viper.BindPFlag("verbose", root.PersistentFlags().Lookup("verbose"))
	_ = viper.BindPFlag("log_level", root.PersistentFlags().Lookup("log-level"))

	root.AddCommand(newSolveCommand(), newGenerateCommand(), newVersionCommand())

	return root
}

// Execute runs the root command until it finishes or the process is interrupted.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := NewRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// newLogger writes text records to w at lvl.
func newLogger(w io.Writer, lvl slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: lvl}))
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the spantree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "spantree %s\n", Version)
		},
	}
}
