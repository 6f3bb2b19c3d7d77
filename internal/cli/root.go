// Package cli implements the diveknn command tree.
package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"go-diveknn/internal/config"
)

// version is set via -ldflags at build time.
var version = "(devel)"

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "diveknn",
		Short:         "k-nearest-neighbours classification of dive profiles",
		Long:          "diveknn classifies dive records by their depth and temperature statistics and measures accuracy with leave-one-out cross-validation.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().String("config", "", "Path to a YAML run configuration")
	root.PersistentFlags().BoolP("verbose", "v", false, "Log debug output to stderr")

	root.AddCommand(newEvaluateCmd())
	root.AddCommand(newSweepCmd())
	root.AddCommand(newClassifyCmd())
	root.AddCommand(newVersionCmd())
	return root
}

// Execute runs the command tree.
func Execute(ctx context.Context) error {
	return NewRootCmd().ExecuteContext(ctx)
}

// addRunFlags registers the flags shared by every command that builds a classifier.
func addRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("k", "k", 0, "Number of neighbours that vote")
	cmd.Flags().String("metric", "", "Distance metric (temperature|all|scaled|scaled-all)")
	cmd.Flags().String("tie-break", "", "Tie-break policy (first|random|drop-farthest)")
	cmd.Flags().Int64("seed", 0, "Seed for the random tie-break policy")
	cmd.Flags().Int("workers", 0, "Goroutines evaluating records")
}

// resolveConfig loads --config (if any) and applies flags the user set.
// Flags take precedence over the file, the file over defaults.
func resolveConfig(cmd *cobra.Command, args []string) (config.Config, error) {
	cfg := config.Default()
	if p, _ := cmd.Flags().GetString("config"); p != "" {
		loaded, err := config.Load(p)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	if len(args) > 0 {
		cfg.Data = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("k") {
		cfg.K, _ = flags.GetInt("k")
	}
	if flags.Changed("metric") {
		cfg.Metric, _ = flags.GetString("metric")
	}
	if flags.Changed("tie-break") {
		cfg.TieBreak, _ = flags.GetString("tie-break")
	}
	if flags.Changed("seed") {
		cfg.Seed, _ = flags.GetInt64("seed")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if os.Getenv("NO_COLOR") != "" {
		cfg.Report.Color = false
	}
	if flags.Lookup("no-color") != nil && flags.Changed("no-color") {
		noColor, _ := flags.GetBool("no-color")
		cfg.Report.Color = !noColor
	}
	if flags.Lookup("confusion") != nil && flags.Changed("confusion") {
		cfg.Report.Confusion, _ = flags.GetBool("confusion")
	}
	if flags.Lookup("heatmap") != nil && flags.Changed("heatmap") {
		cfg.Report.Heatmap, _ = flags.GetString("heatmap")
	}
	if flags.Lookup("plot") != nil && flags.Changed("plot") {
		cfg.Report.Plot, _ = flags.GetString("plot")
	}

	if cfg.Data == "" {
		return cfg, fmt.Errorf("no data file: pass it as an argument or set data in the config")
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newLogger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the current version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), "diveknn", version)
		},
	}
}
