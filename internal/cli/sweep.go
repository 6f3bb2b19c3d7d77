package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	diveknn "go-diveknn"
	"go-diveknn/report"
)

func newSweepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep [file]",
		Short: "Evaluate a range of k values and report the accuracy of each",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, args)
			if err != nil {
				return err
			}
			from, _ := cmd.Flags().GetInt("from")
			to, _ := cmd.Flags().GetInt("to")
			if from < diveknn.MinK || to < from {
				return &diveknn.InvalidConfigError{
					Field:  "k range",
					Value:  fmt.Sprintf("%d..%d", from, to),
					Reason: fmt.Sprintf("range must start at %d or above and must not be empty", diveknn.MinK),
				}
			}
			records, err := loadRecords(cfg)
			if err != nil {
				return err
			}
			opts, err := cfg.Options()
			if err != nil {
				return err
			}
			opts = append(opts, diveknn.WithLogger(newLogger(cmd)))

			ks := make([]int, 0, to-from+1)
			for k := from; k <= to; k++ {
				ks = append(ks, k)
			}
			results, err := diveknn.Sweep(cmd.Context(), records, ks, opts...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%4s %10s %10s\n", "k", "correct", "percent")
			for _, r := range results {
				fmt.Fprintf(out, "%4d %10s %9s%%\n", r.K, fmt.Sprintf("%d/%d", r.Correct, r.Total), report.FormatPercentage(r.Percentage()))
			}
			if cfg.Report.Plot != "" {
				if err := report.PlotSweep(results, cfg.Report.Plot); err != nil {
					return err
				}
				fmt.Fprintln(out, "Accuracy chart saved to:", cfg.Report.Plot)
			}
			return nil
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Int("from", 1, "Smallest k to evaluate")
	cmd.Flags().Int("to", 15, "Largest k to evaluate")
	cmd.Flags().String("plot", "", "Write an accuracy-versus-k chart (png, svg, pdf)")
	return cmd
}
