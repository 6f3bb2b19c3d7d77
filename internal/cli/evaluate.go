package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	diveknn "go-diveknn"
	"go-diveknn/ingest"
	"go-diveknn/internal/config"
	"go-diveknn/report"
)

func newEvaluateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "evaluate [file]",
		Short: "Run leave-one-out evaluation and print the accuracy report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, args)
			if err != nil {
				return err
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

			classifier, err := diveknn.NewClassifier(records, cfg.K, opts...)
			if err != nil {
				return err
			}
			result, err := classifier.Evaluate(cmd.Context())
			if err != nil {
				return err
			}

			err = report.Text(cmd.OutOrStdout(), result, report.Options{
				Color:     cfg.Report.Color,
				Confusion: cfg.Report.Confusion,
			})
			if err != nil {
				return err
			}
			if cfg.Report.Heatmap != "" {
				if err := report.ConfusionPNG(result.Confusion(), cfg.Report.Heatmap); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "Confusion heat map saved to:", cfg.Report.Heatmap)
			}
			return nil
		},
	}
	addRunFlags(cmd)
	cmd.Flags().Bool("no-color", false, "Disable coloured output")
	cmd.Flags().Bool("confusion", false, "Print the confusion matrix")
	cmd.Flags().String("heatmap", "", "Write the confusion matrix as a PNG heat map")
	return cmd
}

// loadRecords checks the header of the data file and reads it.
func loadRecords(cfg config.Config) ([]diveknn.Record, error) {
	if err := ingest.CheckHeader(cfg.Data); err != nil {
		return nil, fmt.Errorf("invalid file: %w", err)
	}
	return ingest.ReadFile(cfg.Data)
}
