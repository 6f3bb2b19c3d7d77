package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	diveknn "go-diveknn"
)

func newClassifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "classify [file]",
		Short: "Predict the label of one dive from its eight descriptors",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			raw, _ := cmd.Flags().GetString("features")
			features, err := parseFeatures(raw)
			if err != nil {
				return err
			}
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
			prediction := classifier.Predict(diveknn.Query(features))

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Predicted label:", prediction.Predicted)
			for i, n := range prediction.Neighbours {
				fmt.Fprintf(out, "%d Record: %d, Label: %s, Distance: %.4f\n", i, n.Index(), n.Record().Label(), n.Distance())
			}
			return nil
		},
	}
	addRunFlags(cmd)
	cmd.Flags().String("features", "", "Eight whitespace-separated descriptors in file order")
	_ = cmd.MarkFlagRequired("features")
	return cmd
}

func parseFeatures(raw string) (diveknn.Features, error) {
	var features diveknn.Features
	fields := strings.Fields(raw)
	if len(fields) != int(diveknn.NumFeatures) {
		return features, fmt.Errorf("invalid features %q: expected %d numbers, got %d", raw, diveknn.NumFeatures, len(fields))
	}
	for i, field := range fields {
		v, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return features, fmt.Errorf("invalid feature %s: %w", diveknn.Feature(i), err)
		}
		features[i] = v
	}
	return features, nil
}
