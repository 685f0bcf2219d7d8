package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssalihyetim/jobforge/internal/observability"
	"github.com/ssalihyetim/jobforge/internal/types"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Predict how a proposed job will perform",
	Long:  "Estimates duration, quality and on-time probability for a proposed job from matching archives, falling back to conservative defaults when no history exists.",
	RunE:  runPredict,
}

var (
	predictSpecs    string
	predictDelivery string
	predictOutput   string
)

func init() {
	predictCmd.Flags().StringVarP(&predictSpecs, "specs", "s", "", "Path to input job specs JSON file (required)")
	predictCmd.Flags().StringVarP(&predictDelivery, "delivery-date", "d", "", "Target delivery date, RFC 3339 or YYYY-MM-DD")
	predictCmd.Flags().StringVarP(&predictOutput, "out", "o", "", "Path to output prediction JSON file (required)")

	if err := predictCmd.MarkFlagRequired("specs"); err != nil {
		panic(fmt.Sprintf("failed to mark specs flag as required: %v", err))
	}
	if err := predictCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(predictCmd)
}

func runPredict(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	var specs types.JobSpecs
	if err := readJSONFile(predictSpecs, &specs); err != nil {
		return err
	}
	if err := specs.Validate(); err != nil {
		return fmt.Errorf("invalid job specs: %w", err)
	}

	delivery, err := parseDate(predictDelivery)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	eng, _, cleanup, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	prediction, err := eng.PredictPerformance(ctx, specs, delivery)
	if err != nil {
		return fmt.Errorf("failed to predict performance: %w", err)
	}

	if err := writeJSONFile(predictOutput, prediction); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintPrediction(&prediction)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully predicted performance from %d archive(s) to %s\n", prediction.ArchivesAnalyzed, predictOutput)

	return nil
}
