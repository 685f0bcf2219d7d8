package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssalihyetim/jobforge/internal/observability"
	"github.com/ssalihyetim/jobforge/internal/types"
	"github.com/ssalihyetim/jobforge/internal/validation"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate order data before job creation",
	Long:  "Checks order data for problems that would make a synthesized job unworkable. Errors and warnings are reported as JSON; the command fails only on errors.",
	RunE:  runValidate,
}

var (
	validateOrder  string
	validateOutput string
)

func init() {
	validateCmd.Flags().StringVarP(&validateOrder, "order", "i", "", "Path to input job creation data JSON file (required)")
	validateCmd.Flags().StringVarP(&validateOutput, "out", "o", "", "Path to output validation result JSON file")

	if err := validateCmd.MarkFlagRequired("order"); err != nil {
		panic(fmt.Sprintf("failed to mark order flag as required: %v", err))
	}

	rootCmd.AddCommand(validateCmd)
}

func runValidate(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	var data types.JobCreationData
	if err := readJSONFile(validateOrder, &data); err != nil {
		return err
	}

	result := validation.ValidateJobCreationData(data)

	if validateOutput != "" {
		if err := writeJSONFile(validateOutput, result); err != nil {
			return err
		}
	}

	if cfg.Verbose || validateOutput == "" {
		observability.NewPrinter(os.Stdout).PrintValidation(&result)
	}

	if !result.IsValid {
		return fmt.Errorf("order validation failed with %d error(s)", len(result.Errors))
	}

	return nil
}
