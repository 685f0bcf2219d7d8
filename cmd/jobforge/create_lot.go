package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssalihyetim/jobforge/internal/synth"
	"github.com/ssalihyetim/jobforge/internal/types"
)

var createLotCmd = &cobra.Command{
	Use:   "create-lot",
	Short: "Synthesize a lot of jobs from multiple suggestions",
	Long:  "Synthesizes one job per lot order, collecting per-order failures instead of aborting the whole lot. The full lot result is written as JSON.",
	RunE:  runCreateLot,
}

var (
	createLotOrders string
	createLotOutput string
)

func init() {
	createLotCmd.Flags().StringVarP(&createLotOrders, "orders", "i", "", "Path to input lot orders JSON file (required)")
	createLotCmd.Flags().StringVarP(&createLotOutput, "out", "o", "", "Path to output lot result JSON file (required)")

	if err := createLotCmd.MarkFlagRequired("orders"); err != nil {
		panic(fmt.Sprintf("failed to mark orders flag as required: %v", err))
	}
	if err := createLotCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(createLotCmd)
}

func runCreateLot(_ *cobra.Command, _ []string) error {
	var orders []types.LotOrder
	if err := readJSONFile(createLotOrders, &orders); err != nil {
		return err
	}

	result := synth.CreateLot(orders)

	if err := writeJSONFile(createLotOutput, result); err != nil {
		return err
	}

	_, _ = fmt.Fprintf(os.Stdout, "Created %d of %d job(s) to %s\n", result.JobsCreated, len(orders), createLotOutput)

	if !result.Success {
		for _, lotErr := range result.Errors {
			_, _ = fmt.Fprintf(os.Stderr, "order %s: %s\n", lotErr.OrderID, lotErr.Message)
		}
		return fmt.Errorf("%d order(s) failed", len(result.Errors))
	}

	return nil
}
