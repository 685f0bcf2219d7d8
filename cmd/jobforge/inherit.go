package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssalihyetim/jobforge/internal/observability"
	"github.com/ssalihyetim/jobforge/internal/types"
)

var inheritCmd = &cobra.Command{
	Use:   "inherit",
	Short: "Inherit the proven process plan from an archived job",
	Long:  "Builds a process inheritance plan for a target part from one source archive: manufacturing processes with their parameters, plus optimization and quality improvement catalogs.",
	RunE:  runInherit,
}

var (
	inheritArchiveID string
	inheritTarget    string
	inheritOutput    string
)

func init() {
	inheritCmd.Flags().StringVarP(&inheritArchiveID, "archive-id", "a", "", "ID of the source archive (required)")
	inheritCmd.Flags().StringVarP(&inheritTarget, "target", "t", "", "Path to input target part specs JSON file (required)")
	inheritCmd.Flags().StringVarP(&inheritOutput, "out", "o", "", "Path to output process inheritance JSON file (required)")

	if err := inheritCmd.MarkFlagRequired("archive-id"); err != nil {
		panic(fmt.Sprintf("failed to mark archive-id flag as required: %v", err))
	}
	if err := inheritCmd.MarkFlagRequired("target"); err != nil {
		panic(fmt.Sprintf("failed to mark target flag as required: %v", err))
	}
	if err := inheritCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(inheritCmd)
}

func runInherit(cmd *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	var target types.TargetPartSpecs
	if err := readJSONFile(inheritTarget, &target); err != nil {
		return err
	}
	if err := target.Validate(); err != nil {
		return fmt.Errorf("invalid target part specs: %w", err)
	}

	ctx := cmd.Context()
	eng, log, cleanup, err := buildEngine(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	plan, err := eng.InheritProcess(ctx, inheritArchiveID, target)
	if err != nil {
		return fmt.Errorf("failed to inherit process: %w", err)
	}
	if plan == nil {
		log.Warn().Str("archive_id", inheritArchiveID).Msg("source archive not found")
		_, _ = fmt.Fprintf(os.Stdout, "Archive %s not found; nothing inherited\n", inheritArchiveID)
		return nil
	}

	if err := writeJSONFile(inheritOutput, plan); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintInheritance(plan)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully inherited %d process(es) to %s\n", len(plan.Processes), inheritOutput)

	return nil
}
