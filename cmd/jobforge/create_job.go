package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ssalihyetim/jobforge/internal/observability"
	"github.com/ssalihyetim/jobforge/internal/synth"
	"github.com/ssalihyetim/jobforge/internal/types"
)

var createJobCmd = &cobra.Command{
	Use:   "create-job",
	Short: "Synthesize a production job from a suggestion",
	Long:  "Turns one archive-driven suggestion into a ready-to-schedule job with a re-keyed task tree, applied optimizations and processing notes.",
	RunE:  runCreateJob,
}

var (
	createJobSuggestion     string
	createJobCustomizations string
	createJobOutput         string
)

func init() {
	createJobCmd.Flags().StringVarP(&createJobSuggestion, "suggestion", "s", "", "Path to input suggestion JSON file (required)")
	createJobCmd.Flags().StringVar(&createJobCustomizations, "customizations", "", "Path to optional job customizations JSON file")
	createJobCmd.Flags().StringVarP(&createJobOutput, "out", "o", "", "Path to output synthesized job JSON file (required)")

	if err := createJobCmd.MarkFlagRequired("suggestion"); err != nil {
		panic(fmt.Sprintf("failed to mark suggestion flag as required: %v", err))
	}
	if err := createJobCmd.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(createJobCmd)
}

func runCreateJob(_ *cobra.Command, _ []string) error {
	cfg, err := resolveConfig()
	if err != nil {
		return err
	}

	var suggestion types.ArchiveDrivenJobSuggestion
	if err := readJSONFile(createJobSuggestion, &suggestion); err != nil {
		return err
	}

	var custom *types.JobCustomizations
	if createJobCustomizations != "" {
		custom = &types.JobCustomizations{}
		if err := readJSONFile(createJobCustomizations, custom); err != nil {
			return err
		}
	}

	// Synthesis is pure computation over the suggestion; no archive source
	// is needed here.
	job, err := synth.CreateJobFromSuggestion(suggestion, custom)
	if err != nil {
		return fmt.Errorf("failed to synthesize job: %w", err)
	}

	if err := writeJSONFile(createJobOutput, job); err != nil {
		return err
	}

	if cfg.Verbose {
		observability.NewPrinter(os.Stdout).PrintSynthesizedJob(&job)
	}

	_, _ = fmt.Fprintf(os.Stdout, "Successfully created job %s with %d task(s) to %s\n", job.Job.ID, len(job.Tasks), createJobOutput)

	return nil
}
