// Package optimize derives reusable job optimizations from an archive's
// recorded success and applies them to synthesized task lists.
package optimize

import (
	"sort"

	"github.com/ssalihyetim/jobforge/internal/types"
)

const (
	// efficiencyThreshold is the rating above which the archived ordering
	// is considered proven.
	efficiencyThreshold = 8.0

	setupTimeImpactHours    = -0.5
	sequenceTimeImpactHours = -1.0
	sequenceQualityImpact   = 0.5

	// minSetupMinutes is the floor for any task's setup time after a setup
	// optimization is applied.
	minSetupMinutes = 15.0
)

// Derive inspects archive signals and emits zero or more optimizations for a
// job synthesized from it. It is a pure function: the archive is never
// modified and the same input always yields the same output.
func Derive(a *types.JobArchive) []types.JobOptimization {
	var opts []types.JobOptimization

	if a.CompletedForms.SetupSheets >= 1 {
		opts = append(opts, types.JobOptimization{
			Area:               types.OptimizationSetup,
			Description:        "Reuse proven setup parameters from the archived setup sheets",
			ExpectedBenefit:    "Shorter first-piece setup with a known-good configuration",
			Effort:             types.EffortLow,
			TimeImpactHours:    setupTimeImpactHours,
			SupportingArchives: 1,
		})
	}

	if a.Performance.EfficiencyRating > efficiencyThreshold {
		opts = append(opts, types.JobOptimization{
			Area:               types.OptimizationProcessSequence,
			Description:        "Apply the proven operation ordering from the archived job",
			ExpectedBenefit:    "Fewer setups and less work-in-progress between operations",
			Effort:             types.EffortLow,
			TimeImpactHours:    sequenceTimeImpactHours,
			QualityImpact:      sequenceQualityImpact,
			SupportingArchives: 1,
		})
	}

	return opts
}

// Apply mutates the given task list according to one optimization and
// returns it. Scheduling optimizations shift every task's estimated
// duration, process-sequence optimizations restore the archived operation
// order, and setup optimizations adjust setup times with a floor of
// minSetupMinutes.
func Apply(tasks []types.Task, opt types.JobOptimization) []types.Task {
	switch opt.Area {
	case types.OptimizationScheduling:
		for i := range tasks {
			tasks[i].EstimatedDurationHours += opt.TimeImpactHours
			if tasks[i].EstimatedDurationHours < 0 {
				tasks[i].EstimatedDurationHours = 0
			}
		}
	case types.OptimizationProcessSequence:
		sort.SliceStable(tasks, func(i, j int) bool {
			return tasks[i].OperationIndex < tasks[j].OperationIndex
		})
	case types.OptimizationSetup:
		for i := range tasks {
			tasks[i].SetupTimeMinutes += opt.TimeImpactHours * 60
			if tasks[i].SetupTimeMinutes < minSetupMinutes {
				tasks[i].SetupTimeMinutes = minSetupMinutes
			}
		}
	}
	return tasks
}
