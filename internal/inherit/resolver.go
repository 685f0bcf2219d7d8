// Package inherit extracts and adapts manufacturing-process parameters from
// one archived job for a differently-specified target part.
package inherit

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/ssalihyetim/jobforge/internal/archive"
	"github.com/ssalihyetim/jobforge/internal/optimize"
	"github.com/ssalihyetim/jobforge/internal/types"
)

const (
	successQualityThreshold = 8.0
	qualityTarget           = 8.0

	// setupReuseSavings is the share of archived setup time recovered by
	// restoring a documented setup.
	setupReuseSavings = 0.25
)

// Resolver resolves process inheritance from the archive repository.
type Resolver struct {
	repo archive.Repository
	log  zerolog.Logger
}

// NewResolver creates a Resolver over the given repository.
func NewResolver(repo archive.Repository, log zerolog.Logger) *Resolver {
	return &Resolver{repo: repo, log: log}
}

// Resolve builds a ProcessInheritance for the target part from the given
// source archive. An unresolvable archive ID is logged and returns
// (nil, nil); it is not a failure.
func (r *Resolver) Resolve(ctx context.Context, sourceArchiveID string, target types.TargetPartSpecs) (*types.ProcessInheritance, error) {
	src, err := archive.GetByID(ctx, r.repo, sourceArchiveID)
	if err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			r.log.Warn().Str("archive_id", sourceArchiveID).Msg("source archive not found, no inheritance")
			return nil, nil
		}
		return nil, fmt.Errorf("fetching source archive %s: %w", sourceArchiveID, err)
	}

	// The same archive signals that drive job optimizations decide which
	// inheritance catalogs exist; only the output shape differs.
	signals := optimize.Derive(src)

	inheritance := &types.ProcessInheritance{
		SourceJobID:          src.OriginalJobID,
		Processes:            inheritProcesses(src, target),
		ProcessOptimizations: processOptimizations(src, signals),
		QualityImprovements:  qualityImprovements(src),
		SetupOptimizations:   setupOptimizations(src, signals),
	}
	return inheritance, nil
}

// inheritProcesses carries forward one InheritedProcess per
// manufacturing-category task in the archive's task snapshot.
func inheritProcesses(src *types.JobArchive, target types.TargetPartSpecs) []types.InheritedProcess {
	success := src.Performance.QualityScore >= successQualityThreshold && src.Performance.OnTimeDelivery

	materialDiffers := target.Material != "" &&
		!strings.EqualFold(target.Material, src.JobSnapshot.Material)

	var processes []types.InheritedProcess
	for _, task := range src.TaskSnapshots {
		if task.Category != types.CategoryManufacturing {
			continue
		}

		p := types.InheritedProcess{
			ProcessType: processType(task),
			Parameters: types.ProcessParameters{
				SetupTimeMinutes: task.SetupTimeMinutes,
				CycleTimeMinutes: task.CycleTimeMinutes,
				MachineType:      task.MachineType,
				Tooling:          task.Tooling,
			},
			HistoricalSuccess: success,
			QualityEfficiency: src.Performance.QualityScore / 10,
			TimeEfficiency:    src.Performance.EfficiencyRating / 10,
		}

		if materialDiffers {
			p.AdaptationRequired = true
			p.AdaptationNotes = fmt.Sprintf("Target material %s differs from archived %s; re-validate speeds, feeds, and tooling",
				target.Material, src.JobSnapshot.Material)
		}

		processes = append(processes, p)
	}
	return processes
}

// processOptimizations translates the proven-ordering signal into
// process-level suggestions.
func processOptimizations(src *types.JobArchive, signals []types.JobOptimization) []types.ProcessOptimization {
	if !hasArea(signals, types.OptimizationProcessSequence) {
		return nil
	}

	var opts []types.ProcessOptimization
	for _, task := range src.TaskSnapshots {
		if task.Category != types.CategoryManufacturing {
			continue
		}
		opts = append(opts, types.ProcessOptimization{
			ProcessType:      processType(task),
			Suggestion:       "Keep the archived operation position; the recorded sequence outperformed estimates",
			TimeSavingsHours: 0.5,
		})
	}
	return opts
}

// qualityImprovements surfaces archived lessons when the recorded quality
// fell short of target.
func qualityImprovements(src *types.JobArchive) []types.QualityImprovement {
	if src.Performance.QualityScore >= qualityTarget {
		return nil
	}

	improvements := []types.QualityImprovement{{
		Area:         "inspection",
		Description:  "Tighten in-process inspection; the archived run finished below the quality target",
		ExpectedGain: qualityTarget - src.Performance.QualityScore,
	}}
	for _, lesson := range src.Performance.LessonsLearned {
		improvements = append(improvements, types.QualityImprovement{
			Area:        "process",
			Description: lesson,
		})
	}
	return improvements
}

// setupOptimizations translates the completed-setup-sheet signal into
// per-process setup suggestions.
func setupOptimizations(src *types.JobArchive, signals []types.JobOptimization) []types.SetupOptimization {
	if !hasArea(signals, types.OptimizationSetup) {
		return nil
	}

	var opts []types.SetupOptimization
	for _, task := range src.TaskSnapshots {
		if task.Category != types.CategoryManufacturing || task.SetupTimeMinutes <= 0 {
			continue
		}
		opts = append(opts, types.SetupOptimization{
			ProcessType:            processType(task),
			Description:            "Restore the archived fixture and offset configuration from the completed setup sheet",
			SetupTimeSavingsMinute: task.SetupTimeMinutes * setupReuseSavings,
		})
	}
	return opts
}

func processType(task types.TaskSnapshot) string {
	if task.ProcessType != "" {
		return task.ProcessType
	}
	return task.Name
}

func hasArea(opts []types.JobOptimization, area types.OptimizationArea) bool {
	for _, o := range opts {
		if o.Area == area {
			return true
		}
	}
	return false
}
