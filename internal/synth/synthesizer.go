// Package synth builds new job/task/subtask graphs from accepted
// suggestions, applying optimizations and caller customizations and minting
// fresh identifiers.
package synth

import (
	"errors"
	"fmt"
	"time"

	"github.com/ssalihyetim/jobforge/internal/optimize"
	"github.com/ssalihyetim/jobforge/internal/types"
)

// Synthesis failure modes. These fail fast rather than emit a corrupt graph.
var (
	ErrNoCandidateJob = errors.New("suggestion carries no candidate job")
	ErrOrphanSubtasks = errors.New("suggestion has subtasks but no tasks to attach them to")
)

// CreateJobFromSuggestion synthesizes a new job graph from a chosen
// suggestion. The candidate set is cloned, customizations are applied,
// every optimization in the suggestion is applied to the task list, and all
// identifiers are minted fresh: every task references the new job ID, every
// subtask references a task present in the result.
func CreateJobFromSuggestion(s types.ArchiveDrivenJobSuggestion, custom *types.JobCustomizations) (types.SynthesizedJob, error) {
	if s.CandidateJob.PartName == "" {
		return types.SynthesizedJob{}, ErrNoCandidateJob
	}
	if len(s.CandidateSubtasks) > 0 && len(s.CandidateTasks) == 0 {
		return types.SynthesizedJob{}, ErrOrphanSubtasks
	}

	job := s.CandidateJob
	tasks := cloneTasks(s.CandidateTasks)
	subtasks := cloneSubtasks(s.CandidateSubtasks)
	var notes []string

	// Customizations override fields directly; requirement lists are
	// appended, never replaced.
	if custom != nil {
		if custom.DueDate != nil {
			job.DueDate = *custom.DueDate
		}
		if custom.Priority != nil {
			job.Priority = *custom.Priority
		}
		job.SpecialRequirements = append(job.SpecialRequirements, custom.SpecialRequirements...)
		job.QualityRequirements = append(job.QualityRequirements, custom.QualityRequirements...)
	}

	// The pre-optimization task set keeps the provisional IDs that the
	// candidate subtasks reference.
	original := cloneTasks(tasks)

	for _, opt := range s.Optimizations {
		tasks = optimize.Apply(tasks, opt)
		notes = append(notes, fmt.Sprintf("Applied %s optimization: %s", opt.Area, opt.Description))
	}

	now := time.Now()
	job.ID = mintJobID(now)
	job.Status = types.StatusPending
	job.CreatedAt = now
	job.UpdatedAt = now

	for i := range tasks {
		tasks[i].ID = fmt.Sprintf("%s-task-%d", job.ID, i+1)
		tasks[i].JobID = job.ID
		tasks[i].Status = types.StatusPending
	}

	perParent := make(map[string]int, len(tasks))
	for i := range subtasks {
		parentIdx := resolveParentTask(&subtasks[i], original, tasks)
		parent := tasks[parentIdx]

		perParent[parent.ID]++
		subtasks[i].ID = fmt.Sprintf("%s-sub-%d", parent.ID, perParent[parent.ID])
		subtasks[i].TaskID = parent.ID
		subtasks[i].JobID = job.ID
		subtasks[i].Status = types.StatusPending
	}

	notes = append(notes, fmt.Sprintf("Created from archive %s with %d optimization(s) applied",
		s.SourceArchiveID, len(s.Optimizations)))

	return types.SynthesizedJob{
		Job:             job,
		Tasks:           tasks,
		Subtasks:        subtasks,
		ProcessingNotes: notes,
	}, nil
}

// mintJobID derives a fresh job ID from a timestamp and the archive-driven
// marker.
func mintJobID(now time.Time) string {
	return fmt.Sprintf("job-%d-archive", now.UnixMilli())
}

// resolveParentTask finds the index in the new task set of the task a
// subtask belongs to. The subtask's provisional task reference is resolved
// against the original task set, then matched to the new set by name or
// operation index. When nothing matches, the subtask attaches to the first
// task rather than being dropped.
func resolveParentTask(sub *types.Subtask, original, current []types.Task) int {
	for _, orig := range original {
		if orig.ID != sub.TaskID {
			continue
		}
		for i := range current {
			if current[i].Name == orig.Name || current[i].OperationIndex == orig.OperationIndex {
				return i
			}
		}
	}

	// Unresolvable reference: try the subtask's own operation index.
	for i := range current {
		if current[i].OperationIndex == sub.OperationIndex {
			return i
		}
	}

	return 0
}

func cloneTasks(tasks []types.Task) []types.Task {
	out := make([]types.Task, len(tasks))
	copy(out, tasks)
	return out
}

func cloneSubtasks(subtasks []types.Subtask) []types.Subtask {
	out := make([]types.Subtask, len(subtasks))
	copy(out, subtasks)
	return out
}
