package synth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ssalihyetim/jobforge/internal/types"
)

func bracketSuggestion() types.ArchiveDrivenJobSuggestion {
	return types.ArchiveDrivenJobSuggestion{
		SourceArchiveID: "arch-001",
		PartName:        "Landing Gear Bracket",
		SimilarityScore: 100,
		ConfidenceLevel: 95,
		CandidateJob: types.Job{
			ID:                  "candidate-job",
			PartName:            "Landing Gear Bracket",
			Material:            "Aluminum 7075-T6",
			Quantity:            5,
			Priority:            types.PriorityNormal,
			SpecialRequirements: []string{"AS9100 traceability"},
			SourceArchiveID:     "arch-001",
		},
		CandidateTasks: []types.Task{
			{ID: "ct-1", Name: "Turning", OperationIndex: 1, EstimatedDurationHours: 4, SetupTimeMinutes: 45},
			{ID: "ct-2", Name: "3-Axis Milling", OperationIndex: 2, EstimatedDurationHours: 6, SetupTimeMinutes: 60},
		},
		CandidateSubtasks: []types.Subtask{
			{ID: "cs-1", TaskID: "ct-1", Name: "First article inspection", OperationIndex: 1},
			{ID: "cs-2", TaskID: "ct-2", Name: "Surface finish check", OperationIndex: 2},
		},
	}
}

func TestCreateJobFromSuggestion_MintsConsistentIdentifiers(t *testing.T) {
	result, err := CreateJobFromSuggestion(bracketSuggestion(), nil)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(result.Job.ID, "job-"))
	assert.True(t, strings.HasSuffix(result.Job.ID, "-archive"))
	assert.False(t, result.Job.CreatedAt.IsZero())
	assert.Equal(t, types.StatusPending, result.Job.Status)

	require.Len(t, result.Tasks, 2)
	for _, task := range result.Tasks {
		assert.Equal(t, result.Job.ID, task.JobID)
		assert.Contains(t, task.ID, result.Job.ID)
	}

	require.Len(t, result.Subtasks, 2)
	taskIDs := map[string]bool{}
	for _, task := range result.Tasks {
		taskIDs[task.ID] = true
	}
	for _, sub := range result.Subtasks {
		assert.True(t, taskIDs[sub.TaskID], "subtask %s references missing task %s", sub.ID, sub.TaskID)
		assert.Equal(t, result.Job.ID, sub.JobID)
	}
}

func TestCreateJobFromSuggestion_SubtasksFollowTheirTasks(t *testing.T) {
	result, err := CreateJobFromSuggestion(bracketSuggestion(), nil)
	require.NoError(t, err)

	// cs-1 referenced ct-1 (Turning); it must land on the Turning task.
	var turningID string
	for _, task := range result.Tasks {
		if task.Name == "Turning" {
			turningID = task.ID
		}
	}
	require.NotEmpty(t, turningID)
	assert.Equal(t, turningID, result.Subtasks[0].TaskID)
}

func TestCreateJobFromSuggestion_UnmatchedSubtaskAttachesToFirstTask(t *testing.T) {
	s := bracketSuggestion()
	s.CandidateSubtasks = []types.Subtask{
		{ID: "cs-x", TaskID: "no-such-task", Name: "Orphan check", OperationIndex: 99},
	}

	result, err := CreateJobFromSuggestion(s, nil)
	require.NoError(t, err)
	require.Len(t, result.Subtasks, 1)
	// Attached, not dropped: the permissive fallback lands on the first task.
	assert.Equal(t, result.Tasks[0].ID, result.Subtasks[0].TaskID)
}

func TestCreateJobFromSuggestion_CustomizationsOverrideAndAppend(t *testing.T) {
	due := time.Now().AddDate(0, 2, 0)
	priority := types.PriorityUrgent
	custom := &types.JobCustomizations{
		DueDate:             &due,
		Priority:            &priority,
		SpecialRequirements: []string{"Customer source inspection"},
		QualityRequirements: []string{"CMM report per lot"},
	}

	result, err := CreateJobFromSuggestion(bracketSuggestion(), custom)
	require.NoError(t, err)

	assert.True(t, result.Job.DueDate.Equal(due))
	assert.Equal(t, types.PriorityUrgent, result.Job.Priority)
	// Appended, not replaced.
	assert.Equal(t, []string{"AS9100 traceability", "Customer source inspection"}, result.Job.SpecialRequirements)
	assert.Equal(t, []string{"CMM report per lot"}, result.Job.QualityRequirements)
}

func TestCreateJobFromSuggestion_AppliesOptimizationsWithNotes(t *testing.T) {
	s := bracketSuggestion()
	s.Optimizations = []types.JobOptimization{
		{Area: types.OptimizationSetup, Description: "Reuse proven setup parameters", TimeImpactHours: -0.5},
		{Area: types.OptimizationProcessSequence, Description: "Apply the proven operation ordering"},
	}

	result, err := CreateJobFromSuggestion(s, nil)
	require.NoError(t, err)

	// Setup optimization: -30 minutes per task, 15 minute floor.
	assert.InDelta(t, 15.0, result.Tasks[0].SetupTimeMinutes, 0.0001)
	assert.InDelta(t, 30.0, result.Tasks[1].SetupTimeMinutes, 0.0001)

	// One note per optimization plus the final summary note.
	require.Len(t, result.ProcessingNotes, 3)
	assert.Contains(t, result.ProcessingNotes[0], "setup")
	assert.Contains(t, result.ProcessingNotes[1], "process_sequence")
	assert.Contains(t, result.ProcessingNotes[2], "arch-001")
	assert.Contains(t, result.ProcessingNotes[2], "2 optimization(s)")
}

func TestCreateJobFromSuggestion_NoCandidateJob(t *testing.T) {
	_, err := CreateJobFromSuggestion(types.ArchiveDrivenJobSuggestion{}, nil)
	assert.ErrorIs(t, err, ErrNoCandidateJob)
}

func TestCreateJobFromSuggestion_SubtasksWithoutTasks(t *testing.T) {
	s := bracketSuggestion()
	s.CandidateTasks = nil

	_, err := CreateJobFromSuggestion(s, nil)
	assert.ErrorIs(t, err, ErrOrphanSubtasks)
}

func TestCreateLot_PartialFailure(t *testing.T) {
	good := bracketSuggestion()
	bad := types.ArchiveDrivenJobSuggestion{} // no candidate job

	result := CreateLot([]types.LotOrder{
		{OrderID: "order-1", Suggestion: good},
		{OrderID: "order-2", Suggestion: bad},
		{OrderID: "order-3", Suggestion: good},
	})

	assert.False(t, result.Success)
	assert.Equal(t, 2, result.JobsCreated)
	require.Len(t, result.Errors, 1)
	assert.Equal(t, "order-2", result.Errors[0].OrderID)
}

func TestCreateLot_AllSucceed(t *testing.T) {
	result := CreateLot([]types.LotOrder{
		{OrderID: "order-1", Suggestion: bracketSuggestion()},
		{OrderID: "order-2", Suggestion: bracketSuggestion()},
	})

	assert.True(t, result.Success)
	assert.Equal(t, 2, result.JobsCreated)
	assert.Empty(t, result.Errors)
}
