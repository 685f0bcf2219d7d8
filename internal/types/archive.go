package types

import "time"

// TaskCategory classifies an archived or synthesized task.
type TaskCategory string

// Task categories.
const (
	CategoryManufacturing TaskCategory = "manufacturing"
	CategoryInspection    TaskCategory = "inspection"
	CategorySupport       TaskCategory = "support"
)

// JobArchive is a frozen snapshot of a fully executed job: the job as it was
// specified, the task/subtask graph as it actually ran, and the recorded
// performance. Archives are append-only and never mutated after creation;
// the engine treats them as read-only input.
type JobArchive struct {
	ID               string            `json:"id"`
	OriginalJobID    string            `json:"original_job_id"`
	ArchiveDate      time.Time         `json:"archive_date"`
	JobSnapshot      JobSnapshot       `json:"job_snapshot"`
	TaskSnapshots    []TaskSnapshot    `json:"task_snapshots"`
	SubtaskSnapshots []SubtaskSnapshot `json:"subtask_snapshots"`
	Performance      PerformanceData   `json:"performance_data"`
	CompletedForms   CompletedForms    `json:"completed_forms"`
}

// JobSnapshot is the frozen job specification at archive time.
type JobSnapshot struct {
	PartName          string   `json:"part_name"`
	Material          string   `json:"material,omitempty"`
	Quantity          int      `json:"quantity,omitempty"`
	AssignedProcesses []string `json:"assigned_processes,omitempty"`
}

// TaskSnapshot is one completed task as it was executed.
type TaskSnapshot struct {
	ID                     string       `json:"id"`
	Name                   string       `json:"name"`
	Category               TaskCategory `json:"category"`
	ProcessType            string       `json:"process_type,omitempty"`
	OperationIndex         int          `json:"operation_index"`
	EstimatedDurationHours float64      `json:"estimated_duration_hours,omitempty"`
	SetupTimeMinutes       float64      `json:"setup_time_minutes,omitempty"`
	CycleTimeMinutes       float64      `json:"cycle_time_minutes,omitempty"`
	MachineType            string       `json:"machine_type,omitempty"`
	Tooling                []string     `json:"tooling,omitempty"`
}

// SubtaskSnapshot is one completed subtask as it was executed.
type SubtaskSnapshot struct {
	ID                       string  `json:"id"`
	TaskID                   string  `json:"task_id"`
	Name                     string  `json:"name"`
	OperationIndex           int     `json:"operation_index"`
	EstimatedDurationMinutes float64 `json:"estimated_duration_minutes,omitempty"`
}

// PerformanceData records how the archived job actually went.
type PerformanceData struct {
	TotalDurationHours float64  `json:"total_duration_hours"`
	QualityScore       float64  `json:"quality_score"` // 1-10
	OnTimeDelivery     bool     `json:"on_time_delivery"`
	EfficiencyRating   float64  `json:"efficiency_rating"`
	IssuesEncountered  []string `json:"issues_encountered,omitempty"`
	LessonsLearned     []string `json:"lessons_learned,omitempty"`
}

// CompletedForms counts the shop-floor paperwork completed for the archived
// job. Only presence/count is carried; form content stays with the archive
// store.
type CompletedForms struct {
	SetupSheets     int `json:"setup_sheets,omitempty"`
	ToolLists       int `json:"tool_lists,omitempty"`
	FAIRReports     int `json:"fair_reports,omitempty"`
	InspectionLogs  int `json:"inspection_logs,omitempty"`
	NonConformances int `json:"non_conformances,omitempty"`
}

// AgeAt returns how old the archive is relative to now.
func (a *JobArchive) AgeAt(now time.Time) time.Duration {
	return now.Sub(a.ArchiveDate)
}
