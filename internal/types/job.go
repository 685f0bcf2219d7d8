package types

import "time"

// Priority is the scheduling priority of a synthesized job.
type Priority string

// Job priorities.
const (
	PriorityLow    Priority = "low"
	PriorityNormal Priority = "normal"
	PriorityHigh   Priority = "high"
	PriorityUrgent Priority = "urgent"
)

// JobStatus is the lifecycle state of a synthesized job or task.
type JobStatus string

// Job and task statuses. A freshly synthesized graph is always pending.
const (
	StatusPending    JobStatus = "pending"
	StatusInProgress JobStatus = "in_progress"
	StatusCompleted  JobStatus = "completed"
)

// Job is a newly synthesized job. It is owned by the caller once created;
// the engine never mutates it after synthesis.
type Job struct {
	ID                  string    `json:"id"`
	PartName            string    `json:"part_name"`
	Material            string    `json:"material,omitempty"`
	Quantity            int       `json:"quantity,omitempty"`
	AssignedProcesses   []string  `json:"assigned_processes,omitempty"`
	DueDate             time.Time `json:"due_date,omitempty"`
	Priority            Priority  `json:"priority"`
	SpecialRequirements []string  `json:"special_requirements,omitempty"`
	QualityRequirements []string  `json:"quality_requirements,omitempty"`
	Status              JobStatus `json:"status"`
	SourceArchiveID     string    `json:"source_archive_id,omitempty"`
	CreatedAt           time.Time `json:"created_at"`
	UpdatedAt           time.Time `json:"updated_at"`
}

// Task belongs to exactly one Job, referenced by JobID.
type Task struct {
	ID                     string       `json:"id"`
	JobID                  string       `json:"job_id"`
	Name                   string       `json:"name"`
	Category               TaskCategory `json:"category"`
	ProcessType            string       `json:"process_type,omitempty"`
	OperationIndex         int          `json:"operation_index"`
	EstimatedDurationHours float64      `json:"estimated_duration_hours,omitempty"`
	SetupTimeMinutes       float64      `json:"setup_time_minutes,omitempty"`
	MachineType            string       `json:"machine_type,omitempty"`
	Status                 JobStatus    `json:"status"`
}

// Subtask belongs to exactly one Task, referenced by TaskID, and carries the
// owning JobID as well.
type Subtask struct {
	ID                       string    `json:"id"`
	TaskID                   string    `json:"task_id"`
	JobID                    string    `json:"job_id"`
	Name                     string    `json:"name"`
	OperationIndex           int       `json:"operation_index"`
	EstimatedDurationMinutes float64   `json:"estimated_duration_minutes,omitempty"`
	Status                   JobStatus `json:"status"`
}

// JobCustomizations are optional caller overrides applied during synthesis.
// Requirement lists are appended to the candidate job's lists, not replaced.
type JobCustomizations struct {
	DueDate             *time.Time `json:"due_date,omitempty"`
	Priority            *Priority  `json:"priority,omitempty"`
	SpecialRequirements []string   `json:"special_requirements,omitempty"`
	QualityRequirements []string   `json:"quality_requirements,omitempty"`
}

// SynthesizedJob is the full output of job synthesis: the new job, its task
// and subtask graph, and human-readable notes about what was applied.
type SynthesizedJob struct {
	Job             Job       `json:"job"`
	Tasks           []Task    `json:"tasks"`
	Subtasks        []Subtask `json:"subtasks"`
	ProcessingNotes []string  `json:"processing_notes"`
}

// LotOrder pairs one order in a lot with the suggestion chosen for it.
type LotOrder struct {
	OrderID        string                     `json:"order_id"`
	Suggestion     ArchiveDrivenJobSuggestion `json:"suggestion"`
	Customizations *JobCustomizations         `json:"customizations,omitempty"`
}

// LotError identifies the order within a lot whose synthesis failed.
type LotError struct {
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}

// LotResult reports the outcome of synthesizing a lot. Success is true only
// when every order synthesized cleanly.
type LotResult struct {
	Success     bool             `json:"success"`
	JobsCreated int              `json:"jobs_created"`
	Jobs        []SynthesizedJob `json:"jobs"`
	Errors      []LotError       `json:"errors"`
}
