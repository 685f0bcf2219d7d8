package types

import "github.com/go-playground/validator/v10"

// TargetPartSpecs describes the part that inherited process parameters will
// be adapted for.
type TargetPartSpecs struct {
	PartName   string `json:"part_name" validate:"required,min=1"`
	Material   string `json:"material,omitempty"`
	Quantity   int    `json:"quantity,omitempty"`
	Dimensions string `json:"dimensions,omitempty"`
	Tolerances string `json:"tolerances,omitempty"`
}

// Validate validates the TargetPartSpecs using the validator.
func (s *TargetPartSpecs) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// ProcessParameters are the manufacturing parameters carried forward from an
// archived task.
type ProcessParameters struct {
	SetupTimeMinutes float64  `json:"setup_time_minutes,omitempty"`
	CycleTimeMinutes float64  `json:"cycle_time_minutes,omitempty"`
	MachineType      string   `json:"machine_type,omitempty"`
	Tooling          []string `json:"tooling,omitempty"`
}

// InheritedProcess is one manufacturing process extracted from an archive's
// task snapshot, with efficiency figures from the archive's recorded outcome
// and a flag for whether the target part requires adaptation.
type InheritedProcess struct {
	ProcessType        string            `json:"process_type"`
	Parameters         ProcessParameters `json:"parameters"`
	HistoricalSuccess  bool              `json:"historical_success"`
	QualityEfficiency  float64           `json:"quality_efficiency"`
	TimeEfficiency     float64           `json:"time_efficiency"`
	AdaptationRequired bool              `json:"adaptation_required"`
	AdaptationNotes    string            `json:"adaptation_notes,omitempty"`
}

// ProcessOptimization is a process-level improvement derived from the source
// archive's signals.
type ProcessOptimization struct {
	ProcessType      string  `json:"process_type"`
	Suggestion       string  `json:"suggestion"`
	TimeSavingsHours float64 `json:"time_savings_hours"`
}

// QualityImprovement is a quality-level improvement derived from the source
// archive's signals.
type QualityImprovement struct {
	Area         string  `json:"area"`
	Description  string  `json:"description"`
	ExpectedGain float64 `json:"expected_gain"`
}

// SetupOptimization is a setup-level improvement derived from the source
// archive's completed setup documentation.
type SetupOptimization struct {
	ProcessType            string  `json:"process_type"`
	Description            string  `json:"description"`
	SetupTimeSavingsMinute float64 `json:"setup_time_savings_minutes"`
}

// ProcessInheritance is the full result of adapting one archived job's
// manufacturing processes for a new target part.
type ProcessInheritance struct {
	SourceJobID          string                `json:"source_job_id"`
	Processes            []InheritedProcess    `json:"processes"`
	ProcessOptimizations []ProcessOptimization `json:"process_optimizations,omitempty"`
	QualityImprovements  []QualityImprovement  `json:"quality_improvements,omitempty"`
	SetupOptimizations   []SetupOptimization   `json:"setup_optimizations,omitempty"`
}
