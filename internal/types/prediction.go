package types

import "github.com/go-playground/validator/v10"

// JobSpecs is a bare job specification used for performance prediction,
// independent of any single archive.
type JobSpecs struct {
	PartName   string   `json:"part_name" validate:"required,min=1"`
	Processes  []string `json:"processes,omitempty"`
	Quantity   int      `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Material   string   `json:"material,omitempty"`
	Complexity string   `json:"complexity,omitempty"`
}

// Validate validates the JobSpecs using the validator.
func (s *JobSpecs) Validate() error {
	validate := validator.New()
	return validate.Struct(s)
}

// PerformancePrediction is a statistical estimate of how a proposed job will
// run, derived from matching archives or from conservative defaults when no
// history exists.
type PerformancePrediction struct {
	PredictedDurationHours    float64  `json:"predicted_duration_hours"`
	PredictedQualityScore     float64  `json:"predicted_quality_score"`
	OnTimeDeliveryProbability float64  `json:"on_time_delivery_probability"` // percent
	RiskFactors               []string `json:"risk_factors"`
	ConfidenceLevel           float64  `json:"confidence_level"` // percent
	RecommendedActions        []string `json:"recommended_actions"`
	ArchivesAnalyzed          int      `json:"archives_analyzed"`
}
