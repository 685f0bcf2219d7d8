package types

// OptimizationArea is the aspect of a job an optimization targets.
type OptimizationArea string

// Optimization areas.
const (
	OptimizationScheduling         OptimizationArea = "scheduling"
	OptimizationProcessSequence    OptimizationArea = "process_sequence"
	OptimizationResourceAllocation OptimizationArea = "resource_allocation"
	OptimizationQuality            OptimizationArea = "quality"
	OptimizationSetup              OptimizationArea = "setup"
)

// EffortTier is the rough implementation effort of applying an optimization.
type EffortTier string

// Effort tiers.
const (
	EffortLow    EffortTier = "low"
	EffortMedium EffortTier = "medium"
	EffortHigh   EffortTier = "high"
)

// JobOptimization is a reusable improvement derived from an archive's own
// recorded success. Negative time impact means time saved.
type JobOptimization struct {
	Area               OptimizationArea `json:"area"`
	Description        string           `json:"description"`
	ExpectedBenefit    string           `json:"expected_benefit"`
	Effort             EffortTier       `json:"effort"`
	TimeImpactHours    float64          `json:"time_impact_hours"`
	QualityImpact      float64          `json:"quality_impact"`
	CostImpact         float64          `json:"cost_impact"`
	SupportingArchives int              `json:"supporting_archives"`
}
