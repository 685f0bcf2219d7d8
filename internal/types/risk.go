package types

// RiskType is the dimension of a flagged job-creation risk.
type RiskType string

// Risk types.
const (
	RiskQuality    RiskType = "quality"
	RiskSchedule   RiskType = "schedule"
	RiskCost       RiskType = "cost"
	RiskComplexity RiskType = "complexity"
	RiskResource   RiskType = "resource"
)

// RiskLevel is the severity of a flagged risk.
type RiskLevel string

// Risk levels.
const (
	RiskLow      RiskLevel = "low"
	RiskMedium   RiskLevel = "medium"
	RiskHigh     RiskLevel = "high"
	RiskCritical RiskLevel = "critical"
)

// JobCreationRisk is a concern inferred from an archive's recorded
// shortfalls, carried into a suggestion for the caller to weigh.
type JobCreationRisk struct {
	RiskType    RiskType  `json:"risk_type"`
	RiskLevel   RiskLevel `json:"risk_level"`
	Likelihood  int       `json:"likelihood"` // 0-100
	Description string    `json:"description"`
	Mitigation  string    `json:"mitigation"`
	Evidence    string    `json:"evidence"`
}
