// Package risk flags quality and schedule risks for a new job based on an
// archive's recorded shortfalls.
package risk

import (
	"fmt"

	"github.com/ssalihyetim/jobforge/internal/types"
)

// Signal thresholds. Archives at or above the quality target raise no
// quality risk.
const (
	qualityTarget      = 8.0
	qualityLikelihood  = 60
	scheduleLikelihood = 50
)

// Assess inspects an archive's performance record and returns the risks it
// implies for a job synthesized from it. Healthy archives produce no risks;
// the assessor is conservative and silent rather than manufacturing false
// positives.
func Assess(a *types.JobArchive) []types.JobCreationRisk {
	var risks []types.JobCreationRisk

	if a.Performance.QualityScore < qualityTarget {
		risks = append(risks, types.JobCreationRisk{
			RiskType:    types.RiskQuality,
			RiskLevel:   types.RiskMedium,
			Likelihood:  qualityLikelihood,
			Description: "Historical quality score below target for this part",
			Mitigation:  "Add in-process inspection steps and review the archived issue log before release",
			Evidence:    fmt.Sprintf("archived quality score %.1f/10", a.Performance.QualityScore),
		})
	}

	if !a.Performance.OnTimeDelivery {
		risks = append(risks, types.JobCreationRisk{
			RiskType:    types.RiskSchedule,
			RiskLevel:   types.RiskMedium,
			Likelihood:  scheduleLikelihood,
			Description: "The archived job missed its delivery date",
			Mitigation:  "Schedule with additional buffer and confirm material availability early",
			Evidence:    "archived job was delivered late",
		})
	}

	return risks
}
