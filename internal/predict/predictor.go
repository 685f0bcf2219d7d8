// Package predict estimates duration, quality, and on-time probability for
// a proposed job specification from matching archive history.
package predict

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/ssalihyetim/jobforge/internal/archive"
	"github.com/ssalihyetim/jobforge/internal/types"
)

const (
	// maxArchives bounds how much history feeds one prediction.
	maxArchives = 20

	// Conservative defaults returned when no history exists.
	defaultDurationHours = 8.0
	defaultQualityScore  = 8.0
	defaultOnTimePercent = 80.0
	defaultConfidence    = 30.0

	// quantityFactor scales the logarithmic duration adjustment for
	// quantity.
	quantityFactor = 0.3

	// Thresholds that raise risk factors.
	qualityRiskThreshold  = 8.0
	onTimeRiskThreshold   = 80.0
	durationRiskThreshold = 16.0

	confidencePerArchive = 5.0
	maxConfidence        = 95.0
)

// Predictor derives performance predictions from the archive repository.
type Predictor struct {
	repo archive.Repository
	log  zerolog.Logger
}

// NewPredictor creates a Predictor over the given repository.
func NewPredictor(repo archive.Repository, log zerolog.Logger) *Predictor {
	return &Predictor{repo: repo, log: log}
}

// Predict estimates how the specified job will perform by the target
// delivery date. With no matching history it returns fixed conservative
// defaults rather than an error; the target date itself does not alter the
// statistics, only the caller's reading of them.
func (p *Predictor) Predict(ctx context.Context, specs types.JobSpecs, targetDelivery time.Time) (types.PerformancePrediction, error) {
	matches, err := p.repo.Search(ctx, archive.SearchCriteria{
		PartName:               specs.PartName,
		ProcessTypes:           specs.Processes,
		IncludePerformanceData: true,
		MaxResults:             maxArchives,
	})
	if err != nil {
		p.log.Warn().Err(err).Str("part_name", specs.PartName).Msg("archive search failed, predicting from defaults")
		matches = nil
	}

	if len(matches) == 0 {
		return types.PerformancePrediction{
			PredictedDurationHours:    defaultDurationHours,
			PredictedQualityScore:     defaultQualityScore,
			OnTimeDeliveryProbability: defaultOnTimePercent,
			RiskFactors:               []string{"No historical data available for this part and process combination"},
			ConfidenceLevel:           defaultConfidence,
			RecommendedActions:        []string{"Schedule additional planning and first-article time for a first-run part"},
		}, nil
	}

	var totalDuration, totalQuality float64
	onTimeCount := 0
	for _, m := range matches {
		totalDuration += m.Performance.TotalDurationHours
		totalQuality += m.Performance.QualityScore
		if m.Performance.OnTimeDelivery {
			onTimeCount++
		}
	}
	n := float64(len(matches))
	avgDuration := totalDuration / n
	avgQuality := totalQuality / n
	onTimeRate := float64(onTimeCount) / n * 100

	adjustedDuration := avgDuration
	if specs.Quantity > 0 {
		adjustedDuration = avgDuration * (1 + math.Log10(float64(specs.Quantity)+1)/math.Log10(10)*quantityFactor)
	}

	var riskFactors, actions []string
	if avgQuality < qualityRiskThreshold {
		riskFactors = append(riskFactors, fmt.Sprintf("Historical quality averages %.1f/10, below target", avgQuality))
		actions = append(actions, "Add in-process inspection steps and review archived quality issues")
	}
	if onTimeRate < onTimeRiskThreshold {
		riskFactors = append(riskFactors, fmt.Sprintf("Only %.0f%% of similar jobs delivered on time", onTimeRate))
		actions = append(actions, "Plan schedule buffer beyond the predicted duration")
	}
	if adjustedDuration > durationRiskThreshold {
		riskFactors = append(riskFactors, fmt.Sprintf("Predicted duration %.1f hours spans multiple shifts", adjustedDuration))
		actions = append(actions, "Split the job across machines or shifts to protect the delivery date")
	}

	confidence := confidencePerArchive * n
	if confidence > maxConfidence {
		confidence = maxConfidence
	}

	return types.PerformancePrediction{
		PredictedDurationHours:    adjustedDuration,
		PredictedQualityScore:     avgQuality,
		OnTimeDeliveryProbability: onTimeRate,
		RiskFactors:               riskFactors,
		ConfidenceLevel:           confidence,
		RecommendedActions:        actions,
		ArchivesAnalyzed:          len(matches),
	}, nil
}
