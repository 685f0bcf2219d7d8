// Package suggest searches archived jobs for precedents to a new order and
// produces ranked, explainable job suggestions.
package suggest

import (
	"time"

	"github.com/ssalihyetim/jobforge/internal/types"
)

const (
	// similarityFactor is the share of the similarity score that seeds the
	// confidence value before outcome bonuses.
	similarityFactor = 0.6

	qualityBonus = 20.0
	onTimeBonus  = 10.0
	recencyBonus = 10.0

	// qualityBonusThreshold is the archived quality score at or above which
	// the quality bonus applies.
	qualityBonusThreshold = 8.0

	// recencyWindow is how young an archive must be to earn the recency
	// bonus.
	recencyWindow = 180 * 24 * time.Hour

	// maxConfidence caps the confidence level. A suggestion is never
	// certain.
	maxConfidence = 95.0
)

// Confidence converts similarity, historical outcome, and recency into a
// bounded confidence value in [0, 95].
func Confidence(similarity float64, a *types.JobArchive, now time.Time) float64 {
	confidence := similarity * similarityFactor

	if a.Performance.QualityScore >= qualityBonusThreshold {
		confidence += qualityBonus
	}
	if a.Performance.OnTimeDelivery {
		confidence += onTimeBonus
	}
	if a.AgeAt(now) < recencyWindow {
		confidence += recencyBonus
	}

	if confidence > maxConfidence {
		return maxConfidence
	}
	if confidence < 0 {
		return 0
	}
	return confidence
}

// Recommendation classifies a suggestion from its similarity score alone.
// Boundaries are exclusive: a score of exactly 90 is similar_part, not
// exact_match.
func Recommendation(similarity float64) types.RecommendationType {
	switch {
	case similarity > 90:
		return types.RecommendationExactMatch
	case similarity > 70:
		return types.RecommendationSimilarPart
	case similarity > 50:
		return types.RecommendationSimilarProcess
	default:
		return types.RecommendationHybrid
	}
}
