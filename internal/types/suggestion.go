package types

// RecommendationType classifies how a suggestion relates to the new order,
// derived purely from the similarity score.
type RecommendationType string

// Recommendation types, from strongest to weakest precedent.
const (
	RecommendationExactMatch     RecommendationType = "exact_match"
	RecommendationSimilarPart    RecommendationType = "similar_part"
	RecommendationSimilarProcess RecommendationType = "similar_process"
	RecommendationHybrid         RecommendationType = "hybrid"
)

// HistoricalPerformance summarizes the source archive's recorded outcome for
// display alongside a suggestion.
type HistoricalPerformance struct {
	TotalDurationHours float64 `json:"total_duration_hours"`
	QualityScore       float64 `json:"quality_score"`
	OnTimeDelivery     bool    `json:"on_time_delivery"`
	EfficiencyRating   float64 `json:"efficiency_rating"`
}

// ArchiveDrivenJobSuggestion is one ranked precedent for a new order item: a
// scored archive together with a ready-to-synthesize candidate job graph,
// derived optimizations and risks, and free-text recommendations. Suggestions
// are ephemeral; they carry no persisted identity and are discarded once the
// caller accepts or rejects them.
type ArchiveDrivenJobSuggestion struct {
	SourceArchiveID       string                `json:"source_archive_id"`
	PartName              string                `json:"part_name"`
	SimilarityScore       float64               `json:"similarity_score"` // 0-100
	ConfidenceLevel       float64               `json:"confidence_level"` // 0-95
	RecommendationType    RecommendationType    `json:"recommendation_type"`
	CandidateJob          Job                   `json:"candidate_job"`
	CandidateTasks        []Task                `json:"candidate_tasks"`
	CandidateSubtasks     []Subtask             `json:"candidate_subtasks"`
	HistoricalPerformance HistoricalPerformance `json:"historical_performance"`
	Optimizations         []JobOptimization     `json:"optimizations,omitempty"`
	RiskAssessment        []JobCreationRisk     `json:"risk_assessment,omitempty"`
	Recommendations       []string              `json:"recommendations,omitempty"`
}

// RankingScore is the value suggestions are ordered by: confidence weighted
// by similarity.
func (s *ArchiveDrivenJobSuggestion) RankingScore() float64 {
	return s.ConfidenceLevel * s.SimilarityScore
}
