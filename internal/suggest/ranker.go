package suggest

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/ssalihyetim/jobforge/internal/archive"
	"github.com/ssalihyetim/jobforge/internal/optimize"
	"github.com/ssalihyetim/jobforge/internal/risk"
	"github.com/ssalihyetim/jobforge/internal/types"
)

// maxSuggestions bounds the overall result across all order items.
const maxSuggestions = 10

// Ranker orchestrates the suggestion pipeline: search, dedup, score,
// confidence, sort, top-N. It holds no mutable state across invocations.
type Ranker struct {
	repo archive.Repository
	log  zerolog.Logger
	now  func() time.Time
}

// NewRanker creates a Ranker over the given repository.
func NewRanker(repo archive.Repository, log zerolog.Logger) *Ranker {
	return &Ranker{repo: repo, log: log, now: time.Now}
}

// GenerateSuggestions produces at most maxSuggestions ranked suggestions for
// a batch of order items. Each item's search-and-score sequence runs
// independently and concurrently; results are merged and sorted only after
// every item completes. An item whose search fails or is cancelled simply
// contributes zero suggestions.
func (r *Ranker) GenerateSuggestions(ctx context.Context, items []types.OrderItem, deliveryDate time.Time, customerID string) ([]types.ArchiveDrivenJobSuggestion, error) {
	perItem := make([][]types.ArchiveDrivenJobSuggestion, len(items))

	g, gCtx := errgroup.WithContext(ctx)
	for i := range items {
		i := i
		g.Go(func() error {
			item := &items[i]
			scored, err := findSimilarArchives(gCtx, r.repo, item, customerID)
			if err != nil {
				// Adapter failure after retries is "no archives found",
				// never a failed batch.
				r.log.Warn().Err(err).Str("part_name", item.PartName).Msg("archive search failed, skipping item")
				return nil
			}

			suggestions := make([]types.ArchiveDrivenJobSuggestion, 0, len(scored))
			for _, sa := range scored {
				suggestions = append(suggestions, r.buildSuggestion(item, sa, deliveryDate))
			}
			perItem[i] = suggestions
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var merged []types.ArchiveDrivenJobSuggestion
	for _, s := range perItem {
		merged = append(merged, s...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].RankingScore() > merged[j].RankingScore()
	})
	if len(merged) > maxSuggestions {
		merged = merged[:maxSuggestions]
	}
	return merged, nil
}

// buildSuggestion assembles one suggestion from a scored archive: candidate
// job graph, confidence, optimizations, risks, and free-text
// recommendations.
func (r *Ranker) buildSuggestion(item *types.OrderItem, sa scoredArchive, deliveryDate time.Time) types.ArchiveDrivenJobSuggestion {
	a := sa.archive
	confidence := Confidence(sa.similarity, &a, r.now())
	recommendation := Recommendation(sa.similarity)
	optimizations := optimize.Derive(&a)
	risks := risk.Assess(&a)

	job, tasks, subtasks := buildCandidateSet(item, &a, deliveryDate)

	return types.ArchiveDrivenJobSuggestion{
		SourceArchiveID:    a.ID,
		PartName:           item.PartName,
		SimilarityScore:    sa.similarity,
		ConfidenceLevel:    confidence,
		RecommendationType: recommendation,
		CandidateJob:       job,
		CandidateTasks:     tasks,
		CandidateSubtasks:  subtasks,
		HistoricalPerformance: types.HistoricalPerformance{
			TotalDurationHours: a.Performance.TotalDurationHours,
			QualityScore:       a.Performance.QualityScore,
			OnTimeDelivery:     a.Performance.OnTimeDelivery,
			EfficiencyRating:   a.Performance.EfficiencyRating,
		},
		Optimizations:   optimizations,
		RiskAssessment:  risks,
		Recommendations: buildRecommendations(&a, recommendation, optimizations, risks),
	}
}

// buildCandidateSet clones the archive's task/subtask graph into a candidate
// set keyed by provisional IDs. The synthesizer mints the final identifiers;
// until then the candidate set has no persisted identity.
func buildCandidateSet(item *types.OrderItem, a *types.JobArchive, deliveryDate time.Time) (types.Job, []types.Task, []types.Subtask) {
	material := item.Material
	if material == "" {
		material = a.JobSnapshot.Material
	}
	quantity := item.Quantity
	if quantity <= 0 {
		quantity = a.JobSnapshot.Quantity
	}
	processes := item.AssignedProcesses
	if len(processes) == 0 {
		processes = a.JobSnapshot.AssignedProcesses
	}

	job := types.Job{
		ID:                uuid.NewString(),
		PartName:          item.PartName,
		Material:          material,
		Quantity:          quantity,
		AssignedProcesses: processes,
		DueDate:           deliveryDate,
		Priority:          types.PriorityNormal,
		Status:            types.StatusPending,
		SourceArchiveID:   a.ID,
	}

	tasks := make([]types.Task, 0, len(a.TaskSnapshots))
	for _, ts := range a.TaskSnapshots {
		id := ts.ID
		if id == "" {
			id = uuid.NewString()
		}
		tasks = append(tasks, types.Task{
			ID:                     id,
			JobID:                  job.ID,
			Name:                   ts.Name,
			Category:               ts.Category,
			ProcessType:            ts.ProcessType,
			OperationIndex:         ts.OperationIndex,
			EstimatedDurationHours: ts.EstimatedDurationHours,
			SetupTimeMinutes:       ts.SetupTimeMinutes,
			MachineType:            ts.MachineType,
			Status:                 types.StatusPending,
		})
	}

	subtasks := make([]types.Subtask, 0, len(a.SubtaskSnapshots))
	for _, ss := range a.SubtaskSnapshots {
		id := ss.ID
		if id == "" {
			id = uuid.NewString()
		}
		subtasks = append(subtasks, types.Subtask{
			ID:                       id,
			TaskID:                   ss.TaskID,
			JobID:                    job.ID,
			Name:                     ss.Name,
			OperationIndex:           ss.OperationIndex,
			EstimatedDurationMinutes: ss.EstimatedDurationMinutes,
			Status:                   types.StatusPending,
		})
	}

	return job, tasks, subtasks
}

// buildRecommendations writes the human-readable rationale shown alongside a
// suggestion.
func buildRecommendations(a *types.JobArchive, rec types.RecommendationType, opts []types.JobOptimization, risks []types.JobCreationRisk) []string {
	recs := []string{
		fmt.Sprintf("Archived job %s completed in %.1f hours with quality %.1f/10",
			a.OriginalJobID, a.Performance.TotalDurationHours, a.Performance.QualityScore),
	}

	switch rec {
	case types.RecommendationExactMatch:
		recs = append(recs, "This part was produced before; the archived process plan can be reused as-is")
	case types.RecommendationSimilarPart:
		recs = append(recs, "A closely related part was produced before; verify dimensions and tolerances against the archive")
	case types.RecommendationSimilarProcess:
		recs = append(recs, "The process route matches a previous job; expect part-specific programming effort")
	case types.RecommendationHybrid:
		recs = append(recs, "Partial precedent only; treat the archived plan as a starting point, not a template")
	}

	if n := len(a.Performance.LessonsLearned); n > 0 {
		recs = append(recs, fmt.Sprintf("Review %d recorded lessons learned before releasing the job", n))
	}
	if len(opts) > 0 {
		recs = append(recs, fmt.Sprintf("%d optimization(s) from the archive can be applied at creation", len(opts)))
	}
	if len(risks) > 0 {
		recs = append(recs, fmt.Sprintf("%d risk(s) flagged from the archived outcome; see the risk assessment", len(risks)))
	}

	return recs
}
