// Package engine exposes the archive-driven job synthesis entry points over
// an injected archive repository.
package engine

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/ssalihyetim/jobforge/internal/archive"
	"github.com/ssalihyetim/jobforge/internal/inherit"
	"github.com/ssalihyetim/jobforge/internal/predict"
	"github.com/ssalihyetim/jobforge/internal/suggest"
	"github.com/ssalihyetim/jobforge/internal/synth"
	"github.com/ssalihyetim/jobforge/internal/types"
	"github.com/ssalihyetim/jobforge/internal/validation"
)

// Engine bundles the synthesis pipeline around one archive repository. It
// is stateless across invocations and safe for concurrent use.
type Engine struct {
	ranker    *suggest.Ranker
	resolver  *inherit.Resolver
	predictor *predict.Predictor
}

// New creates an Engine over the given repository.
func New(repo archive.Repository, log zerolog.Logger) *Engine {
	return &Engine{
		ranker:    suggest.NewRanker(repo, log),
		resolver:  inherit.NewResolver(repo, log),
		predictor: predict.NewPredictor(repo, log),
	}
}

// GenerateSuggestions returns at most ten ranked suggestions for the order
// items, best first.
func (e *Engine) GenerateSuggestions(ctx context.Context, items []types.OrderItem, deliveryDate time.Time, customerID string) ([]types.ArchiveDrivenJobSuggestion, error) {
	return e.ranker.GenerateSuggestions(ctx, items, deliveryDate, customerID)
}

// CreateJobFromSuggestion synthesizes a job graph from an accepted
// suggestion.
func (e *Engine) CreateJobFromSuggestion(s types.ArchiveDrivenJobSuggestion, custom *types.JobCustomizations) (types.SynthesizedJob, error) {
	return synth.CreateJobFromSuggestion(s, custom)
}

// CreateLot synthesizes one job per lot order, collecting per-order
// failures instead of aborting the batch.
func (e *Engine) CreateLot(orders []types.LotOrder) types.LotResult {
	return synth.CreateLot(orders)
}

// InheritProcess adapts manufacturing-process parameters from the source
// archive for the target part. Returns (nil, nil) when the archive ID does
// not resolve.
func (e *Engine) InheritProcess(ctx context.Context, sourceArchiveID string, target types.TargetPartSpecs) (*types.ProcessInheritance, error) {
	return e.resolver.Resolve(ctx, sourceArchiveID, target)
}

// PredictPerformance estimates duration, quality, and on-time probability
// for the given job specification.
func (e *Engine) PredictPerformance(ctx context.Context, specs types.JobSpecs, targetDelivery time.Time) (types.PerformancePrediction, error) {
	return e.predictor.Predict(ctx, specs, targetDelivery)
}

// ValidateJobCreationData checks raw order data and reports problems as a
// result value.
func (e *Engine) ValidateJobCreationData(data types.JobCreationData) types.OrderValidation {
	return validation.ValidateJobCreationData(data)
}
