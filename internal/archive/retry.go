package archive

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/rs/zerolog"

	"github.com/ssalihyetim/jobforge/internal/types"
)

// defaultMaxElapsed bounds the total time spent retrying one search.
const defaultMaxElapsed = 5 * time.Second

// RetryingRepository decorates a Repository with exponential backoff for
// transient store failures. When retries exhaust, the final error is
// returned; callers in the ranking pipeline convert it to "no archives
// found" rather than failing the batch.
type RetryingRepository struct {
	inner      Repository
	maxElapsed time.Duration
	log        zerolog.Logger
}

// NewRetryingRepository wraps inner with the default retry policy.
func NewRetryingRepository(inner Repository, log zerolog.Logger) *RetryingRepository {
	return &RetryingRepository{inner: inner, maxElapsed: defaultMaxElapsed, log: log}
}

// Search retries the inner search with exponential backoff until it
// succeeds, the context is cancelled, or the retry budget is spent.
func (r *RetryingRepository) Search(ctx context.Context, criteria SearchCriteria) ([]types.JobArchive, error) {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = r.maxElapsed

	var results []types.JobArchive
	attempt := 0
	op := func() error {
		attempt++
		var err error
		results, err = r.inner.Search(ctx, criteria)
		if err != nil {
			r.log.Warn().Err(err).Int("attempt", attempt).Msg("archive search failed, retrying")
		}
		return err
	}

	if err := backoff.Retry(op, backoff.WithContext(policy, ctx)); err != nil {
		return nil, err
	}
	return results, nil
}
