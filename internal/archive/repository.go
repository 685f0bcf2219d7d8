// Package archive defines the repository capability for searching frozen job
// archives, together with an in-memory implementation and a retrying
// decorator for transient store failures.
package archive

import (
	"context"
	"errors"

	"github.com/ssalihyetim/jobforge/internal/types"
)

// ErrNotFound indicates that no archive matched an explicit ID lookup.
var ErrNotFound = errors.New("archive not found")

// SearchCriteria narrows an archive search. Zero-value fields are ignored.
// ArchiveIDs, when set, is an exact-ID filter that overrides fuzzy matching.
type SearchCriteria struct {
	PartName               string
	Keywords               []string
	ProcessTypes           []string
	CustomerID             string
	ArchiveIDs             []string
	IncludePerformanceData bool
	MaxResults             int
}

// Repository is the injected capability for retrieving archives. The search
// round-trip is the engine's only blocking operation; implementations must
// honor context cancellation.
type Repository interface {
	Search(ctx context.Context, criteria SearchCriteria) ([]types.JobArchive, error)
}

// GetByID fetches exactly one archive through the repository's explicit-ID
// filter. Returns ErrNotFound when the ID does not resolve.
func GetByID(ctx context.Context, repo Repository, id string) (*types.JobArchive, error) {
	results, err := repo.Search(ctx, SearchCriteria{
		ArchiveIDs:             []string{id},
		IncludePerformanceData: true,
		MaxResults:             1,
	})
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, ErrNotFound
	}
	return &results[0], nil
}
