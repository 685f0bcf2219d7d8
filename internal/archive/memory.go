package archive

import (
	"context"
	"strings"

	"github.com/ssalihyetim/jobforge/internal/types"
)

// MemoryRepository is an in-memory Repository backed by a fixed archive
// slice. It serves file-backed CLI runs and tests. Archives are never
// mutated; searches return copies of the stored records.
type MemoryRepository struct {
	archives []types.JobArchive
}

// NewMemoryRepository creates a MemoryRepository over the given archives.
func NewMemoryRepository(archives []types.JobArchive) *MemoryRepository {
	return &MemoryRepository{archives: archives}
}

// Search returns archives matching the criteria. Matching is
// case-insensitive: part names and keywords match by substring, process
// types by set membership.
func (r *MemoryRepository) Search(ctx context.Context, criteria SearchCriteria) ([]types.JobArchive, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var results []types.JobArchive
	for _, a := range r.archives {
		if !Matches(&a, criteria) {
			continue
		}
		results = append(results, a)
		if criteria.MaxResults > 0 && len(results) >= criteria.MaxResults {
			break
		}
	}
	return results, nil
}

// Matches reports whether a single archive satisfies the criteria. It is
// exported so that other Repository implementations share one definition of
// the query semantics.
func Matches(a *types.JobArchive, criteria SearchCriteria) bool {
	if len(criteria.ArchiveIDs) > 0 {
		found := false
		for _, id := range criteria.ArchiveIDs {
			if a.ID == id {
				found = true
				break
			}
		}
		if !found {
			return false
		}
		return true
	}

	if criteria.PartName != "" {
		if !strings.Contains(strings.ToLower(a.JobSnapshot.PartName), strings.ToLower(criteria.PartName)) {
			return false
		}
	}

	if len(criteria.Keywords) > 0 && !matchesKeywords(a, criteria.Keywords) {
		return false
	}

	if len(criteria.ProcessTypes) > 0 && !matchesProcesses(a, criteria.ProcessTypes) {
		return false
	}

	if criteria.IncludePerformanceData && a.Performance.QualityScore == 0 && a.Performance.TotalDurationHours == 0 {
		return false
	}

	return true
}

// matchesKeywords reports whether any keyword appears in the archive's part
// name, material, or process names.
func matchesKeywords(a *types.JobArchive, keywords []string) bool {
	haystack := strings.ToLower(a.JobSnapshot.PartName + " " + a.JobSnapshot.Material + " " +
		strings.Join(a.JobSnapshot.AssignedProcesses, " "))
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw != "" && strings.Contains(haystack, kw) {
			return true
		}
	}
	return false
}

// matchesProcesses reports whether the archive ran any of the wanted
// process types.
func matchesProcesses(a *types.JobArchive, wanted []string) bool {
	have := make(map[string]bool, len(a.JobSnapshot.AssignedProcesses))
	for _, p := range a.JobSnapshot.AssignedProcesses {
		have[strings.ToLower(strings.TrimSpace(p))] = true
	}
	for _, w := range wanted {
		if have[strings.ToLower(strings.TrimSpace(w))] {
			return true
		}
	}
	return false
}
