package suggest

import (
	"context"
	"sort"
	"strings"

	"github.com/ssalihyetim/jobforge/internal/archive"
	"github.com/ssalihyetim/jobforge/internal/similarity"
	"github.com/ssalihyetim/jobforge/internal/types"
)

const (
	// minSimilarity is the score below which an archive is not worth
	// suggesting for an item.
	minSimilarity = 30.0

	// maxArchivesPerItem bounds how many archives feed suggestion
	// generation for one order item.
	maxArchivesPerItem = 5

	// searchLimit caps a single repository round-trip.
	searchLimit = 20

	// minKeywordLen filters out filler words when falling back to keyword
	// search over the item description.
	minKeywordLen = 4
)

// scoredArchive pairs a candidate archive with its similarity to the order
// item it was matched against.
type scoredArchive struct {
	archive    types.JobArchive
	similarity float64
}

// findSimilarArchives searches candidates for one order item: first by part
// name, then by keyword search over the description's tokens when the direct
// hit comes up empty. Results are deduplicated by archive ID, filtered by
// minSimilarity, and trimmed to the best maxArchivesPerItem.
func findSimilarArchives(ctx context.Context, repo archive.Repository, item *types.OrderItem, customerID string) ([]scoredArchive, error) {
	candidates, err := repo.Search(ctx, archive.SearchCriteria{
		PartName:               item.PartName,
		CustomerID:             customerID,
		IncludePerformanceData: true,
		MaxResults:             searchLimit,
	})
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		keywords := descriptionKeywords(item)
		if len(keywords) > 0 {
			candidates, err = repo.Search(ctx, archive.SearchCriteria{
				Keywords:               keywords,
				CustomerID:             customerID,
				IncludePerformanceData: true,
				MaxResults:             searchLimit,
			})
			if err != nil {
				return nil, err
			}
		}
	}

	seen := make(map[string]bool, len(candidates))
	scored := make([]scoredArchive, 0, len(candidates))
	for _, a := range candidates {
		if seen[a.ID] {
			continue
		}
		seen[a.ID] = true

		score := similarity.ScoreOrderItem(item, &a)
		if score < minSimilarity {
			continue
		}
		scored = append(scored, scoredArchive{archive: a, similarity: score})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].similarity > scored[j].similarity
	})
	if len(scored) > maxArchivesPerItem {
		scored = scored[:maxArchivesPerItem]
	}
	return scored, nil
}

// descriptionKeywords tokenizes the item description into search keywords,
// dropping short filler tokens and tokens already present in the part name.
func descriptionKeywords(item *types.OrderItem) []string {
	partName := strings.ToLower(item.PartName)

	var keywords []string
	seen := make(map[string]bool)
	for _, tok := range strings.Fields(strings.ToLower(item.Description)) {
		tok = strings.Trim(tok, ".,;:()[]")
		if len(tok) < minKeywordLen || seen[tok] || strings.Contains(partName, tok) {
			continue
		}
		seen[tok] = true
		keywords = append(keywords, tok)
	}
	return keywords
}
