// Package similarity scores how closely a new order item resembles an
// archived job, combining normalized edit distance, quantity ratio, and
// process-set overlap into a single 0-100 score.
package similarity

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/ssalihyetim/jobforge/internal/types"
)

// Weights for the scoring components. They sum to 1.0, so the combined score
// is naturally bounded at 100.
const (
	partNameWeight = 0.4
	materialWeight = 0.2
	quantityWeight = 0.2
	processWeight  = 0.2
)

// StringSimilarity returns a 0-100 similarity between two strings based on
// normalized Levenshtein distance, case-insensitive. Two empty strings are a
// vacuous maximal match.
func StringSimilarity(a, b string) float64 {
	al := strings.ToLower(a)
	bl := strings.ToLower(b)

	// Rune length, to stay consistent with the rune-based edit distance.
	maxLen := len([]rune(al))
	if n := len([]rune(bl)); n > maxLen {
		maxLen = n
	}
	if maxLen == 0 {
		return 100
	}

	dist := levenshtein.ComputeDistance(al, bl)
	score := float64(maxLen-dist) / float64(maxLen) * 100
	if score < 0 {
		return 0
	}
	return score
}

// QuantityRatio returns min/max of two quantities as a 0-1 ratio. If either
// quantity is absent the component is skipped and contributes 0.
func QuantityRatio(a, b int) float64 {
	if a <= 0 || b <= 0 {
		return 0
	}
	if a > b {
		a, b = b, a
	}
	return float64(a) / float64(b)
}

// ProcessOverlap returns the Jaccard overlap of two process-name sets as a
// 0-100 score, case-insensitive. Two empty sets match fully; exactly one
// empty set does not match at all.
func ProcessOverlap(a, b []string) float64 {
	setA := normalizeSet(a)
	setB := normalizeSet(b)

	if len(setA) == 0 && len(setB) == 0 {
		return 100
	}
	if len(setA) == 0 || len(setB) == 0 {
		return 0
	}

	intersection := 0
	for p := range setA {
		if setB[p] {
			intersection++
		}
	}
	union := len(setA) + len(setB) - intersection

	return float64(intersection) / float64(union) * 100
}

// ScoreOrderItem computes the weighted similarity between an order item and
// an archive's frozen job snapshot. The result is clamped to [0, 100].
func ScoreOrderItem(item *types.OrderItem, archive *types.JobArchive) float64 {
	snap := archive.JobSnapshot

	score := partNameWeight * StringSimilarity(item.PartName, snap.PartName)
	score += materialWeight * StringSimilarity(item.Material, snap.Material)
	score += quantityWeight * QuantityRatio(item.Quantity, snap.Quantity) * 100
	score += processWeight * ProcessOverlap(item.AssignedProcesses, snap.AssignedProcesses)

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

func normalizeSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n != "" {
			set[n] = true
		}
	}
	return set
}
