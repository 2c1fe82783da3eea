package scoring

import (
	"slices"
	"strings"
)

// HollandResult is the interest hierarchy derived from the six area scores.
type HollandResult struct {
	// Hierarchy holds all six areas sorted descending by value. The sort is
	// stable, so exact ties keep the declared R-I-A-S-E-C order.
	Hierarchy []AreaScore `json:"hierarchy"`
	// Code is the classic 3-letter Holland code: the top three area letters.
	Code string `json:"code"`
	// TypeGuess is a deterministic human-readable label for the top three
	// areas. A more specific name may later be extracted from the narrative
	// report; this guess is the fallback when that heuristic fails.
	TypeGuess string `json:"typeGuess"`
}

// DeriveHolland computes the hierarchy, Holland code, and deterministic type
// guess from the area scores (in declared order).
func DeriveHolland(scores []AreaScore) HollandResult {
	hierarchy := make([]AreaScore, len(scores))
	copy(hierarchy, scores)
	slices.SortStableFunc(hierarchy, func(a, b AreaScore) int {
		switch {
		case a.Value > b.Value:
			return -1
		case a.Value < b.Value:
			return 1
		default:
			return 0
		}
	})

	n := 3
	if len(hierarchy) < n {
		n = len(hierarchy)
	}
	var code strings.Builder
	labels := make([]string, 0, n)
	for _, s := range hierarchy[:n] {
		code.WriteString(string(s.Area))
		labels = append(labels, s.Label)
	}

	guess := ""
	if len(labels) > 0 {
		guess = strings.Join(labels, "-") + " Typ"
	}

	return HollandResult{
		Hierarchy: hierarchy,
		Code:      code.String(),
		TypeGuess: guess,
	}
}
