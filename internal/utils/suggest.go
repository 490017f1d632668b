package utils

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// suggestMaxDistance bounds how far a typo may drift before we stop guessing.
const suggestMaxDistance = 3

// ClosestMatch returns the candidate nearest to input by edit distance, for
// "did you mean" hints on category and tag flags. ok is false when input
// already matches a candidate exactly or nothing is close enough.
func ClosestMatch(input string, candidates []string) (string, bool) {
	needle := strings.ToLower(strings.TrimSpace(input))
	if needle == "" {
		return "", false
	}

	best := ""
	bestDist := suggestMaxDistance + 1
	for _, cand := range candidates {
		dist := levenshtein.ComputeDistance(needle, strings.ToLower(cand))
		if dist == 0 {
			return "", false
		}
		if dist < bestDist {
			best, bestDist = cand, dist
		}
	}
	if best == "" {
		return "", false
	}
	return best, true
}
