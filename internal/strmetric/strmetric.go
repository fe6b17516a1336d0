// Package strmetric scores how closely a candidate surface form matches
// a query string, on a fixed 0–1000 scale.
package strmetric

import (
	"strings"

	"github.com/agnivade/levenshtein"
)

// Relevance scores candidate against query on a 0-1000 scale. A prefix
// match scores in the 0-1000 range biased toward shorter candidates
// (an exact match scores 1000); anything else falls back to normalized
// edit distance scaled into the same 0-1000 range, matching the
// two-tier scheme the engine uses everywhere a surface form is
// compared against a query.
func Relevance(candidate, query string) uint16 {
	query = strings.ToLower(query)
	lowerCandidate := strings.ToLower(candidate)

	if strings.HasPrefix(lowerCandidate, query) {
		if len(candidate) == 0 {
			return 1000
		}
		normalized := 1.0 - float64(len(query))/float64(len(candidate))
		return uint16(1000 - int(normalized*1000.0))
	}

	return uint16(normalizedLevenshtein(lowerCandidate, query) * 1000.0)
}

// normalizedLevenshtein returns 1 - (edit distance / max length), in
// [0, 1], matching strsim's normalized_levenshtein semantics.
func normalizedLevenshtein(a, b string) float64 {
	if a == "" && b == "" {
		return 1.0
	}
	maxLen := len([]rune(a))
	if bl := len([]rune(b)); bl > maxLen {
		maxLen = bl
	}
	if maxLen == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(maxLen)
}
