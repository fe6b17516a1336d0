package strmetric

import "testing"

func TestRelevanceExactMatch(t *testing.T) {
	if got := Relevance("cat", "cat"); got != 1000 {
		t.Errorf("exact match = %d, want 1000", got)
	}
}

func TestRelevancePrefixFavorsShorter(t *testing.T) {
	short := Relevance("cats", "cat")
	long := Relevance("catastrophe", "cat")
	if short <= long {
		t.Errorf("shorter candidate should score higher: short=%d long=%d", short, long)
	}
}

func TestRelevanceNonPrefixUsesEditDistance(t *testing.T) {
	got := Relevance("dog", "cat")
	if got > 1000 {
		t.Errorf("non-prefix relevance should be scaled to 0-1000, got %d", got)
	}
}

func TestRelevanceNonPrefixCanReachFullScale(t *testing.T) {
	// "cbt" is one substitution away from "cat": normalized Levenshtein
	// of 1 - 1/3 = 0.667, scaled to the same 0-1000 range the prefix
	// branch uses rather than capped at a tenth of it.
	got := Relevance("cbt", "cat")
	if got < 500 {
		t.Errorf("expected a near-miss edit distance to score well above 100 on the 0-1000 scale, got %d", got)
	}
}
