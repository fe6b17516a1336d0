package index

import (
	"bytes"
	"strings"
	"testing"

	"github.com/WeDontPanic/autocomplete/internal/text"
)

func formatFn(s string) string { return string(text.Format(s)) }

func buildTestIndex(t *testing.T) *Index {
	t.Helper()
	b := NewBuilder(formatFn, 3)
	words := map[string]float64{
		"apple":      0.9,
		"application": 0.4,
		"apply":      0.3,
		"banana":     0.1,
		"bandana":    0.05,
	}
	for w, f := range words {
		if _, err := b.Insert(w, f); err != nil {
			t.Fatalf("insert %q: %v", w, err)
		}
	}
	return b.Build()
}

func TestBuilderRejectsDuplicateKey(t *testing.T) {
	b := NewBuilder(formatFn, 0)
	if _, err := b.Insert("cat", 0.5); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := b.Insert("CAT", 0.5); err == nil {
		t.Fatal("expected duplicate key error for differently-cased same key")
	}
}

func TestBuilderRejectsInvalidFrequency(t *testing.T) {
	b := NewBuilder(formatFn, 0)
	if _, err := b.Insert("dog", 1.5); err == nil {
		t.Fatal("expected invalid frequency error")
	}
	if _, err := b.Insert("dog", -0.1); err == nil {
		t.Fatal("expected invalid frequency error")
	}
}

func TestIndexIDStability(t *testing.T) {
	b := NewBuilder(formatFn, 0)
	id, err := b.Insert("hello", 0.5)
	if err != nil {
		t.Fatalf("insert: %v", err)
	}
	idx := b.Build()
	item, ok := idx.GetWord(id)
	if !ok {
		t.Fatal("expected word to resolve")
	}
	if got := item.Inner().Terms(); len(got) != 1 || got[0] != "hello" {
		t.Fatalf("terms mismatch: %v", got)
	}
}

func TestPredictionsPrefixMatch(t *testing.T) {
	idx := buildTestIndex(t)
	preds := idx.Predictions("app", 10)
	if len(preds) != 3 {
		t.Fatalf("expected 3 prefix matches, got %d", len(preds))
	}
	for _, p := range preds {
		if !strings.HasPrefix(p.Inner().Terms()[0], "app") {
			t.Fatalf("unexpected non-prefix match: %v", p.Inner().Terms())
		}
	}
}

func TestPredictionsRespectsLimit(t *testing.T) {
	idx := buildTestIndex(t)
	preds := idx.Predictions("ap", 2)
	if len(preds) != 2 {
		t.Fatalf("expected limit of 2, got %d", len(preds))
	}
}

func TestExactLookup(t *testing.T) {
	idx := buildTestIndex(t)
	exact := idx.Exact("apple")
	if len(exact) != 1 {
		t.Fatalf("expected exact match, got %d", len(exact))
	}
	if idx.Exact("nonexistent") != nil {
		t.Fatal("expected no match for unknown word")
	}
}

func TestSimilarTermsFindsPhoneticNeighbors(t *testing.T) {
	idx := buildTestIndex(t)
	res := idx.SimilarTerms("banana", 5, 8)
	found := false
	for _, r := range res {
		if r.Inner().Terms()[0] == "bandana" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected bandana to be a phonetic neighbor of banana, got %#v", res)
	}
}

func TestSimilarRunsNGramSearch(t *testing.T) {
	idx := buildTestIndex(t)
	res := idx.Similar("aple", 5, 0.6, 100)
	if len(res) == 0 {
		t.Fatal("expected at least one n-gram similarity match")
	}
}

func TestSnapshotRoundTrip(t *testing.T) {
	idx := buildTestIndex(t)
	var buf bytes.Buffer
	if err := idx.Save(&buf); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load(&buf, formatFn, 3)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if loaded.Len() != idx.Len() {
		t.Fatalf("expected %d terms, got %d", idx.Len(), loaded.Len())
	}
	exact := loaded.Exact("apple")
	if len(exact) != 1 {
		t.Fatal("expected round-tripped index to resolve exact lookups")
	}
}
