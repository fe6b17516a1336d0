package extension

import (
	"testing"

	"github.com/WeDontPanic/autocomplete/internal/text"
	"github.com/WeDontPanic/autocomplete/pkg/index"
	"github.com/WeDontPanic/autocomplete/pkg/relevance"
)

func formatFn(s string) string { return string(text.Format(s)) }

func buildTestIndex(t *testing.T) *index.Index {
	t.Helper()
	b := index.NewBuilder(formatFn, 3)
	words := map[string]float64{
		"apple":   0.9,
		"apply":   0.3,
		"banana":  0.1,
		"bandana": 0.05,
	}
	for w, f := range words {
		if _, err := b.Insert(w, f); err != nil {
			t.Fatalf("insert %q: %v", w, err)
		}
	}
	return b.Build()
}

// fakeQuery is a minimal Query implementation for exercising extensions
// in isolation, without going through pkg/suggest.Query.
type fakeQuery struct {
	queryStr string
}

func (f fakeQuery) QueryString() string { return f.queryStr }

func (f fakeQuery) OrderItems(items []index.EngineItem, calc relevance.Calc) []index.EngineItem {
	for i := range items {
		strRel := items[i].Inner().StrRelevance(f.queryStr)
		items[i].SetRelevance(calc.Calc(items[i].Inner().Frequency(), strRel))
	}
	return items
}

func TestLongestPrefixFindsShorterPrefix(t *testing.T) {
	idx := buildTestIndex(t)
	ext := NewLongestPrefix(idx, 1, 5)
	q := fakeQuery{queryStr: "applez"}
	res := ext.Run(q, 1)
	if len(res) == 0 {
		t.Fatal("expected longest-prefix fallback to find matches after stripping trailing runes")
	}
}

func TestLongestPrefixShouldRunGatesOnThreshold(t *testing.T) {
	idx := buildTestIndex(t)
	ext := NewLongestPrefix(idx, 1, 5)
	q := fakeQuery{queryStr: "app"}
	if !ext.ShouldRun(0, q) {
		t.Fatal("expected extension to run when nothing found yet")
	}
	if ext.ShouldRun(100, q) {
		t.Fatal("expected extension to skip once threshold is exceeded")
	}
}

func TestSimilarTermsFindsPhoneticNeighbor(t *testing.T) {
	idx := buildTestIndex(t)
	ext := NewSimilarTerms(idx, 8)
	q := fakeQuery{queryStr: "banana"}
	res := ext.Run(q, 1)
	found := false
	for _, r := range res {
		if r.Inner().Terms()[0] == "bandana" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected bandana among phonetic neighbors, got %#v", res)
	}
}

func TestNGramFiltersBelowSimThreshold(t *testing.T) {
	idx := buildTestIndex(t)
	ext := NewNGram(idx)
	q := fakeQuery{queryStr: "aple"}
	aboveThreshold := make(map[uint32]bool)
	for _, r := range idx.Similar(q.queryStr, ext.Options().Limit, ext.QueryWeight, ext.TermLimit) {
		if r.Relevance() >= ext.SimThreshold {
			aboveThreshold[r.Key()] = true
		}
	}
	res := ext.Run(q, 1)
	for _, r := range res {
		if !aboveThreshold[r.Key()] {
			t.Fatalf("expected %v to be filtered out: its n-gram similarity is below the threshold", r.Inner().Terms())
		}
		if r.Relevance() == 0 {
			t.Fatal("expected every surviving match to carry a nonzero relevance")
		}
	}
}

func TestCustomRunsSuppliedFunction(t *testing.T) {
	idx := buildTestIndex(t)
	called := false
	ext := NewCustom(idx,
		func(q Query, idx index.SuggestionIndex, relWeight float64) []index.EngineItem {
			called = true
			return idx.Predictions(q.QueryString(), 1)
		},
		func(alreadyFound int, q Query) bool { return alreadyFound == 0 },
	)
	q := fakeQuery{queryStr: "app"}
	if !ext.ShouldRun(0, q) {
		t.Fatal("expected custom ShouldRun to delegate to supplied function")
	}
	ext.Run(q, 1)
	if !called {
		t.Fatal("expected Custom.Run to invoke the supplied runFn")
	}
}

func TestDefaultOptionsMatchUpstreamDefaults(t *testing.T) {
	opts := DefaultOptions()
	if !opts.Enabled || opts.Threshold != 5 || opts.Limit != 30 || opts.MinQueryLen != 0 {
		t.Fatalf("unexpected default options: %+v", opts)
	}
}
