package suggest

import (
	"testing"

	"github.com/WeDontPanic/autocomplete/internal/text"
	"github.com/WeDontPanic/autocomplete/pkg/index"
	"github.com/WeDontPanic/autocomplete/pkg/suggest/extension"
)

func formatFn(s string) string { return string(text.Format(s)) }

func buildTestIndex(t *testing.T) *index.Index {
	t.Helper()
	b := index.NewBuilder(formatFn, 3)
	words := map[string]float64{
		"apple":       0.9,
		"application": 0.4,
		"apply":       0.3,
		"banana":      0.1,
		"bandana":     0.05,
	}
	for w, f := range words {
		if _, err := b.Insert(w, f); err != nil {
			t.Fatalf("insert %q: %v", w, err)
		}
	}
	return b.Build()
}

func TestQuerySearchReturnsPrefixMatches(t *testing.T) {
	idx := buildTestIndex(t)
	q := NewQuery(idx, "app")
	res := q.Search(10)
	if len(res) != 3 {
		t.Fatalf("expected 3 prefix matches, got %d", len(res))
	}
}

func TestQuerySearchDeduplicatesAcrossExtensions(t *testing.T) {
	idx := buildTestIndex(t)
	q := NewQuery(idx, "apple")
	q.AddExtension(extension.NewLongestPrefix(idx, 1, 5))

	res := q.Search(10)
	seen := make(map[string]bool)
	for _, item := range res {
		primary := item.ToOutput().Primary
		if seen[primary] {
			t.Fatalf("expected no duplicate outputs, got repeated %q", primary)
		}
		seen[primary] = true
	}
}

func TestQuerySearchRespectsLimit(t *testing.T) {
	idx := buildTestIndex(t)
	q := NewQuery(idx, "a")
	res := q.Search(2)
	if len(res) > 2 {
		t.Fatalf("expected at most 2 results, got %d", len(res))
	}
}

func TestTaskSearchMergesQueriesAndDedups(t *testing.T) {
	idx := buildTestIndex(t)
	task := NewTask(10)
	task.AddQuery(NewQuery(idx, "app"))
	task.AddQuery(NewQuery(idx, "ban"))

	outs := task.Search()
	seen := make(map[string]bool)
	for _, o := range outs {
		if seen[o.Primary] {
			t.Fatalf("expected unique outputs, got duplicate %q", o.Primary)
		}
		seen[o.Primary] = true
	}
	if len(outs) != 5 {
		t.Fatalf("expected all 5 dictionary words across both queries, got %d: %+v", len(outs), outs)
	}
}

func TestTaskSearchAppliesFilter(t *testing.T) {
	idx := buildTestIndex(t)
	task := NewTask(10)
	task.AddQuery(NewQuery(idx, "app"))
	task.SetFilter(func(item index.Item) bool {
		return item.Terms()[0] != "apply"
	})

	outs := task.Search()
	for _, o := range outs {
		if o.Primary == "apply" {
			t.Fatal("expected filtered-out word to be absent from results")
		}
	}
}

func TestTaskSearchAppliesRelevanceModifier(t *testing.T) {
	idx := buildTestIndex(t)
	task := NewTask(10)
	task.AddQuery(NewQuery(idx, "app"))
	called := false
	task.SetRelevanceModifier(func(_ index.EngineItem, rel uint16) uint16 {
		called = true
		return rel
	})
	task.Search()
	if !called {
		t.Fatal("expected relevance modifier to be invoked")
	}
}

func TestTaskSearchThresholdGating(t *testing.T) {
	idx := buildTestIndex(t)
	task := NewTask(10)
	first := NewQuery(idx, "app")
	first.Threshold = 0
	second := NewQuery(idx, "xyznomatch")
	second.Threshold = 1
	task.AddQuery(first)
	task.AddQuery(second)

	// second has a threshold of 1 and first already produced results, so
	// second should be skipped entirely — harmless here since it matches
	// nothing anyway, but exercises the gating path.
	outs := task.Search()
	if len(outs) == 0 {
		t.Fatal("expected first query's results to survive")
	}
}

func TestTaskSearchIncludesCustomEntries(t *testing.T) {
	idx := buildTestIndex(t)
	item, ok := idx.GetWord(0)
	if !ok {
		t.Fatal("expected word 0 to exist")
	}
	item.SetRelevance(500)

	task := NewTask(10)
	task.AddCustomEntries([]index.EngineItem{item})
	outs := task.Search()
	if len(outs) != 1 {
		t.Fatalf("expected the single custom entry, got %d", len(outs))
	}
}

func TestTaskDebugDoesNotChangeResults(t *testing.T) {
	idx := buildTestIndex(t)
	plain := NewTask(10)
	plain.AddQuery(NewQuery(idx, "app"))

	debugged := NewTask(10).Debug()
	debugged.AddQuery(NewQuery(idx, "app"))

	plainOut, debugOut := plain.Search(), debugged.Search()
	if len(plainOut) != len(debugOut) {
		t.Fatalf("expected Debug() to only add logging, got %d vs %d results", len(plainOut), len(debugOut))
	}
}
