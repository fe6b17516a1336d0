package ngramindex

import "testing"

func TestInsertTooShortReturnsFalse(t *testing.T) {
	idx := New[uint32](3)
	if idx.Insert("hi", 1) {
		t.Error("expected Insert to reject a term shorter than n runes even after padding would extend it")
	}
}

func TestQueryVectorMatchesInsertedTerm(t *testing.T) {
	idx := New[uint32](3)
	if !idx.Insert("homesick", 42) {
		t.Fatal("expected insert to succeed")
	}

	qv, ok := idx.QueryVector("homesick")
	if !ok {
		t.Fatal("expected query vector to build")
	}

	matches := idx.Find(qv, 0)
	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Payload != 42 {
		t.Errorf("expected payload 42, got %v", matches[0].Payload)
	}
	if matches[0].Similarity <= 0 {
		t.Errorf("expected positive similarity for identical term, got %f", matches[0].Similarity)
	}
}

func TestFindTermLimitCapsDocumentsInspectedNotDimensions(t *testing.T) {
	idx := New[uint32](3)
	words := []string{"homesick", "homestead", "homework", "homebound", "homegrown"}
	for i, w := range words {
		idx.Insert(w, uint32(i))
	}

	qv, _ := idx.QueryVector("homesick")
	uncapped := idx.Find(qv, 0)
	if len(uncapped) != len(words) {
		t.Fatalf("expected all %d documents to match without a cap, got %d", len(words), len(uncapped))
	}

	capped := idx.Find(qv, 2)
	if len(capped) != 2 {
		t.Fatalf("expected termLimit to cap the number of documents inspected at 2, got %d", len(capped))
	}
}

func TestFindScoresCloserTermsHigher(t *testing.T) {
	idx := New[uint32](3)
	idx.Insert("homesick", 1)
	idx.Insert("telephone", 2)

	qv, _ := idx.QueryVector("homesick")
	matches := idx.Find(qv, 0)

	var simHome, simTel float32
	for _, m := range matches {
		switch m.Payload {
		case 1:
			simHome = m.Similarity
		case 2:
			simTel = m.Similarity
		}
	}
	if simHome <= simTel {
		t.Errorf("expected homesick to score higher against itself than telephone: home=%f tel=%f", simHome, simTel)
	}
}
