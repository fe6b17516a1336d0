package trie

import "testing"

func TestSingleInsertAndGet(t *testing.T) {
	s := NewSingle()
	if !s.Insert("apple", 1) {
		t.Fatal("expected first insert to succeed")
	}
	if s.Insert("apple", 2) {
		t.Fatal("expected duplicate key insert to be rejected")
	}
	id, ok := s.Get("apple")
	if !ok || id != 1 {
		t.Fatalf("expected original id 1 to survive, got %d, ok=%v", id, ok)
	}
}

func TestSingleVisitPrefixStopsEarly(t *testing.T) {
	s := NewSingle()
	s.Insert("apple", 1)
	s.Insert("application", 2)
	s.Insert("apply", 3)
	s.Insert("banana", 4)

	visited := 0
	s.VisitPrefix("app", func(key string, id uint32) bool {
		visited++
		return false
	})
	if visited != 1 {
		t.Fatalf("expected traversal to stop after the first visit, got %d", visited)
	}
}

func TestSingleVisitPrefixCoversAllMatches(t *testing.T) {
	s := NewSingle()
	s.Insert("apple", 1)
	s.Insert("application", 2)
	s.Insert("apply", 3)
	s.Insert("banana", 4)

	seen := make(map[string]bool)
	s.VisitPrefix("app", func(key string, id uint32) bool {
		seen[key] = true
		return true
	})
	for _, want := range []string{"apple", "application", "apply"} {
		if !seen[want] {
			t.Errorf("expected %q to be visited", want)
		}
	}
	if seen["banana"] {
		t.Error("banana should not match prefix app")
	}
}

func TestSingleLen(t *testing.T) {
	s := NewSingle()
	s.Insert("a", 1)
	s.Insert("b", 2)
	if s.Len() != 2 {
		t.Fatalf("expected len 2, got %d", s.Len())
	}
}

func TestMultiInsertAccumulatesIDs(t *testing.T) {
	m := NewMulti()
	m.Insert("さくら", 1)
	m.Insert("さくら", 2)

	ids, ok := m.Get("さくら")
	if !ok || len(ids) != 2 || ids[0] != 1 || ids[1] != 2 {
		t.Fatalf("expected [1 2], got %v, ok=%v", ids, ok)
	}
}

func TestMultiLen(t *testing.T) {
	m := NewMulti()
	m.Insert("さくら", 1)
	m.Insert("さくら", 2)
	m.Insert("やま", 3)
	if m.Len() != 2 {
		t.Fatalf("expected 2 distinct keys, got %d", m.Len())
	}
}

func TestMultiVisitPrefixVisitsEachKeyOnce(t *testing.T) {
	m := NewMulti()
	m.Insert("さくら", 1)
	m.Insert("さくらんぼ", 2)
	m.Insert("やま", 3)

	visits := 0
	m.VisitPrefix("さくら", func(key string, ids []uint32) {
		visits++
	})
	if visits != 2 {
		t.Fatalf("expected 2 keys under prefix さくら, got %d", visits)
	}
}
