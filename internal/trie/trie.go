// Package trie wraps go-patricia's radix trie with the two payload
// shapes the engine needs: a single id per key (the generic index's
// primary lookup) and multiple ids per key (Japanese readings, kanji
// alignment, and any other many-to-one mapping).
package trie

import "github.com/tchap/go-patricia/v2/patricia"

// Single maps normalized keys to exactly one term id.
type Single struct {
	t *patricia.Trie
}

// NewSingle creates an empty Single trie.
func NewSingle() *Single {
	return &Single{t: patricia.NewTrie()}
}

// Insert adds key -> id. Returns false if key is already present,
// leaving the existing mapping untouched — callers decide whether a
// collision is an error (see index.Builder).
func (s *Single) Insert(key string, id uint32) bool {
	if _, ok := s.t.Get(patricia.Prefix(key)).(uint32); ok {
		return false
	}
	return s.t.Insert(patricia.Prefix(key), id)
}

// Get returns the id stored under key, if any.
func (s *Single) Get(key string) (uint32, bool) {
	v := s.t.Get(patricia.Prefix(key))
	if v == nil {
		return 0, false
	}
	id, ok := v.(uint32)
	return id, ok
}

// VisitPrefix calls fn for every key in the trie with the given prefix,
// including the prefix itself if it is a key. Traversal stops early if
// fn returns false.
func (s *Single) VisitPrefix(prefix string, fn func(key string, id uint32) bool) {
	stop := false
	_ = s.t.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		if stop {
			return nil
		}
		id, ok := item.(uint32)
		if !ok {
			return nil
		}
		if !fn(string(p), id) {
			stop = true
		}
		return nil
	})
}

// Len reports the number of entries visited from the root.
func (s *Single) Len() int {
	n := 0
	_ = s.t.Visit(func(_ patricia.Prefix, _ patricia.Item) error {
		n++
		return nil
	})
	return n
}

// Multi maps normalized keys to a set of term ids, accumulating ids on
// repeated inserts under the same key.
type Multi struct {
	t *patricia.Trie
}

// NewMulti creates an empty Multi trie.
func NewMulti() *Multi {
	return &Multi{t: patricia.NewTrie()}
}

// Insert appends id to the list stored under key, creating the entry if
// it doesn't exist yet.
func (m *Multi) Insert(key string, id uint32) {
	existing := m.t.Get(patricia.Prefix(key))
	if ids, ok := existing.([]uint32); ok {
		m.t.Delete(patricia.Prefix(key))
		m.t.Insert(patricia.Prefix(key), append(ids, id))
		return
	}
	m.t.Insert(patricia.Prefix(key), []uint32{id})
}

// Get returns the ids stored under key, if any.
func (m *Multi) Get(key string) ([]uint32, bool) {
	v := m.t.Get(patricia.Prefix(key))
	if v == nil {
		return nil, false
	}
	ids, ok := v.([]uint32)
	return ids, ok
}

// VisitPrefix calls fn for every key in the trie with the given prefix.
func (m *Multi) VisitPrefix(prefix string, fn func(key string, ids []uint32)) {
	_ = m.t.VisitSubtree(patricia.Prefix(prefix), func(p patricia.Prefix, item patricia.Item) error {
		ids, ok := item.([]uint32)
		if !ok {
			return nil
		}
		fn(string(p), ids)
		return nil
	})
}

// VisitSubtrie visits the subtrie rooted at prefix; it is the same
// traversal as VisitPrefix, so a key equal to prefix is included. Used
// by kanji-alignment lookups, where the query itself need not be a
// stored key.
func (m *Multi) VisitSubtrie(prefix string, fn func(key string, ids []uint32)) {
	m.VisitPrefix(prefix, fn)
}

// Len reports the number of keys stored in the trie.
func (m *Multi) Len() int {
	n := 0
	_ = m.t.Visit(func(_ patricia.Prefix, _ patricia.Item) error {
		n++
		return nil
	})
	return n
}
