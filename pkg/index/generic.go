package index

import (
	"github.com/WeDontPanic/autocomplete/internal/ngramindex"
	"github.com/WeDontPanic/autocomplete/internal/order"
	"github.com/WeDontPanic/autocomplete/internal/phonetic"
	"github.com/WeDontPanic/autocomplete/internal/trie"
)

// Index is a generic (Latin-script) suggestion index: a prefix trie
// over normalized words, a flat term table, and an optional n-gram
// index for approximate similarity search.
type Index struct {
	trie  *trie.Single
	terms []GenericItem
	ngram *ngramindex.Index[uint32]
}

var _ SuggestionIndex = (*Index)(nil)
var _ NGIndexable = (*Index)(nil)

// Predictions returns up to limit items keyed with query as a prefix,
// ranked by frequency via a bounded top-k so only O(log limit) work is
// spent per candidate rather than collecting and sorting everything.
func (idx *Index) Predictions(query string, limit int) []EngineItem {
	topk := order.NewBoundedTopK[uint32](limit)
	idx.trie.VisitPrefix(query, func(_ string, id uint32) bool {
		freq := idx.terms[id].Frequency()
		topk.Insert(id, frequencyScore(freq))
		return true
	})
	return idx.collect(topk.Drain())
}

// Exact returns the item stored under query verbatim, if any.
func (idx *Index) Exact(query string) []EngineItem {
	id, ok := idx.trie.Get(query)
	if !ok {
		return nil
	}
	item, ok := idx.GetWord(id)
	if !ok {
		return nil
	}
	return []EngineItem{item}
}

// GetWord resolves a word id to its EngineItem wrapper.
func (idx *Index) GetWord(id uint32) (EngineItem, bool) {
	if int(id) >= len(idx.terms) {
		return EngineItem{}, false
	}
	return NewEngineItem(idx.terms[id]), true
}

// SimilarTerms narrows candidates to those sharing query's first
// character, then ranks by phonetic distance, discarding anything
// farther than maxDist or lacking a phonetic hash (words over 16
// bytes never get one).
func (idx *Index) SimilarTerms(query string, limit int, maxDist uint32) []EngineItem {
	if len(query) == 0 || len(query) > 16 {
		return nil
	}
	queryHash, ok := phonetic.New(query)
	if !ok {
		return nil
	}

	prefix := firstRune(query)
	dists := make(map[uint32]uint32, limit*2)
	topk := order.NewBoundedTopK[uint32](limit)
	idx.trie.VisitPrefix(prefix, func(_ string, id uint32) bool {
		hash, ok := idx.terms[id].Hash()
		if !ok {
			return true
		}
		dist := queryHash.Dist(hash)
		if dist > maxDist {
			return true
		}
		dists[id] = dist
		// Smaller distance is better; BoundedTopK keeps the highest
		// score, so invert the distance for ranking purposes only.
		topk.Insert(id, invertDist(dist))
		return true
	})
	out := make([]EngineItem, 0, topk.Len())
	for _, s := range topk.Drain() {
		item, ok := idx.GetWord(s.Value)
		if !ok {
			continue
		}
		// The relevance field here carries the raw phonetic distance,
		// not a score — callers (the similar-terms extension) use it
		// to discount string relevance before the real relevance calc.
		item.SetRelevance(uint16(dists[s.Value]))
		out = append(out, item)
	}
	return out
}

// Similar runs an n-gram vector-space similarity search against query,
// returning matches above no fixed threshold — callers (the ngram
// extension) apply their own cutoff. If the index was built without an
// n-gram component, returns nil.
func (idx *Index) Similar(query string, limit int, queryWeight float32, termLimit int) []EngineItem {
	if idx.ngram == nil {
		return nil
	}
	qv, ok := idx.ngram.QueryVector(query)
	if !ok {
		return nil
	}
	matches := idx.ngram.FindWeighted(qv, termLimit, queryWeight)

	topk := order.NewBoundedTopK[uint32](limit)
	for _, m := range matches {
		topk.Insert(m.Payload, uint16(m.Similarity*1000))
	}
	out := make([]EngineItem, 0, topk.Len())
	for _, s := range topk.Drain() {
		item, ok := idx.GetWord(s.Value)
		if !ok {
			continue
		}
		item.SetRelevance(s.Score)
		out = append(out, item)
	}
	return out
}

// Len reports how many terms the index holds.
func (idx *Index) Len() int { return len(idx.terms) }

func (idx *Index) collect(scored []order.Scored[uint32]) []EngineItem {
	out := make([]EngineItem, 0, len(scored))
	for _, s := range scored {
		item, ok := idx.GetWord(s.Value)
		if !ok {
			continue
		}
		out = append(out, item)
	}
	return out
}

// frequencyScore maps a [0,1] frequency onto a uint16 score so it can
// drive a BoundedTopK ordered by "most frequent wins".
func frequencyScore(freq float64) uint16 {
	return uint16(freq * 65535.0)
}

func invertDist(dist uint32) uint16 {
	if dist > 65535 {
		return 0
	}
	return 65535 - uint16(dist)
}

func firstRune(s string) string {
	for i, r := range s {
		if i == 0 {
			return string(r)
		}
	}
	return s
}
