package japanese

import (
	"github.com/WeDontPanic/autocomplete/internal/ngramindex"
	"github.com/WeDontPanic/autocomplete/internal/order"
	"github.com/WeDontPanic/autocomplete/internal/phonetic"
	"github.com/WeDontPanic/autocomplete/internal/text"
	"github.com/WeDontPanic/autocomplete/internal/trie"
	"github.com/WeDontPanic/autocomplete/pkg/index"
)

// Index is the Japanese suggestion index: a multi-valued trie over
// kana/kanji/alternative readings (several readings can share one
// item, and one reading can be shared by several items), a flat term
// table, a kanji-alignment trie, and an optional romaji n-gram index.
type Index struct {
	trie        *trie.Multi
	items       []Item
	kanjiAlign  *trie.Multi
	ngram       *ngramindex.Index[[]uint32]
}

var _ index.SuggestionIndex = (*Index)(nil)
var _ index.KanjiReadingAlign = (*Index)(nil)
var _ index.NGIndexable = (*Index)(nil)

// Predictions returns up to limit items reachable by any reading
// prefixed with query, deduplicated by word id and ranked by
// frequency.
func (idx *Index) Predictions(query string, limit int) []index.EngineItem {
	topk := order.NewUniqueBoundedTopK[uint32, uint32](limit)
	idx.trie.VisitPrefix(query, func(_ string, ids []uint32) {
		for _, id := range ids {
			topk.Insert(id, id, uint16(idx.items[id].Frequency()*65535.0))
		}
	})
	return idx.collect(topk.Drain())
}

// Exact returns every item stored under query verbatim.
func (idx *Index) Exact(query string) []index.EngineItem {
	ids, ok := idx.trie.Get(query)
	if !ok {
		return nil
	}
	out := make([]index.EngineItem, 0, len(ids))
	for _, id := range ids {
		if item, ok := idx.GetWord(id); ok {
			out = append(out, item)
		}
	}
	return out
}

// GetWord resolves a word id to its EngineItem wrapper.
func (idx *Index) GetWord(id uint32) (index.EngineItem, bool) {
	if int(id) >= len(idx.items) {
		return index.EngineItem{}, false
	}
	return index.NewEngineItem(idx.items[id]), true
}

// SimilarTerms narrows candidates to readings sharing query's first
// character, then ranks by phonetic distance over the kana reading.
func (idx *Index) SimilarTerms(query string, limit int, maxDist uint32) []index.EngineItem {
	queryHash, ok := phonetic.NewJP(query)
	if !ok {
		return nil
	}
	prefix := firstRune(query)

	dists := make(map[uint32]uint32, limit*2)
	topk := order.NewUniqueBoundedTopK[uint32, uint32](limit)
	idx.trie.VisitPrefix(prefix, func(_ string, ids []uint32) {
		for _, id := range ids {
			hash, ok := idx.items[id].Hash()
			if !ok {
				continue
			}
			dist := queryHash.Dist(hash)
			if dist > maxDist {
				continue
			}
			dists[id] = dist
			topk.Insert(id, id, invertDist(dist))
		}
	})
	out := make([]index.EngineItem, 0, topk.Len())
	for _, s := range topk.Drain() {
		item, ok := idx.GetWord(s.Value)
		if !ok {
			continue
		}
		item.SetRelevance(uint16(dists[s.Value]))
		out = append(out, item)
	}
	return out
}

// AlignReading returns every item whose kanji-alignment trie entry is
// reachable from query.
func (idx *Index) AlignReading(query string) []index.EngineItem {
	seen := make(map[uint32]bool)
	var out []index.EngineItem
	idx.kanjiAlign.VisitSubtrie(query, func(_ string, ids []uint32) {
		for _, id := range ids {
			if seen[id] {
				continue
			}
			seen[id] = true
			if item, ok := idx.GetWord(id); ok {
				out = append(out, item)
			}
		}
	})
	return out
}

// Similar runs the romaji n-gram similarity search, if one was built.
func (idx *Index) Similar(query string, limit int, queryWeight float32, termLimit int) []index.EngineItem {
	if idx.ngram == nil {
		return nil
	}
	romaji := text.ToRomaji(query)
	qv, ok := idx.ngram.QueryVector(romaji)
	if !ok {
		return nil
	}
	matches := idx.ngram.FindWeighted(qv, termLimit, queryWeight)

	topk := order.NewBoundedTopK[[]uint32](limit)
	for _, m := range matches {
		topk.Insert(m.Payload, uint16(m.Similarity*1000))
	}
	seen := make(map[uint32]bool)
	var out []index.EngineItem
	for _, s := range topk.Drain() {
		for _, id := range s.Value {
			if seen[id] {
				continue
			}
			seen[id] = true
			item, ok := idx.GetWord(id)
			if !ok {
				continue
			}
			item.SetRelevance(s.Score)
			out = append(out, item)
		}
	}
	return out
}

// Len reports how many items the index holds.
func (idx *Index) Len() int { return len(idx.items) }

func (idx *Index) collect(scored []order.Scored[uint32]) []index.EngineItem {
	out := make([]index.EngineItem, 0, len(scored))
	for _, s := range scored {
		if item, ok := idx.GetWord(s.Value); ok {
			out = append(out, item)
		}
	}
	return out
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
