// Package japanese implements the Japanese-script suggestion index: a
// kana/kanji/alternative-reading prefix trie, a kanji-alignment trie,
// and an optional romaji n-gram index, alongside the generic index's
// relevance and extension machinery.
package japanese

import (
	"strings"

	"github.com/WeDontPanic/autocomplete/internal/phonetic"
	"github.com/WeDontPanic/autocomplete/internal/strmetric"
	"github.com/WeDontPanic/autocomplete/pkg/index"
)

// Item is a single Japanese dictionary entry: its kana reading, an
// optional kanji spelling, any alternative readings, a corpus
// frequency, and a phonetic hash computed over the kana reading.
type Item struct {
	wordID      uint32
	kana        string
	kanji       *string
	alternative []string
	frequency   float64
	hash        *phonetic.JPHash
}

// NewItem builds a Japanese Item, computing its phonetic hash from kana.
func NewItem(wordID uint32, kana string, kanji *string, alternative []string, frequency float64) Item {
	item := Item{
		wordID:      wordID,
		kana:        kana,
		kanji:       kanji,
		alternative: alternative,
		frequency:   frequency,
	}
	if h, ok := phonetic.NewJP(kana); ok {
		item.hash = &h
	}
	return item
}

func (it Item) Frequency() float64 { return it.frequency }
func (it Item) WordID() uint32     { return it.wordID }
func (it Item) Kana() string        { return it.kana }
func (it Item) Kanji() *string      { return it.kanji }
func (it Item) Alternative() []string { return it.alternative }

// Hash returns the item's phonetic hash, if the kana reading produced
// one.
func (it Item) Hash() (phonetic.JPHash, bool) {
	if it.hash == nil {
		return 0, false
	}
	return *it.hash, true
}

// Terms returns the kana reading plus the kanji spelling, if any —
// every string this item is reachable under besides its alternatives.
func (it Item) Terms() []string {
	out := []string{it.kana}
	if it.kanji != nil {
		out = append(out, *it.kanji)
	}
	return out
}

func (it Item) ToOutput() index.Output {
	return index.Output{Primary: it.kana, Secondary: it.kanji}
}

// StrRelevance scores the best of the kana reading, the kanji
// spelling, and every alternative reading against query, taking the
// highest of the three so a query matching any written form ranks
// the item well. A surface that itself starts with query earns a +10
// boost on top of strmetric's own prefix score; alternative-reading
// hits are penalized by -300 (saturating to 0) since they're a weaker
// signal of intent than a direct kana/kanji match.
func (it Item) StrRelevance(query string) uint16 {
	best := scoreSurface(it.kana, query, false)
	if it.kanji != nil {
		if r := scoreSurface(*it.kanji, query, false); r > best {
			best = r
		}
	}
	for _, alt := range it.alternative {
		if r := scoreSurface(alt, query, true); r > best {
			best = r
		}
	}
	return best
}

func scoreSurface(surface, query string, isAlternative bool) uint16 {
	score := strmetric.Relevance(surface, query)
	if strings.HasPrefix(strings.ToLower(surface), strings.ToLower(query)) {
		score = saturatingAdd(score, 10)
	}
	if isAlternative {
		score = saturatingSub(score, 300)
	}
	return score
}

func saturatingAdd(a, b uint16) uint16 {
	sum := uint32(a) + uint32(b)
	if sum > 0xFFFF {
		return 0xFFFF
	}
	return uint16(sum)
}

func saturatingSub(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}
