package index

import (
	"github.com/WeDontPanic/autocomplete/internal/phonetic"
	"github.com/WeDontPanic/autocomplete/internal/strmetric"
)

// GenericItem is a single dictionary entry in a generic (Latin-script)
// index: its surface word, corpus frequency, and — for short enough
// words — a phonetic hash used by the similar-terms fallback.
type GenericItem struct {
	wordID    uint32
	word      string
	frequency float64
	hash      *phonetic.Hash
}

// NewGenericItem builds a GenericItem, computing its phonetic hash iff
// word is at most 16 bytes long.
func NewGenericItem(word string, wordID uint32, frequency float64) GenericItem {
	item := GenericItem{wordID: wordID, word: word, frequency: frequency}
	if len(word) <= 16 {
		if h, ok := phonetic.New(word); ok {
			item.hash = &h
		}
	}
	return item
}

func (g GenericItem) Frequency() float64 { return g.frequency }
func (g GenericItem) WordID() uint32     { return g.wordID }
func (g GenericItem) Word() string       { return g.word }

// Hash returns the item's phonetic hash, if one was computed.
func (g GenericItem) Hash() (phonetic.Hash, bool) {
	if g.hash == nil {
		return 0, false
	}
	return *g.hash, true
}

func (g GenericItem) Terms() []string { return []string{g.word} }

func (g GenericItem) ToOutput() Output { return Output{Primary: g.word} }

// StrRelevance scores this item's word against query using the shared
// prefix/edit-distance metric.
func (g GenericItem) StrRelevance(query string) uint16 {
	return strmetric.Relevance(g.word, query)
}
