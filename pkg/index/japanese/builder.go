package japanese

import (
	"github.com/charmbracelet/log"

	"github.com/WeDontPanic/autocomplete/internal/ngramindex"
	"github.com/WeDontPanic/autocomplete/internal/text"
	"github.com/WeDontPanic/autocomplete/internal/trie"
)

// Builder accumulates Japanese items. Unlike the generic Builder, a
// reading collision is not an error — two items legitimately sharing a
// kana reading is the common case, so the trie is multi-valued and
// AddItem simply appends.
type Builder struct {
	trie       *trie.Multi
	items      []Item
	kanjiAlign *trie.Multi
	ngramN     int
	ngMap      map[string]map[uint32]bool
}

// NewBuilder creates an empty Builder. If ngramN > 0, a romaji n-gram
// index is built alongside the reading trie.
func NewBuilder(ngramN int) *Builder {
	return &Builder{
		trie:       trie.NewMulti(),
		kanjiAlign: trie.NewMulti(),
		ngramN:     ngramN,
		ngMap:      make(map[string]map[uint32]bool),
	}
}

// AddItem inserts item, indexing it under its kana reading, its kanji
// spelling (if any), and every alternative reading. Returns the new
// item's id.
func (b *Builder) AddItem(item Item) uint32 {
	id := uint32(len(b.items))

	b.trie.Insert(text.FoldKana(item.Kana()), id)
	if k := item.Kanji(); k != nil {
		b.trie.Insert(*k, id)
	}
	for _, alt := range item.Alternative() {
		b.trie.Insert(alt, id)
	}

	if b.ngramN > 0 {
		b.insertNG(item.Kana(), id)
	}

	b.items = append(b.items, item)
	return id
}

// AddKanjiAlign registers readings that should resolve to id through
// the kanji-alignment trie (e.g. partial on'yomi/kun'yomi readings
// that don't appear as a full kana/kanji key).
func (b *Builder) AddKanjiAlign(readings []string, id uint32) {
	for _, r := range readings {
		b.kanjiAlign.Insert(r, id)
	}
}

func (b *Builder) insertNG(kana string, id uint32) {
	romaji := text.ToRomaji(kana)
	set, ok := b.ngMap[romaji]
	if !ok {
		set = make(map[uint32]bool)
		b.ngMap[romaji] = set
	}
	set[id] = true
}

// Build finalizes the Index.
func (b *Builder) Build() *Index {
	var ngram *ngramindex.Index[[]uint32]
	if b.ngramN > 0 {
		ngram = ngramindex.New[[]uint32](b.ngramN)
		for romaji, set := range b.ngMap {
			ids := make([]uint32, 0, len(set))
			for id := range set {
				ids = append(ids, id)
			}
			ngram.Insert(romaji, ids)
		}
	}
	log.Debugf("built japanese index: %d items, %d kanji-align entries, ngram=%v", len(b.items), b.kanjiAlign.Len(), ngram != nil)
	return &Index{
		trie:       b.trie,
		items:      b.items,
		kanjiAlign: b.kanjiAlign,
		ngram:      ngram,
	}
}
