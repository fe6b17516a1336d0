package index

import (
	"fmt"

	"github.com/charmbracelet/log"

	"github.com/WeDontPanic/autocomplete/internal/ngramindex"
	"github.com/WeDontPanic/autocomplete/internal/trie"
)

// Builder accumulates terms for a generic Index. Insert then Build —
// no mutation is possible once Build has been called.
type Builder struct {
	trie   *trie.Single
	terms  []GenericItem
	ngram  *ngramindex.Index[uint32]
	format func(string) string
}

// NewBuilder creates an empty Builder. format normalizes a raw word
// before it becomes the trie key (e.g. text.Format or
// text.FormatJapanese composed with lowercasing). If ngramN > 0, an
// n-gram index is built alongside the trie for terms without spaces
// and with at most 15 runes, mirroring the upstream index's own
// eligibility cutoff for ngram indexing.
func NewBuilder(format func(string) string, ngramN int) *Builder {
	b := &Builder{trie: trie.NewSingle(), format: format}
	if ngramN > 0 {
		b.ngram = ngramindex.New[uint32](ngramN)
	}
	return b
}

// Insert adds word with the given frequency, returning its id. Returns
// ErrInvalidFrequency if frequency is outside [0, 1], or
// ErrDuplicateKey if the normalized word already exists.
func (b *Builder) Insert(word string, frequency float64) (uint32, error) {
	if frequency < 0 || frequency > 1 {
		return 0, fmt.Errorf("%w: %q has frequency %f", ErrInvalidFrequency, word, frequency)
	}
	key := b.format(word)
	id := uint32(len(b.terms))
	if !b.trie.Insert(key, id) {
		return 0, fmt.Errorf("%w: %q", ErrDuplicateKey, word)
	}
	b.terms = append(b.terms, NewGenericItem(word, id, frequency))

	if b.ngram != nil && !containsSpace(key) && runeLen(key) <= 15 {
		b.ngram.Insert(key, id)
	} else if b.ngram != nil {
		log.Debugf("skipping ngram indexing for %q: too long or contains a space", key)
	}
	return id, nil
}

// Build finalizes the Index.
func (b *Builder) Build() *Index {
	log.Debugf("built generic index: %d terms, ngram=%v", len(b.terms), b.ngram != nil)
	return &Index{trie: b.trie, terms: b.terms, ngram: b.ngram}
}

func containsSpace(s string) bool {
	for _, r := range s {
		if r == ' ' {
			return true
		}
	}
	return false
}

func runeLen(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
