package index

import (
	"encoding/gob"
	"fmt"
	"io"
)

// entry is the on-disk unit for a generic index snapshot: just enough
// to rebuild the term table and re-derive the trie and n-gram index
// deterministically, rather than serializing those structures
// byte-for-byte.
type entry struct {
	Word      string
	Frequency float64
}

// Save writes idx's terms to w. Word ids are implied by slice order, so
// Load reconstructs identical ids as long as the same format function
// is supplied.
func (idx *Index) Save(w io.Writer) error {
	entries := make([]entry, len(idx.terms))
	for i, t := range idx.terms {
		entries[i] = entry{Word: t.Word(), Frequency: t.Frequency()}
	}
	if err := gob.NewEncoder(w).Encode(entries); err != nil {
		return fmt.Errorf("index: encode snapshot: %w", err)
	}
	return nil
}

// Load reads a snapshot written by Save and rebuilds an Index with it,
// using format to normalize each word and ngramN to decide whether to
// rebuild the n-gram component (0 to skip it).
func Load(r io.Reader, format func(string) string, ngramN int) (*Index, error) {
	var entries []entry
	if err := gob.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("index: decode snapshot: %w", err)
	}
	b := NewBuilder(format, ngramN)
	for _, e := range entries {
		if _, err := b.Insert(e.Word, e.Frequency); err != nil {
			return nil, fmt.Errorf("index: rebuild from snapshot: %w", err)
		}
	}
	return b.Build(), nil
}
