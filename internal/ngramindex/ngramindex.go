// Package ngramindex implements a sparse n-gram vector-space index used
// for approximate matching when a prefix lookup comes up empty: terms
// are represented as sparse vectors over an n-gram dimension space, and
// similarity is the weighted Dice coefficient between a query vector
// and a candidate's stored vector.
package ngramindex

import (
	"sort"

	"github.com/WeDontPanic/autocomplete/internal/text"
)

// denseDocFrequencyCutoff excludes n-grams that appear in too many
// documents from a query's candidate search: a dimension this common
// carries almost no discriminating power and scanning its whole
// posting list dominates query cost for no benefit.
const denseDocFrequencyCutoff = 1000

type termEntry struct {
	dim int32
}

// Index maps documents of payload type P (uint32 for the Latin index,
// []uint32 for the Japanese index, where several readings collapse
// onto one romaji key) to sparse n-gram vectors, and answers weighted
// Dice similarity queries against them.
type Index[P any] struct {
	n            int
	terms        map[string]*termEntry
	docFrequency map[int32]*int
	postings     map[int32][]int32
	nextDim      int32
	vectors      map[int32]sparseVector
	payload      map[int32]P
	nextDoc      int32
}

type sparseVector map[int32]float32

// New creates an empty n-gram index using n-sized windows.
func New[P any](n int) *Index[P] {
	return &Index[P]{
		n:            n,
		terms:        make(map[string]*termEntry),
		docFrequency: make(map[int32]*int),
		postings:     make(map[int32][]int32),
		vectors:      make(map[int32]sparseVector),
		payload:      make(map[int32]P),
	}
}

// Insert adds term to the index (padded with n sentinels on each side
// before windowing, per the builder-side convention) associated with
// payload. Returns false if term has fewer runes than n, in which case
// nothing is indexed — callers fall back to exact/prefix matching for
// terms too short to produce an n-gram.
func (idx *Index[P]) Insert(term string, payload P) bool {
	if len([]rune(term)) < idx.n {
		return false
	}
	grams := text.NGrams(text.Pad(term, idx.n), idx.n)
	if grams == nil {
		return false
	}
	vec := idx.buildVector(grams, true)
	doc := idx.nextDoc
	idx.nextDoc++
	idx.vectors[doc] = vec
	idx.payload[doc] = payload
	for dim := range vec {
		idx.postings[dim] = append(idx.postings[dim], doc)
	}
	return true
}

// QueryVector builds the sparse vector for a query string, padding
// with n-1 sentinels per side (the query-side convention). Returns
// false if query has fewer runes than n, the same length floor Insert
// applies to indexed terms.
func (idx *Index[P]) QueryVector(query string) (sparseVector, bool) {
	if len([]rune(query)) < idx.n {
		return nil, false
	}
	grams := text.NGrams(text.Pad(query, idx.n-1), idx.n)
	if grams == nil {
		return nil, false
	}
	return idx.buildVector(grams, false), true
}

// buildVector turns a list of n-grams into a sparse term-frequency
// vector. When grow is true, unseen n-grams are assigned a new
// dimension and their document frequency is bumped; queries never grow
// the dimension space, they simply ignore n-grams that were never
// indexed.
func (idx *Index[P]) buildVector(grams []string, grow bool) sparseVector {
	vec := make(sparseVector, len(grams))
	seenThisDoc := make(map[int32]bool, len(grams))
	for _, g := range grams {
		entry, ok := idx.terms[g]
		if !ok {
			if !grow {
				continue
			}
			entry = &termEntry{dim: idx.nextDim}
			idx.nextDim++
			idx.terms[g] = entry
			zero := 0
			idx.docFrequency[entry.dim] = &zero
		}
		if grow && !seenThisDoc[entry.dim] {
			*idx.docFrequency[entry.dim]++
			seenThisDoc[entry.dim] = true
		}
		vec[entry.dim]++
	}
	return vec
}

// Match is one candidate document returned by Find/FindWeighted.
type Match[P any] struct {
	Payload    P
	Similarity float32
}

// Find returns indexed documents sharing at least one sufficiently
// rare dimension with query, scored by the unweighted Dice
// coefficient. termLimit caps how many candidate documents are
// inspected (scored), not how many of query's dimensions are
// considered; documents past the cap are silently dropped. The
// returned order is arbitrary — ranking happens in the consumer via a
// bounded heap.
func (idx *Index[P]) Find(query sparseVector, termLimit int) []Match[P] {
	return idx.find(query, termLimit, func(a, b sparseVector) float32 {
		return dice(a, b)
	})
}

// FindWeighted is Find but using the weighted Dice coefficient, letting
// the caller bias similarity toward the query's length (w=1), the
// candidate's length (w=0), or an even split (w=0.5).
func (idx *Index[P]) FindWeighted(query sparseVector, termLimit int, w float32) []Match[P] {
	return idx.find(query, termLimit, func(a, b sparseVector) float32 {
		return diceWeighted(a, b, w)
	})
}

// find walks query's rarest-first dimensions' posting lists, scoring
// each newly-seen document as it's encountered, and stops as soon as
// termLimit distinct documents have been inspected — an early-exit
// budget on actual work done, not a precision guarantee.
func (idx *Index[P]) find(query sparseVector, termLimit int, score func(a, b sparseVector) float32) []Match[P] {
	dims := idx.lightDims(query)
	if len(dims) == 0 {
		return nil
	}

	seen := make(map[int32]bool)
	var out []Match[P]
	for _, dim := range dims {
		for _, doc := range idx.postings[dim] {
			if seen[doc] {
				continue
			}
			seen[doc] = true
			out = append(out, Match[P]{
				Payload:    idx.payload[doc],
				Similarity: score(query, idx.vectors[doc]),
			})
			if termLimit > 0 && len(out) >= termLimit {
				return out
			}
		}
	}
	return out
}

// lightDims returns query's dimensions that are rare enough in the
// corpus to be worth scanning (doc frequency below the cutoff), rarest
// first, so find visits the most selective posting lists before
// termLimit is exhausted.
func (idx *Index[P]) lightDims(query sparseVector) []int32 {
	type dimDF struct {
		dim int32
		df  int
	}
	light := make([]dimDF, 0, len(query))
	for dim := range query {
		df, ok := idx.docFrequency[dim]
		if !ok {
			continue
		}
		if *df < denseDocFrequencyCutoff {
			light = append(light, dimDF{dim, *df})
		}
	}
	sort.Slice(light, func(i, j int) bool { return light[i].df < light[j].df })
	out := make([]int32, len(light))
	for i, d := range light {
		out[i] = d.dim
	}
	return out
}

func dice(a, b sparseVector) float32 {
	return diceWeighted(a, b, 0.5)
}

func diceWeighted(a, b sparseVector, w float32) float32 {
	overlap := float32(0)
	for dim := range a {
		if _, ok := b[dim]; ok {
			overlap++
		}
	}
	overlap *= 2
	aMult := w * 2
	bMult := (1 - w) * 2
	denom := float32(len(a))*aMult + float32(len(b))*bMult
	if denom == 0 {
		return 0
	}
	return overlap / denom
}

// Len reports how many documents are indexed.
func (idx *Index[P]) Len() int { return len(idx.vectors) }
