package extension

import (
	"github.com/WeDontPanic/autocomplete/internal/order"
	"github.com/WeDontPanic/autocomplete/pkg/index"
)

// SimilarTerms falls back to the index's phonetic-hash neighbor search
// when the primary prefix lookup comes up dry: candidates whose
// pronunciation is close to the query's, even if their spelling isn't
// a prefix match.
type SimilarTerms struct {
	opts       Options
	index      index.SuggestionIndex
	MaxStrDist uint32
}

var _ Extension = (*SimilarTerms)(nil)

// NewSimilarTerms creates a SimilarTerms extension with the given
// maximum phonetic distance.
func NewSimilarTerms(idx index.SuggestionIndex, maxStrDist uint32) *SimilarTerms {
	return &SimilarTerms{opts: DefaultOptions(), index: idx, MaxStrDist: maxStrDist}
}

func (e *SimilarTerms) SetOptions(o Options) { e.opts = o }

func (e *SimilarTerms) Run(q Query, relWeight float64) []index.EngineItem {
	relWeight *= e.opts.Weights.TotalWeight
	calc := relevanceCalc(e.opts, relWeight)

	similar := e.index.SimilarTerms(q.QueryString(), e.opts.Limit*10, e.MaxStrDist)

	topk := order.NewBoundedTopK[index.EngineItem](e.opts.Limit)
	for _, item := range similar {
		// item.Relevance() currently carries the raw phonetic distance
		// (see index.SimilarTerms); fold it into the string-relevance
		// score so phonetically close AND lexically close candidates
		// rank highest, then recompute the final relevance.
		phoneticDist := item.Relevance()
		strRel := saturatingSub(item.Inner().StrRelevance(q.QueryString()), phoneticDist*5)
		item.SetRelevance(calc.Calc(item.Inner().Frequency(), strRel))
		topk.Insert(item, item.Relevance())
	}
	out := make([]index.EngineItem, 0, topk.Len())
	for _, s := range topk.Drain() {
		out = append(out, s.Value)
	}
	return out
}

func (e *SimilarTerms) ShouldRun(alreadyFound int, _ Query) bool {
	return e.opts.Enabled && alreadyFound < e.opts.Threshold
}

func (e *SimilarTerms) Options() Options { return e.opts }

func saturatingSub(a, b uint16) uint16 {
	if b > a {
		return 0
	}
	return a - b
}
