package extension

import (
	"github.com/WeDontPanic/autocomplete/internal/order"
	"github.com/WeDontPanic/autocomplete/pkg/index"
)

// NGram falls back to n-gram vector-space similarity when the primary
// lookup and the cheaper fallbacks haven't found enough: it tolerates
// transpositions and typos a prefix or phonetic match would miss.
type NGram struct {
	opts          Options
	index         index.NGIndexable
	SimThreshold  uint16
	QueryWeight   float32
	TermLimit     int
}

var _ Extension = (*NGram)(nil)

// NewNGram creates an NGram extension with the upstream defaults: a
// 0.45 similarity threshold, a higher not-yet-enough-results
// threshold of 10 (n-gram search is comparatively expensive), a query
// weight of 0.6, and a cap of 2000 candidate documents inspected.
func NewNGram(idx index.NGIndexable) *NGram {
	opts := DefaultOptions()
	opts.Threshold = 10
	return &NGram{
		opts:         opts,
		index:        idx,
		SimThreshold: uint16(0.45 * 1000),
		QueryWeight:  0.6,
		TermLimit:    2000,
	}
}

func (e *NGram) SetOptions(o Options) { e.opts = o }

func (e *NGram) Run(q Query, relWeight float64) []index.EngineItem {
	relWeight *= e.opts.Weights.TotalWeight
	calc := relevanceCalc(e.opts, relWeight)

	topk := order.NewBoundedTopK[index.EngineItem](e.opts.Limit)
	for _, item := range e.index.Similar(q.QueryString(), e.opts.Limit, e.QueryWeight, e.TermLimit) {
		strRel := item.Relevance()
		if strRel < e.SimThreshold {
			continue
		}
		item.SetRelevance(calc.Calc(item.Inner().Frequency(), strRel))
		topk.Insert(item, item.Relevance())
	}
	out := make([]index.EngineItem, 0, topk.Len())
	for _, s := range topk.Drain() {
		out = append(out, s.Value)
	}
	return out
}

func (e *NGram) ShouldRun(alreadyFound int, _ Query) bool {
	return e.opts.Enabled && alreadyFound < e.opts.Threshold
}

func (e *NGram) Options() Options { return e.opts }
