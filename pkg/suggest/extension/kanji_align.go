package extension

import "github.com/WeDontPanic/autocomplete/pkg/index"

// KanjiAlign falls back to the kanji-alignment trie, matching partial
// kanji readings that don't appear as a full kana/kanji key. Frequency
// is deliberately down-weighted (0.01) since alignment matches are a
// weaker signal of relevance than a direct reading match.
type KanjiAlign struct {
	opts  Options
	index index.KanjiReadingAlign
}

var _ Extension = (*KanjiAlign)(nil)

// NewKanjiAlign creates a KanjiAlign extension over idx.
func NewKanjiAlign(idx index.KanjiReadingAlign) *KanjiAlign {
	opts := DefaultOptions()
	opts.Weights.FreqWeight = 0.01
	return &KanjiAlign{opts: opts, index: idx}
}

func (e *KanjiAlign) SetOptions(o Options) { e.opts = o }

func (e *KanjiAlign) Run(q Query, relWeight float64) []index.EngineItem {
	relWeight *= e.opts.Weights.TotalWeight
	calc := relevanceCalc(e.opts, relWeight)

	var out []index.EngineItem
	for _, item := range e.index.AlignReading(q.QueryString()) {
		strRel := item.Inner().StrRelevance(q.QueryString())
		item.SetRelevance(calc.Calc(item.Inner().Frequency(), strRel))
		out = append(out, item)
	}
	return q.OrderItems(out, calc)
}

func (e *KanjiAlign) ShouldRun(alreadyFound int, q Query) bool {
	return e.opts.Enabled &&
		alreadyFound < e.opts.Threshold &&
		len(q.QueryString()) >= e.opts.MinQueryLen
}

func (e *KanjiAlign) Options() Options { return e.opts }
