package engineconfig

import (
	"github.com/WeDontPanic/autocomplete/pkg/index"
	"github.com/WeDontPanic/autocomplete/pkg/suggest"
	"github.com/WeDontPanic/autocomplete/pkg/suggest/extension"
)

// NewQuery builds a suggest.Query over idx using c's relevance weights
// and the fallback extensions every query attaches by default:
// longest-prefix walk-back and phonetic similar-terms always, n-gram
// similarity and kanji-reading alignment only when idx implements the
// corresponding optional interface (the generic index skips kanji
// alignment). The generic index always implements the n-gram interface,
// so the n-gram extension is attached even when it was built without an
// n-gram component; its searches then return nothing.
func (c *Config) NewQuery(idx index.SuggestionIndex, queryStr string) *suggest.Query {
	q := suggest.NewQuery(idx, queryStr)
	q.Weights = c.RelevanceWeights()

	lp := extension.NewLongestPrefix(idx, c.Query.LongestPrefixMinLen, c.Query.LongestPrefixSteps)
	lp.SetOptions(c.ExtensionDefaults())
	q.AddExtension(lp)

	st := extension.NewSimilarTerms(idx, uint32(c.Query.MaxPhoneticDist))
	st.SetOptions(c.ExtensionDefaults())
	q.AddExtension(st)

	if ngIdx, ok := idx.(index.NGIndexable); ok {
		opts, simThreshold, queryWeight, termLimit := c.NGramOptions()
		ng := extension.NewNGram(ngIdx)
		ng.SetOptions(opts)
		ng.SimThreshold = simThreshold
		ng.QueryWeight = queryWeight
		ng.TermLimit = termLimit
		q.AddExtension(ng)
	}

	if alignIdx, ok := idx.(index.KanjiReadingAlign); ok {
		ka := extension.NewKanjiAlign(alignIdx)
		opts := c.ExtensionDefaults()
		opts.Weights.FreqWeight = c.Japanese.KanjiAlignFreqWeight
		ka.SetOptions(opts)
		q.AddExtension(ka)
	}

	return q
}

// NewTask builds a suggest.Task capped at c's configured default
// result limit.
func (c *Config) NewTask() *suggest.Task {
	return suggest.NewTask(c.Query.DefaultLimit)
}
