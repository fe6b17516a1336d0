// Package suggest orchestrates a suggestion query — a primary prefix
// lookup plus a pipeline of fallback extensions — and the task that
// runs several queries together and merges their results into a single
// bounded, ranked output.
package suggest

import (
	"github.com/charmbracelet/log"

	"github.com/WeDontPanic/autocomplete/internal/order"
	"github.com/WeDontPanic/autocomplete/internal/strdiff"
	"github.com/WeDontPanic/autocomplete/pkg/index"
	"github.com/WeDontPanic/autocomplete/pkg/relevance"
	"github.com/WeDontPanic/autocomplete/pkg/suggest/extension"
)

// Query runs a primary prediction lookup against one index, then a
// configurable chain of fallback extensions.
type Query struct {
	index      index.SuggestionIndex
	queryStr   string
	Weights    relevance.Weights
	Threshold  int
	extensions []extension.Extension
}

var _ extension.Query = (*Query)(nil)

// NewQuery creates a Query over idx for the given query string, with
// default (equal) relevance weights and no threshold gate.
func NewQuery(idx index.SuggestionIndex, queryStr string) *Query {
	return &Query{
		index:    idx,
		queryStr: queryStr,
		Weights:  relevance.DefaultWeights(),
	}
}

// QueryString returns the raw query text.
func (q *Query) QueryString() string { return q.queryStr }

// AddExtension appends a fallback stage to the query's pipeline.
func (q *Query) AddExtension(ext extension.Extension) {
	q.extensions = append(q.extensions, ext)
}

// Search runs the primary lookup, ranks it, then runs every extension
// whose ShouldRun gate passes, merging everything into a single
// unique bounded top-k of size limit.
func (q *Query) Search(limit int) []index.EngineItem {
	predictions := q.index.Predictions(q.queryStr, limit)
	foundSoFar := len(predictions)

	calc := relevance.NewCalc(q.Weights)
	ordered := q.OrderItems(predictions, calc)

	queue := order.NewUniqueBoundedTopK[index.EngineItem, uint32](limit)
	for _, item := range ordered {
		queue.Insert(item.Key(), item, item.Relevance())
	}

	for _, ext := range q.extensions {
		if !ext.ShouldRun(foundSoFar, q) {
			continue
		}
		res := ext.Run(q, q.Weights.TotalWeight)
		if len(res) == 0 {
			log.Warnf("extension produced no candidates for query %q", q.queryStr)
			continue
		}
		foundSoFar += len(res)
		for _, item := range res {
			queue.Insert(item.Key(), item, item.Relevance())
		}
	}

	out := make([]index.EngineItem, 0, queue.Len())
	for _, s := range queue.Drain() {
		out = append(out, s.Value)
	}
	return out
}

// OrderItems scores each item's string relevance against the query and
// sets its final relevance via calc, switching to a parallel scorer
// for large batches (see internal/strdiff).
func (q *Query) OrderItems(items []index.EngineItem, calc relevance.Calc) []index.EngineItem {
	strdiff.ScoreInPlace(items, q.queryStr, func(item index.EngineItem, query string) uint16 {
		return calc.Calc(item.Inner().Frequency(), item.Inner().StrRelevance(query))
	}, func(item *index.EngineItem, relevance uint16) {
		item.SetRelevance(relevance)
	})
	return items
}
