// Package extension implements the pluggable fallback stages a
// suggestion query runs after its primary prefix lookup: longest-prefix
// walk-back, phonetic-hash neighbors, n-gram similarity, kanji-reading
// alignment, and custom callbacks.
package extension

import (
	"github.com/WeDontPanic/autocomplete/pkg/index"
	"github.com/WeDontPanic/autocomplete/pkg/relevance"
)

// Query is the subset of SuggestionQuery extensions need: the raw
// query string and a way to re-rank a batch of items the same way the
// primary lookup did. Kept as an interface (rather than importing
// pkg/suggest directly) so pkg/suggest can import this package without
// a cycle.
type Query interface {
	QueryString() string
	OrderItems(items []index.EngineItem, calc relevance.Calc) []index.EngineItem
}

// Extension is one fallback stage in a suggestion pipeline.
type Extension interface {
	// Run executes the extension and returns its candidate items.
	// relWeight is the total weight the caller's relevance model was
	// configured with, for extensions that want to scale their own
	// contribution relative to it.
	Run(q Query, relWeight float64) []index.EngineItem
	// ShouldRun decides whether this extension fires at all, given how
	// many results the primary lookup (and any earlier extensions)
	// already produced.
	ShouldRun(alreadyFound int, q Query) bool
	Options() Options
}

// Options configures the shared knobs every extension exposes.
type Options struct {
	Enabled     bool
	Limit       int
	Threshold   int
	Weights     relevance.Weights
	MinQueryLen int
}

// DefaultOptions mirrors the upstream defaults: enabled, a threshold of
// 5 already-found results before skipping, a 30-item cap, equal
// weights, and no minimum query length.
func DefaultOptions() Options {
	return Options{
		Enabled:   true,
		Threshold: 5,
		Limit:     30,
		Weights:   relevance.DefaultWeights(),
	}
}

// relevanceCalc builds the relevance.Calc every extension's Run uses
// to score its candidates from opts' weights, with TotalWeight set to
// relWeight. Each Run passes relWeight already multiplied by its own
// opts.Weights.TotalWeight, so nested weighting composes.
func relevanceCalc(opts Options, relWeight float64) relevance.Calc {
	return relevance.NewCalc(opts.Weights).WithTotalWeight(relWeight)
}
