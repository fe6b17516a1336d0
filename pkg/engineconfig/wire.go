package engineconfig

import (
	"github.com/WeDontPanic/autocomplete/pkg/relevance"
	"github.com/WeDontPanic/autocomplete/pkg/suggest/extension"
)

// RelevanceWeights converts the config's relevance section into the
// Weights value a Query or Calc is constructed from.
func (c *Config) RelevanceWeights() relevance.Weights {
	return relevance.Weights{
		StrWeight:   c.Relevance.StrWeight,
		FreqWeight:  c.Relevance.FreqWeight,
		TotalWeight: c.Relevance.TotalWeight,
	}
}

// ExtensionDefaults builds the shared Options every extension starts
// from, before any per-extension override (e.g. KanjiAlign's frequency
// down-weighting).
func (c *Config) ExtensionDefaults() extension.Options {
	return extension.Options{
		Enabled:   true,
		Limit:     c.Query.ExtensionLimit,
		Threshold: c.Query.ExtensionThreshold,
		Weights:   c.RelevanceWeights(),
	}
}

// NGramOptions derives the n-gram extension's own tuning knobs from
// config, on top of ExtensionDefaults.
func (c *Config) NGramOptions() (opts extension.Options, simThreshold uint16, queryWeight float32, termLimit int) {
	opts = c.ExtensionDefaults()
	opts.Threshold = c.NGram.Threshold
	simThreshold = uint16(c.NGram.SimThreshold * 1000)
	queryWeight = float32(c.NGram.QueryWeight)
	termLimit = c.NGram.TermLimit
	return
}
