package extension

import "github.com/WeDontPanic/autocomplete/pkg/index"

// Custom wraps caller-supplied run/should-run functions so callers can
// bolt on an ad hoc fallback stage (e.g. a static synonym table) without
// writing a new Extension type.
type Custom struct {
	opts  Options
	index index.SuggestionIndex
	runFn func(q Query, idx index.SuggestionIndex, relWeight float64) []index.EngineItem
	shouldFn func(alreadyFound int, q Query) bool
}

var _ Extension = (*Custom)(nil)

// NewCustom creates a Custom extension. runFn produces candidates;
// shouldFn decides whether to run at all.
func NewCustom(
	idx index.SuggestionIndex,
	runFn func(q Query, idx index.SuggestionIndex, relWeight float64) []index.EngineItem,
	shouldFn func(alreadyFound int, q Query) bool,
) *Custom {
	return &Custom{opts: DefaultOptions(), index: idx, runFn: runFn, shouldFn: shouldFn}
}

func (e *Custom) SetOptions(o Options) { e.opts = o }

func (e *Custom) Run(q Query, relWeight float64) []index.EngineItem {
	relWeight *= e.opts.Weights.TotalWeight
	return e.runFn(q, e.index, relWeight)
}

func (e *Custom) ShouldRun(alreadyFound int, q Query) bool {
	return e.shouldFn(alreadyFound, q)
}

func (e *Custom) Options() Options { return e.opts }
