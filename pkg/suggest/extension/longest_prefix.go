package extension

import (
	"github.com/WeDontPanic/autocomplete/internal/order"
	"github.com/WeDontPanic/autocomplete/pkg/index"
)

// LongestPrefix repeatedly strips the last rune off the query and
// retries the primary prediction lookup, so a query that overshoots
// (typed one rune too many) still finds the intended prefix's
// candidates. Stops after maxSteps strips or once minWordLen is
// reached.
type LongestPrefix struct {
	opts       Options
	index      index.SuggestionIndex
	MinWordLen int
	MaxSteps   int
}

var _ Extension = (*LongestPrefix)(nil)

// NewLongestPrefix creates a LongestPrefix extension over idx.
func NewLongestPrefix(idx index.SuggestionIndex, minWordLen, maxSteps int) *LongestPrefix {
	return &LongestPrefix{opts: DefaultOptions(), index: idx, MinWordLen: minWordLen, MaxSteps: maxSteps}
}

// SetOptions overrides the extension's options (e.g. to change its
// limit or weights before first use).
func (e *LongestPrefix) SetOptions(o Options) { e.opts = o }

func (e *LongestPrefix) Run(q Query, relWeight float64) []index.EngineItem {
	relWeight *= e.opts.Weights.TotalWeight

	found := e.findWithLongestPrefix(q.QueryString())
	calc := relevanceCalc(e.opts, relWeight)
	ordered := q.OrderItems(found, calc)

	topk := order.NewBoundedTopK[index.EngineItem](e.opts.Limit)
	for _, item := range ordered {
		topk.Insert(item, item.Relevance())
	}
	out := make([]index.EngineItem, 0, topk.Len())
	for _, s := range topk.Drain() {
		out = append(out, s.Value)
	}
	return out
}

func (e *LongestPrefix) findWithLongestPrefix(input string) []index.EngineItem {
	if input == "" {
		return nil
	}

	query := input
	steps := 0
	var out []index.EngineItem
	seen := make(map[uint32]bool, e.opts.Limit)

	for {
		if steps >= e.MaxSteps || len(out) >= e.opts.Limit {
			return out
		}

		res := e.index.Predictions(query, e.opts.Limit)
		for _, item := range res {
			key := item.Key()
			if seen[key] {
				continue
			}
			seen[key] = true
			out = append(out, item)
		}

		query = stripLastRune(query)
		queryLen := runeCount(query)
		if queryLen < e.MinWordLen || queryLen == 0 {
			return out
		}
		steps++
	}
}

func (e *LongestPrefix) ShouldRun(alreadyFound int, _ Query) bool {
	return e.opts.Enabled && alreadyFound < e.opts.Threshold
}

func (e *LongestPrefix) Options() Options { return e.opts }

func stripLastRune(s string) string {
	runes := []rune(s)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func runeCount(s string) int {
	n := 0
	for range s {
		n++
	}
	return n
}
