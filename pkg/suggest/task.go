package suggest

import (
	"github.com/charmbracelet/log"

	"github.com/WeDontPanic/autocomplete/internal/order"
	"github.com/WeDontPanic/autocomplete/pkg/index"
)

// Task runs several Queries together, merges their results with any
// custom entries, applies an optional filter and relevance modifier,
// and returns a single bounded, ranked list of outputs.
type Task struct {
	queries       []*Query
	customEntries []index.EngineItem
	limit         int
	debug         bool
	filter        func(index.Item) bool
	relMod        func(index.EngineItem, uint16) uint16
}

// NewTask creates a Task that returns at most limit outputs.
func NewTask(limit int) *Task {
	return &Task{limit: limit}
}

// SetFilter installs a predicate that excludes non-matching items from
// the final output.
func (t *Task) SetFilter(filter func(index.Item) bool) { t.filter = filter }

// SetRelevanceModifier installs a function that can rewrite an item's
// relevance right before insertion into the final result set.
func (t *Task) SetRelevanceModifier(relMod func(index.EngineItem, uint16) uint16) {
	t.relMod = relMod
}

// AddQuery adds a query to the task.
func (t *Task) AddQuery(q *Query) { t.queries = append(t.queries, q) }

// AddCustomEntries adds pre-built items to the final output, subject to
// the same filter and relevance modifier as query results.
func (t *Task) AddCustomEntries(entries []index.EngineItem) {
	t.customEntries = append(t.customEntries, entries...)
}

// Debug enables verbose per-query logging.
func (t *Task) Debug() *Task {
	t.debug = true
	return t
}

// Len reports how many queries are attached to the task.
func (t *Task) Len() int { return len(t.queries) }

// IsEmpty reports whether the task has no queries.
func (t *Task) IsEmpty() bool { return len(t.queries) == 0 }

// Search runs every query in order, skipping a query once its own
// threshold has already been met by prior queries' result counts,
// merges in custom entries, and returns the final ranked outputs.
func (t *Task) Search() []index.Output {
	out := order.NewUniqueBoundedTopK[index.Output, uint32](t.limit)
	added := 0

	for _, q := range t.queries {
		if q.Threshold > 0 && added >= q.Threshold {
			if t.debug {
				log.Debugf("skipping query %q: threshold %d already met by %d prior results", q.queryStr, q.Threshold, added)
			}
			continue
		}

		res := q.Search(t.limit)
		added += len(res)
		if t.debug {
			log.Debugf("query %q returned %d results", q.queryStr, len(res))
		}

		for _, item := range res {
			if !t.itemAllowed(item) {
				continue
			}
			item = t.applyRelMod(item)
			out.Insert(item.Key(), item.ToOutput(), item.Relevance())
		}
	}

	for _, item := range t.customEntries {
		if !t.itemAllowed(item) {
			continue
		}
		item = t.applyRelMod(item)
		out.Insert(item.Key(), item.ToOutput(), item.Relevance())
	}

	drained := out.Drain()
	results := make([]index.Output, len(drained))
	for i, s := range drained {
		// Drain yields descending score order (best first); the
		// upstream engine reverses its own ascending pop order to
		// reach the same result, so there's nothing further to flip
		// here.
		results[i] = s.Value
	}
	return results
}

func (t *Task) applyRelMod(item index.EngineItem) index.EngineItem {
	if t.relMod == nil {
		return item
	}
	item.SetRelevance(t.relMod(item, item.Relevance()))
	return item
}

func (t *Task) itemAllowed(item index.EngineItem) bool {
	if t.filter == nil {
		return true
	}
	return t.filter(item.Inner())
}
