// Package index defines the shared contract every suggestion index
// (generic and Japanese) implements, plus the EngineItem wrapper used
// to carry a relevance score alongside a matched item through ranking.
package index

// Output is a single suggestion as returned to a caller: a primary
// surface form plus an optional secondary form (e.g. a kanji spelling
// alongside its kana reading).
type Output struct {
	Primary   string
	Secondary *string
}

// Item is anything a suggestion index can return: a dictionary entry
// with a stable id, a corpus frequency share, and a way to score itself
// against a query string.
type Item interface {
	Frequency() float64
	WordID() uint32
	StrRelevance(query string) uint16
	Terms() []string
	ToOutput() Output
}

// EngineItem pairs an Item with the relevance score it was ranked at.
// The score is mutable after construction because extensions compute a
// provisional relevance (e.g. from a phonetic distance) then rescale it
// through the shared relevance model before insertion into a result
// heap.
type EngineItem struct {
	item      Item
	relevance uint16
}

// NewEngineItem wraps item with an initial relevance of 0.
func NewEngineItem(item Item) EngineItem {
	return EngineItem{item: item}
}

// Inner returns the wrapped Item.
func (e EngineItem) Inner() Item { return e.item }

// Relevance returns the current relevance score.
func (e EngineItem) Relevance() uint16 { return e.relevance }

// SetRelevance overwrites the relevance score.
func (e *EngineItem) SetRelevance(v uint16) { e.relevance = v }

// ToOutput converts the wrapped item to its output representation.
func (e EngineItem) ToOutput() Output { return e.item.ToOutput() }

// Key returns a value suitable for de-duplicating EngineItems: the
// wrapped item's word id, which is unique per entry in its index.
func (e EngineItem) Key() uint32 { return e.item.WordID() }
