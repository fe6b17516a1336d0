// Package order implements bounded top-k selection: keep only the k
// best-scoring items seen so far, in O(log k) per insertion rather than
// collecting everything and sorting at the end.
package order

import "container/heap"

// Scored is anything BoundedTopK can rank: a value plus the score it
// was ranked at.
type Scored[T any] struct {
	Value T
	Score uint16
}

// BoundedTopK keeps the k highest-scoring values inserted into it. It
// is a min-heap internally: the root is always the worst of the
// current top-k, so an incoming value only needs to beat the root to
// earn a spot, and eviction is a single O(log k) pop-push.
type BoundedTopK[T any] struct {
	limit int
	items scoredHeap[T]
}

// NewBoundedTopK creates a BoundedTopK that retains at most limit items.
func NewBoundedTopK[T any](limit int) *BoundedTopK[T] {
	return &BoundedTopK[T]{limit: limit}
}

// Insert offers value at score for inclusion in the top-k. Once the
// heap is full, value is only kept if it beats the current worst kept
// item.
func (b *BoundedTopK[T]) Insert(value T, score uint16) {
	if b.limit <= 0 {
		return
	}
	if len(b.items) < b.limit {
		heap.Push(&b.items, Scored[T]{Value: value, Score: score})
		return
	}
	if score <= b.items[0].Score {
		return
	}
	b.items[0] = Scored[T]{Value: value, Score: score}
	heap.Fix(&b.items, 0)
}

// Len reports how many items are currently kept.
func (b *BoundedTopK[T]) Len() int { return len(b.items) }

// Drain empties the heap and returns its contents in descending score
// order (best first).
func (b *BoundedTopK[T]) Drain() []Scored[T] {
	n := len(b.items)
	out := make([]Scored[T], n)
	for i := n - 1; i >= 0; i-- {
		out[i] = heap.Pop(&b.items).(Scored[T])
	}
	return out
}

type scoredHeap[T any] []Scored[T]

func (h scoredHeap[T]) Len() int            { return len(h) }
func (h scoredHeap[T]) Less(i, j int) bool  { return h[i].Score < h[j].Score }
func (h scoredHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scoredHeap[T]) Push(x interface{}) { *h = append(*h, x.(Scored[T])) }
func (h *scoredHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}
