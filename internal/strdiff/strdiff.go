// Package strdiff decides whether a batch of items is worth scoring in
// parallel and runs the scoring function either way, so callers always
// get identical results regardless of which path ran.
package strdiff

import (
	"runtime"
	"sync"
)

// shouldParallelize mirrors the upstream heuristic: large batches
// always go parallel, and a batch of at least 50 also does once the
// comparison string itself is non-trivial (over 5 bytes) — a short
// comparison string makes each item's scoring function cheap enough
// that goroutine overhead would dominate.
func shouldParallelize(itemCount int, compareStr string) bool {
	return itemCount >= 300 || (len(compareStr) > 5 && itemCount >= 50)
}

// ScoreInPlace computes score(item, compareStr) for every item in
// items and applies it via apply, choosing a sequential or a
// worker-pool path based on shouldParallelize. Both paths produce
// identical results — the choice only affects wall-clock time, never
// output order or content.
func ScoreInPlace[T any](items []T, compareStr string, score func(T, string) uint16, apply func(*T, uint16)) {
	if !shouldParallelize(len(items), compareStr) {
		for i := range items {
			apply(&items[i], score(items[i], compareStr))
		}
		return
	}

	workers := runtime.GOMAXPROCS(0)
	if workers > len(items) {
		workers = len(items)
	}
	if workers < 1 {
		workers = 1
	}

	chunk := (len(items) + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < len(items); start += chunk {
		end := start + chunk
		if end > len(items) {
			end = len(items)
		}
		wg.Add(1)
		go func(start, end int) {
			defer wg.Done()
			for i := start; i < end; i++ {
				apply(&items[i], score(items[i], compareStr))
			}
		}(start, end)
	}
	wg.Wait()
}
