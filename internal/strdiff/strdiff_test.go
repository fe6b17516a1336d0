package strdiff

import "testing"

func TestScoreInPlaceSequentialAndParallelAgree(t *testing.T) {
	items := make([]int, 400)
	for i := range items {
		items[i] = i
	}
	scores := make([]uint16, len(items))
	ScoreInPlace(items, "a long comparison string", func(v int, _ string) uint16 {
		return uint16(v % 1000)
	}, func(v *int, s uint16) {
		scores[*v] = s
	})
	for i, v := range items {
		if scores[v] != uint16(i%1000) {
			t.Fatalf("mismatch at %d: got %d", i, scores[v])
		}
	}
}

func TestShouldParallelizeThresholds(t *testing.T) {
	cases := []struct {
		n    int
		cmp  string
		want bool
	}{
		{299, "short", false},
		{300, "short", true},
		{49, "this is long enough", false},
		{50, "this is long enough", true},
		{50, "hi", false},
	}
	for _, c := range cases {
		if got := shouldParallelize(c.n, c.cmp); got != c.want {
			t.Errorf("shouldParallelize(%d, %q) = %v, want %v", c.n, c.cmp, got, c.want)
		}
	}
}
