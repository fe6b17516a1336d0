package text

// NGrams splits s into overlapping windows of n runes, left to right.
// Returns nil if s has fewer than n runes. Byte offsets are computed
// once up front so each window is a cheap substring slice.
func NGrams(s string, n int) []string {
	if n <= 0 {
		return nil
	}
	idx := runeByteOffsets(s)
	if len(idx) < n {
		return nil
	}
	windows := make([]string, 0, len(idx)-n+1)
	for pos := 0; pos+n <= len(idx); pos++ {
		start := idx[pos]
		var end int
		if pos+n == len(idx) {
			end = len(s)
		} else {
			end = idx[pos+n]
		}
		windows = append(windows, s[start:end])
	}
	return windows
}

func runeByteOffsets(s string) []int {
	offsets := make([]int, 0, len(s))
	for i := range s {
		offsets = append(offsets, i)
	}
	return offsets
}
