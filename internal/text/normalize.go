// Package text implements the normalization and n-gram windowing rules
// shared by every index in the engine. Normalization is deliberately
// dumb: lowercase plus a fixed punctuation strip, never stemming or
// morphological analysis.
package text

import "strings"

// NormalizedKey is the lookup form a term is stored and queried under.
type NormalizedKey string

const sentinel = '§'

var basicReplacer = strings.NewReplacer(
	" ", "", "\t", "", "\n", "",
	",", "", ".", "", ";", "", ":", "",
	"!", "", "?", "", "'", "", "\"", "",
	"-", "", "_", "",
)

var japaneseReplacer = strings.NewReplacer(
	" ", "", "\t", "", "\n", "",
	",", "", ".", "", ";", "", ":", "",
	"!", "", "?", "", "'", "", "\"", "",
	"-", "", "_", "",
	"、", "", "。", "", "・", "",
)

// Format normalizes a raw surface form into its lookup key: punctuation
// stripped, lowercased. It is the form every non-Japanese index
// stores its terms under.
func Format(raw string) NormalizedKey {
	return NormalizedKey(strings.ToLower(basicReplacer.Replace(raw)))
}

// FormatJapanese normalizes a raw surface form using the wider
// punctuation set needed for Japanese text (adds the ideographic comma,
// full stop, and middle dot on top of Format's set, which already
// strips the ASCII "!"; the full-width "！" is not stripped).
func FormatJapanese(raw string) NormalizedKey {
	return NormalizedKey(strings.ToLower(japaneseReplacer.Replace(raw)))
}

// Pad returns word surrounded by k copies of the sentinel rune on each
// side. Used by the n-gram index to guarantee short terms still produce
// at least one full-width window.
func Pad(word string, k int) string {
	if k <= 0 {
		return word
	}
	pad := strings.Repeat(string(sentinel), k)
	var b strings.Builder
	b.Grow(len(pad)*2 + len(word))
	b.WriteString(pad)
	b.WriteString(word)
	b.WriteString(pad)
	return b.String()
}
