// Package phonetic implements fixed-width fingerprints for approximate
// phonetic matching. A Hash packs a short string into a 64-bit value
// where each byte encodes the phonetic class of one grapheme; Hamming
// distance between two hashes then approximates how differently the
// two strings would sound, with confusable sounds (b/p, d/t, c/k/q...)
// folded onto the same class so they don't inflate the distance.
package phonetic

import "math/bits"

// Hash is a 64-bit phonetic fingerprint of a short Latin string.
type Hash uint64

// maxLen is the longest input New will hash; the generic index item
// only attaches a hash to words of at most this many bytes.
const maxLen = 16

// classBits is how many bits of the 64-bit hash each of the
// first 8 graphemes gets.
const classBits = 8
const maxGraphemes = 64 / classBits

// New computes the phonetic hash of word. Returns false if word is
// empty or longer than the supported length, mirroring the Rust
// engine's `(word.len() <= 16).then(...)` guard on when a hash is
// computed at all.
func New(word string) (Hash, bool) {
	if len(word) == 0 || len(word) > maxLen {
		return 0, false
	}
	var h uint64
	i := 0
	for _, r := range word {
		if i >= maxGraphemes {
			break
		}
		class := latinClass(r)
		h |= uint64(class) << (uint(i) * classBits)
		i++
	}
	return Hash(h), true
}

// Dist returns the Hamming distance between two hashes: the number of
// differing bits. Symmetric and zero iff the hashes are identical.
func (h Hash) Dist(other Hash) uint32 {
	return uint32(bits.OnesCount64(uint64(h) ^ uint64(other)))
}

// latinClass maps a rune to an 8-bit phonetic class code. Letters that
// tend to sound alike or be confused in casual spelling share a class:
// {b,p}, {c,k,q}, {d,t}, {f,v}, {g,j}, {m,n}, {s,z,x}, vowels grouped
// loosely by height. Anything outside a-z falls back to its lowercased
// byte value so non-Latin runes still contribute some signal rather
// than collapsing to zero.
func latinClass(r rune) byte {
	switch r {
	case 'a', 'A':
		return 1
	case 'e', 'E':
		return 2
	case 'i', 'I', 'y', 'Y':
		return 3
	case 'o', 'O':
		return 4
	case 'u', 'U':
		return 5
	case 'b', 'B', 'p', 'P':
		return 10
	case 'c', 'C', 'k', 'K', 'q', 'Q':
		return 11
	case 'd', 'D', 't', 'T':
		return 12
	case 'f', 'F', 'v', 'V':
		return 13
	case 'g', 'G', 'j', 'J':
		return 14
	case 'l', 'L', 'r', 'R':
		return 15
	case 'm', 'M', 'n', 'N':
		return 16
	case 's', 'S', 'z', 'Z', 'x', 'X':
		return 17
	case 'h', 'H':
		return 18
	case 'w', 'W':
		return 19
	default:
		if r >= 0 && r < 256 {
			return byte(r)
		}
		return byte(r % 256)
	}
}
