package phonetic

// JPHash is the Japanese-script counterpart to Hash: a 64-bit
// fingerprint over a kana reading, folding katakana onto hiragana
// first so script choice never affects the distance between two
// readings.
type JPHash uint64

const maxKanaRunes = maxGraphemes

// NewJP computes the phonetic hash of a kana reading. Returns false for
// empty input or input with no recognizable kana, mirroring jpeudex's
// optional construction for too-short or unsupported strings.
func NewJP(kana string) (JPHash, bool) {
	if len(kana) == 0 {
		return 0, false
	}
	var h uint64
	i := 0
	matched := false
	for _, r := range kana {
		if i >= maxKanaRunes {
			break
		}
		class, ok := kanaClass(r)
		if !ok {
			continue
		}
		matched = true
		h |= uint64(class) << (uint(i) * classBits)
		i++
	}
	if !matched {
		return 0, false
	}
	return JPHash(h), true
}

// Dist returns the Hamming distance between two Japanese phonetic
// hashes.
func (h JPHash) Dist(other JPHash) uint32 {
	return uint32(popcount64(uint64(h) ^ uint64(other)))
}

func popcount64(v uint64) int {
	count := 0
	for v != 0 {
		v &= v - 1
		count++
	}
	return count
}

// kanaClass folds a kana rune (hiragana or katakana) onto a consonant
// row / vowel column class, so e.g. か and が (differing only by
// voicing) land close together, and all of か/き/く/け/こ share the
// k-row's high bits while the vowel distinguishes the low bits.
func kanaClass(r rune) (byte, bool) {
	folded := foldKanaRune(r)
	rc, ok := kanaRowCol[folded]
	if !ok {
		return 0, false
	}
	return rc[0]<<4 | rc[1], true
}

func foldKanaRune(r rune) rune {
	if r >= 'ァ' && r <= 'ヶ' {
		return r - ('ァ' - 'ぁ')
	}
	return r
}

// kanaRowCol maps each hiragana rune to (consonant row, vowel column).
// Voiced/semi-voiced variants share their unvoiced row so voicing
// differences contribute less to the overall distance than a change of
// vowel or row would.
var kanaRowCol = map[rune][2]byte{
	'あ': {0, 0}, 'い': {0, 1}, 'う': {0, 2}, 'え': {0, 3}, 'お': {0, 4},
	'か': {1, 0}, 'き': {1, 1}, 'く': {1, 2}, 'け': {1, 3}, 'こ': {1, 4},
	'が': {1, 0}, 'ぎ': {1, 1}, 'ぐ': {1, 2}, 'げ': {1, 3}, 'ご': {1, 4},
	'さ': {2, 0}, 'し': {2, 1}, 'す': {2, 2}, 'せ': {2, 3}, 'そ': {2, 4},
	'ざ': {2, 0}, 'じ': {2, 1}, 'ず': {2, 2}, 'ぜ': {2, 3}, 'ぞ': {2, 4},
	'た': {3, 0}, 'ち': {3, 1}, 'つ': {3, 2}, 'て': {3, 3}, 'と': {3, 4},
	'だ': {3, 0}, 'ぢ': {3, 1}, 'づ': {3, 2}, 'で': {3, 3}, 'ど': {3, 4},
	'な': {4, 0}, 'に': {4, 1}, 'ぬ': {4, 2}, 'ね': {4, 3}, 'の': {4, 4},
	'は': {5, 0}, 'ひ': {5, 1}, 'ふ': {5, 2}, 'へ': {5, 3}, 'ほ': {5, 4},
	'ば': {5, 0}, 'び': {5, 1}, 'ぶ': {5, 2}, 'べ': {5, 3}, 'ぼ': {5, 4},
	'ぱ': {5, 0}, 'ぴ': {5, 1}, 'ぷ': {5, 2}, 'ぺ': {5, 3}, 'ぽ': {5, 4},
	'ま': {6, 0}, 'み': {6, 1}, 'む': {6, 2}, 'め': {6, 3}, 'も': {6, 4},
	'や': {7, 0}, 'ゆ': {7, 2}, 'よ': {7, 4},
	'ら': {8, 0}, 'り': {8, 1}, 'る': {8, 2}, 'れ': {8, 3}, 'ろ': {8, 4},
	'わ': {9, 0}, 'を': {9, 4}, 'ん': {10, 0},
	'ゃ': {7, 0}, 'ゅ': {7, 2}, 'ょ': {7, 4}, 'っ': {11, 0}, 'ー': {12, 0},
}
