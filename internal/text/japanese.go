package text

// FoldKana normalizes katakana to hiragana so that readings entered in
// either script collapse to the same trie key. Non-katakana runes pass
// through unchanged; this is script folding, not romanization — the
// reading trie stores and queries readings in kana (romaji appears only
// in the Japanese n-gram index, see ToRomaji).
func FoldKana(s string) string {
	runes := []rune(s)
	out := make([]rune, len(runes))
	for i, r := range runes {
		if r >= katakanaStart && r <= katakanaEnd {
			out[i] = r - katakanaToHiraganaOffset
			continue
		}
		out[i] = r
	}
	return string(out)
}

const (
	katakanaStart            = 'ァ'
	katakanaEnd              = 'ヶ'
	katakanaToHiraganaOffset = 'ァ' - 'ぁ'
)
