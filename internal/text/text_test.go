package text

import "testing"

func TestFormatLowercasesAndStripsPunctuation(t *testing.T) {
	got := Format("Hello, World!")
	if got != "helloworld" {
		t.Fatalf("got %q, want %q", got, "helloworld")
	}
}

func TestFormatIsIdempotent(t *testing.T) {
	once := Format("Don't Stop")
	twice := Format(string(once))
	if once != twice {
		t.Fatalf("Format not idempotent: %q vs %q", once, twice)
	}
}

func TestFormatJapaneseStripsWiderPunctuationSet(t *testing.T) {
	got := FormatJapanese("こんにちは、世界。")
	if got != "こんにちは世界" {
		t.Fatalf("got %q, want %q", got, "こんにちは世界")
	}
}

func TestPadAddsSentinelsOnBothSides(t *testing.T) {
	got := Pad("ab", 2)
	want := "§§ab§§"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestPadZeroReturnsInputUnchanged(t *testing.T) {
	if got := Pad("ab", 0); got != "ab" {
		t.Fatalf("got %q, want %q", got, "ab")
	}
}

func TestFoldKanaConvertsKatakanaToHiragana(t *testing.T) {
	got := FoldKana("サクラ")
	if got != "さくら" {
		t.Fatalf("got %q, want %q", got, "さくら")
	}
}

func TestFoldKanaLeavesHiraganaUnchanged(t *testing.T) {
	if got := FoldKana("さくら"); got != "さくら" {
		t.Fatalf("got %q, want %q", got, "さくら")
	}
}

func TestFoldKanaLeavesKanjiUnchanged(t *testing.T) {
	if got := FoldKana("桜"); got != "桜" {
		t.Fatalf("got %q, want %q", got, "桜")
	}
}

func TestToRomajiConvertsPlainMorae(t *testing.T) {
	got := ToRomaji("さくら")
	if got != "sakura" {
		t.Fatalf("got %q, want %q", got, "sakura")
	}
}

func TestToRomajiHandlesDigraphs(t *testing.T) {
	got := ToRomaji("きょう")
	if got != "kyou" {
		t.Fatalf("got %q, want %q", got, "kyou")
	}
}

func TestToRomajiHandlesSokuonGemination(t *testing.T) {
	got := ToRomaji("がっこう")
	if got != "gakkou" {
		t.Fatalf("got %q, want %q", got, "gakkou")
	}
}

func TestToRomajiAcceptsKatakanaInput(t *testing.T) {
	got := ToRomaji("サクラ")
	if got != "sakura" {
		t.Fatalf("got %q, want %q", got, "sakura")
	}
}
