package wordlist

import (
	"strings"
	"testing"
)

func TestEnglishFilterFoldsCase(t *testing.T) {
	keep := FilterForLang("EN")
	for _, word := range []string{"cloud", "Cloud", "STORM"} {
		if !keep(word) {
			t.Fatalf("expected %q to be kept", word)
		}
	}
	for _, word := range []string{"", "café", "it's", "sky-high", "a|b", "x1"} {
		if keep(word) {
			t.Fatalf("expected %q to be dropped", word)
		}
	}
}

func TestOtherLanguagesKeepTierSafeWords(t *testing.T) {
	keep := FilterForLang("de")
	if !keep("straße") {
		t.Fatalf("expected non-ASCII word to be kept")
	}
	for _, word := range []string{"", "a|b", "two words", strings.Repeat("z", MaxLineLength+1)} {
		if keep(word) {
			t.Fatalf("expected %q to be dropped", word)
		}
	}
}

func TestUniqueKeepsFirstOccurrence(t *testing.T) {
	got := Unique([]string{"sky", "rain", "sky", "hail", "rain"})
	want := []string{"sky", "rain", "hail"}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
}
