package wordlist

import "strings"

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// FilterForLang returns the filter the dictionary builder applies for lang.
// Every filter rejects words that would break the word|score tier format.
func FilterForLang(lang string) FilterFunc {
	switch strings.ToLower(lang) {
	case "en":
		return keepEnglishLetters
	default:
		return keepTierSafe
	}
}

// keepEnglishLetters accepts ASCII letters of either case, since typed
// answers are compared after the builder lowercases them.
func keepEnglishLetters(word string) bool {
	if word == "" {
		return false
	}
	for i := 0; i < len(word); i++ {
		ch := word[i] | 0x20
		if ch < 'a' || ch > 'z' {
			return false
		}
	}
	return true
}

func keepTierSafe(word string) bool {
	return word != "" && len(word) <= MaxLineLength && !strings.ContainsAny(word, "| \t")
}

// Unique returns words with duplicates removed, keeping first occurrences.
func Unique(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}
