// Package scoring assigns typing difficulty to words and splits them into tiers.
package scoring

import (
	"math"
	"sort"
	"strings"

	"github.com/EvxnXu/typing-platformer-game/internal/dictionary"
	"github.com/EvxnXu/typing-platformer-game/internal/model"
)

const (
	// MinScore and MaxScore bound normalized scores.
	MinScore = 100
	MaxScore = 5000
)

const (
	leftHand   = "qwertasdfgzxcvb"
	rightHand  = "yuiophjklnm"
	homeRow    = "asdfghjkl"
	pinkyRing  = "qazplm"
	letterCost = 10
)

var commonDigraphs = setOf(
	"th", "he", "in", "er", "an", "re", "on", "at", "en", "nd",
	"ti", "es", "or", "te", "of", "ed", "is", "it", "al", "ar",
	"st", "to", "nt", "ng", "se", "ha", "as", "ou", "io", "le",
	"ve", "co", "me", "de", "hi", "ri", "ro", "ic", "ne", "ea",
	"ra", "ce", "li", "ch", "ll", "be", "ma", "si", "om", "ur",
)

var awkwardPairs = setOf("zx", "qp", "qz", "xq", "pq", "bq", "jq", "zj", "qj", "vj", "xv", "qv")

func setOf(items ...string) map[string]struct{} {
	out := make(map[string]struct{}, len(items))
	for _, it := range items {
		out[it] = struct{}{}
	}
	return out
}

func in(set string, r rune) bool {
	return strings.ContainsRune(set, r)
}

// PairDifficulty scores typing b right after a. Rules are checked in order;
// the first match wins.
func PairDifficulty(a, b rune) int {
	a, b = toLower(a), toLower(b)
	if a == b {
		return 5
	}
	pair := string([]rune{a, b})
	if _, ok := commonDigraphs[pair]; ok {
		return -2
	}
	if (in(leftHand, a) && in(rightHand, b)) || (in(rightHand, a) && in(leftHand, b)) {
		return 2
	}
	if !in(homeRow, a) && !in(homeRow, b) {
		return 3
	}
	if in(pinkyRing, a) || in(pinkyRing, b) {
		return 4
	}
	if _, ok := awkwardPairs[pair]; ok {
		return 6
	}
	return 0
}

func toLower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + ('a' - 'A')
	}
	return r
}

// ScoreWord returns the raw difficulty of word: 10 per letter plus pair costs.
func ScoreWord(word string) int {
	runes := []rune(word)
	score := letterCost * len(runes)
	for i := 0; i+1 < len(runes); i++ {
		score += PairDifficulty(runes[i], runes[i+1])
	}
	return score
}

// Normalize maps raw scores linearly onto [lo, hi], rounded to the nearest 10.
func Normalize(raw []int, lo, hi int) []int {
	out := make([]int, len(raw))
	if len(raw) == 0 {
		return out
	}
	rawMin, rawMax := raw[0], raw[0]
	for _, v := range raw[1:] {
		rawMin = min(rawMin, v)
		rawMax = max(rawMax, v)
	}
	for i, v := range raw {
		val := float64(lo)
		if rawMax != rawMin {
			val = float64(lo) + float64(v-rawMin)/float64(rawMax-rawMin)*float64(hi-lo)
		}
		out[i] = int(math.RoundToEven(val/10.0) * 10)
	}
	return out
}

// Score scores and normalizes words into entries, in input order.
func Score(words []string) []model.Entry {
	raw := make([]int, len(words))
	for i, w := range words {
		raw[i] = ScoreWord(w)
	}
	normed := Normalize(raw, MinScore, MaxScore)
	entries := make([]model.Entry, len(words))
	for i, w := range words {
		entries[i] = model.Entry{Text: w, Score: normed[i]}
	}
	return entries
}

// SplitTiers sorts entries by score and cuts them into TierCount chunks of
// ceil(n/TierCount). Trailing tiers may be empty when n is small.
func SplitTiers(entries []model.Entry) [dictionary.TierCount][]model.Entry {
	var tiers [dictionary.TierCount][]model.Entry
	if len(entries) == 0 {
		return tiers
	}
	sorted := append([]model.Entry(nil), entries...)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Score < sorted[j].Score
	})
	chunk := (len(sorted) + dictionary.TierCount - 1) / dictionary.TierCount
	for i := 0; i < dictionary.TierCount; i++ {
		start := i * chunk
		if start >= len(sorted) {
			break
		}
		end := min(start+chunk, len(sorted))
		tiers[i] = sorted[start:end]
	}
	return tiers
}

// RemoveBanned drops words that contain, or are contained in, any banned
// token. Matching is case-insensitive.
func RemoveBanned(words []string, banned []string) ([]string, int) {
	if len(banned) == 0 {
		return words, 0
	}
	lowered := make([]string, 0, len(banned))
	for _, b := range banned {
		b = strings.ToLower(strings.TrimSpace(b))
		if b != "" {
			lowered = append(lowered, b)
		}
	}
	kept := make([]string, 0, len(words))
	removed := 0
	for _, w := range words {
		lw := strings.ToLower(strings.TrimSpace(w))
		drop := false
		for _, b := range lowered {
			if strings.Contains(lw, b) || strings.Contains(b, lw) {
				drop = true
				break
			}
		}
		if drop {
			removed++
			continue
		}
		kept = append(kept, w)
	}
	return kept, removed
}
