// Package model defines shared data structures.
package model

import "time"

// Entry is a single (word, base score) pair stored in a dictionary tier.
type Entry struct {
	Text  string
	Score int
}

// Word is a word drawn from the dictionary, tagged with the tier it came from.
// SourceTier may differ from the requested tier when fallback occurred.
type Word struct {
	Text       string
	Score      int
	SourceTier int
}

// Config defines game settings after file and flag merging.
type Config struct {
	DictionaryDir string
	StartLevel    int
	MaxLevel      int
	Threshold     int
	Seed          *int64
	Duration      time.Duration
	Multiplier    int
	Name          string
}

// Record is a single leaderboard row.
type Record struct {
	ID        int64
	Name      string
	Score     int
	CreatedAt time.Time
}
