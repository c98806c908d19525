package wordmgr

import "github.com/EvxnXu/typing-platformer-game/internal/dictionary"

const (
	// MinLevel is the lowest base level of the window.
	MinLevel = 1
	// DefaultMaxLevel keeps the whole window inside the tier range.
	DefaultMaxLevel = dictionary.TierCount - WindowSize + 1
	// DefaultThreshold is the number of correct answers per level-up.
	DefaultThreshold = 5
)

// Status is a read-only snapshot of progression state.
type Status struct {
	CurrentLevel  int
	Threshold     int
	CorrectStreak int
	MinLevel      int
	MaxLevel      int
}

// Progression tracks correct answers and advances the base level.
type Progression struct {
	level     int
	streak    int
	threshold int
	maxLevel  int
}

// NewProgression returns a tracker. maxLevel is clamped into
// [MinLevel, TierCount], start into [MinLevel, maxLevel], threshold to >= 1.
func NewProgression(start, maxLevel, threshold int) *Progression {
	maxLevel = clamp(maxLevel, MinLevel, dictionary.TierCount)
	if threshold < 1 {
		threshold = 1
	}
	return &Progression{
		level:     clamp(start, MinLevel, maxLevel),
		threshold: threshold,
		maxLevel:  maxLevel,
	}
}

// RecordCorrect counts a correct answer and reports whether the level went up.
// At the maximum level the streak stops growing once it reaches the threshold.
func (p *Progression) RecordCorrect() bool {
	if p.streak < p.threshold {
		p.streak++
	}
	if p.streak < p.threshold {
		return false
	}
	if p.level >= p.maxLevel {
		return false
	}
	p.level++
	p.streak = 0
	return true
}

// Reset restores the minimum level and clears the streak.
func (p *Progression) Reset() {
	p.level = MinLevel
	p.streak = 0
}

// Level returns the current base level.
func (p *Progression) Level() int {
	return p.level
}

// Status returns a snapshot of the tracker.
func (p *Progression) Status() Status {
	return Status{
		CurrentLevel:  p.level,
		Threshold:     p.threshold,
		CorrectStreak: p.streak,
		MinLevel:      MinLevel,
		MaxLevel:      p.maxLevel,
	}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
