// Package wordmgr selects words for the play window and tracks difficulty.
//
// A Manager serves three words per round from the tiers
// [level, level+1, level+2] of a dictionary.Store, each clamped to the last
// tier. Correct answers advance the level once the configured threshold is
// reached. A Manager is not safe for concurrent use; callers that share one
// across goroutines must serialize RecordCorrect and SelectWindow together.
package wordmgr

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/EvxnXu/typing-platformer-game/internal/dictionary"
	"github.com/EvxnXu/typing-platformer-game/internal/generator"
	"github.com/EvxnXu/typing-platformer-game/internal/model"
)

const (
	// WindowSize is the number of words served per round.
	WindowSize = 3
	// maxDrawAttempts bounds duplicate rejection per window slot.
	maxDrawAttempts = 10
)

var (
	// ErrTierRange is returned for tier numbers outside [1, TierCount].
	ErrTierRange = dictionary.ErrTierRange
	// ErrEmptyCorpus is returned when no tier holds any entry.
	ErrEmptyCorpus = errors.New("dictionary has no words")
)

// Config holds Manager settings.
type Config struct {
	StartLevel int
	MaxLevel   int
	Threshold  int
}

// DefaultConfig returns the stock settings.
func DefaultConfig() Config {
	return Config{
		StartLevel: MinLevel,
		MaxLevel:   DefaultMaxLevel,
		Threshold:  DefaultThreshold,
	}
}

// Manager combines the tiered store, word selection and progression.
type Manager struct {
	store    *dictionary.Store
	progress *Progression
	rnd      generator.Source
	logger   *log.Logger
}

// Option configures a Manager.
type Option func(*Manager)

// WithRand sets the random source used for draws.
func WithRand(src generator.Source) Option {
	return func(m *Manager) {
		if src != nil {
			m.rnd = src
		}
	}
}

// WithLogger sets the Manager logger.
func WithLogger(logger *log.Logger) Option {
	return func(m *Manager) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// New returns a Manager over store. A nil store is treated as empty.
func New(cfg Config, store *dictionary.Store, opts ...Option) *Manager {
	if store == nil {
		store = dictionary.New()
	}
	m := &Manager{
		store:    store,
		progress: NewProgression(cfg.StartLevel, cfg.MaxLevel, cfg.Threshold),
		logger:   log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.rnd == nil {
		m.rnd = generator.New(nil)
	}
	return m
}

// Load reloads the dictionary tiers from dir.
func (m *Manager) Load(dir string) dictionary.LoadReport {
	report := m.store.Load(dir)
	m.logger.Info("dictionary loaded", "dir", dir, "words", report.Total(), "missing", len(report.Missing))
	return report
}

// Store returns the underlying dictionary.
func (m *Manager) Store() *dictionary.Store {
	return m.store
}

// SelectRandom draws a uniform word from tier, falling back to the nearest
// non-empty tier when it is empty.
func (m *Manager) SelectRandom(tier int) (model.Word, error) {
	if tier < 1 || tier > dictionary.TierCount {
		return model.Word{}, fmt.Errorf("%w: %d", ErrTierRange, tier)
	}
	resolved, ok := m.store.Nearest(tier)
	if !ok {
		return model.Word{}, ErrEmptyCorpus
	}
	if resolved != tier {
		m.logger.Debug("tier empty, using fallback", "requested", tier, "resolved", resolved)
	}
	entry := m.store.Entry(resolved, m.rnd.Intn(m.store.Len(resolved)))
	return model.Word{Text: entry.Text, Score: entry.Score, SourceTier: resolved}, nil
}

// SelectWindow returns WindowSize words for tiers level, level+1, level+2.
// When advance is true the answer is counted before the window is chosen.
// Duplicate texts are redrawn up to maxDrawAttempts times; after that the
// last draw is kept.
func (m *Manager) SelectWindow(advance bool) ([]model.Word, error) {
	if advance {
		if m.progress.RecordCorrect() {
			m.logger.Debug("level up", "level", m.progress.Level())
		}
	}
	level := m.progress.Level()
	words := make([]model.Word, 0, WindowSize)
	seen := make(map[string]struct{}, WindowSize)
	for offset := 0; offset < WindowSize; offset++ {
		tier := min(level+offset, dictionary.TierCount)
		var chosen model.Word
		for attempt := 0; attempt < maxDrawAttempts; attempt++ {
			w, err := m.SelectRandom(tier)
			if err != nil {
				return nil, err
			}
			chosen = w
			if _, dup := seen[w.Text]; !dup {
				break
			}
		}
		words = append(words, chosen)
		seen[chosen.Text] = struct{}{}
	}
	return words, nil
}

// RecordCorrect counts a correct answer and reports whether the level went up.
func (m *Manager) RecordCorrect() bool {
	return m.progress.RecordCorrect()
}

// Reset restores the minimum level and clears the streak.
func (m *Manager) Reset() {
	m.progress.Reset()
}

// Status returns a snapshot of the progression state.
func (m *Manager) Status() Status {
	return m.progress.Status()
}
