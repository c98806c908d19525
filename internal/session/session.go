// Package session runs one player's game: state transitions, the countdown,
// scoring typed answers against the current window and posting the result.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/EvxnXu/typing-platformer-game/internal/model"
	"github.com/EvxnXu/typing-platformer-game/internal/wordmgr"
)

const (
	// DefaultDuration is the countdown length of one game.
	DefaultDuration = 30 * time.Second
	// MaxMultiplier is the highest score multiplier.
	MaxMultiplier = 3
)

// ErrInvalidTransition is returned when an action is not allowed in the current state.
var ErrInvalidTransition = errors.New("invalid state transition")

// State is the game screen state.
type State int

const (
	StateMenu State = iota
	StatePlay
	StatePause
	StateEnd
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlay:
		return "play"
	case StatePause:
		return "pause"
	case StateEnd:
		return "end"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

func canTransition(from, to State) bool {
	switch from {
	case StateMenu:
		return to == StatePlay
	case StatePlay:
		return to == StatePause || to == StateEnd
	case StatePause:
		return to == StatePlay || to == StateEnd || to == StateMenu
	case StateEnd:
		return to == StatePlay || to == StateMenu
	default:
		return false
	}
}

// Board receives finished scores.
type Board interface {
	AddRecord(ctx context.Context, name string, score int) (int64, error)
}

// Config holds per-game settings.
type Config struct {
	Duration   time.Duration
	Multiplier int
	Name       string
}

// Result describes the outcome of one submitted answer.
type Result struct {
	Matched   bool
	Word      model.Word
	Points    int
	LeveledUp bool
}

// Session owns the state of one game.
type Session struct {
	mgr   *wordmgr.Manager
	board Board
	cfg   Config

	state     State
	words     []model.Word
	score     int
	remaining time.Duration
	posted    bool
}

// New returns a session in the menu state. board may be nil.
func New(mgr *wordmgr.Manager, board Board, cfg Config) *Session {
	if cfg.Duration <= 0 {
		cfg.Duration = DefaultDuration
	}
	if cfg.Multiplier < 1 || cfg.Multiplier > MaxMultiplier {
		cfg.Multiplier = 1
	}
	return &Session{
		mgr:       mgr,
		board:     board,
		cfg:       cfg,
		state:     StateMenu,
		remaining: cfg.Duration,
	}
}

// State returns the current state.
func (s *Session) State() State { return s.state }

// Score returns the points earned so far.
func (s *Session) Score() int { return s.score }

// Remaining returns the time left on the countdown.
func (s *Session) Remaining() time.Duration { return s.remaining }

// Words returns a copy of the current window.
func (s *Session) Words() []model.Word {
	return append([]model.Word(nil), s.words...)
}

// Status returns the Word Manager progression snapshot.
func (s *Session) Status() wordmgr.Status { return s.mgr.Status() }

func (s *Session) transition(to State) error {
	if !canTransition(s.state, to) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, to)
	}
	s.state = to
	return nil
}

// Start begins a new game from the menu or end screen.
func (s *Session) Start() error {
	if s.state != StateMenu && s.state != StateEnd {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.state, StatePlay)
	}
	s.mgr.Reset()
	words, err := s.mgr.SelectWindow(false)
	if err != nil {
		return fmt.Errorf("failed to draw words: %w", err)
	}
	s.words = words
	s.score = 0
	s.remaining = s.cfg.Duration
	s.posted = false
	return s.transition(StatePlay)
}

// Submit checks typed text against the current window. A match scores the
// word and draws the next window with progression applied.
func (s *Session) Submit(text string) (Result, error) {
	if s.state != StatePlay {
		return Result{}, fmt.Errorf("%w: submit in %s", ErrInvalidTransition, s.state)
	}
	text = strings.TrimSpace(text)
	for _, w := range s.words {
		if w.Text != text {
			continue
		}
		before := s.mgr.Status().CurrentLevel
		next, err := s.mgr.SelectWindow(true)
		if err != nil {
			return Result{}, fmt.Errorf("failed to draw words: %w", err)
		}
		points := w.Score * s.cfg.Multiplier
		s.score += points
		s.words = next
		return Result{
			Matched:   true,
			Word:      w,
			Points:    points,
			LeveledUp: s.mgr.Status().CurrentLevel > before,
		}, nil
	}
	return Result{}, nil
}

// Tick advances the countdown while playing and ends the game at zero.
func (s *Session) Tick(elapsed time.Duration) State {
	if s.state != StatePlay || elapsed <= 0 {
		return s.state
	}
	s.remaining -= elapsed
	if s.remaining <= 0 {
		s.remaining = 0
		s.state = StateEnd
	}
	return s.state
}

// Pause suspends the countdown.
func (s *Session) Pause() error { return s.transition(StatePause) }

// Resume continues a paused game.
func (s *Session) Resume() error {
	if s.state != StatePause {
		return fmt.Errorf("%w: resume in %s", ErrInvalidTransition, s.state)
	}
	return s.transition(StatePlay)
}

// End stops the game early.
func (s *Session) End() error { return s.transition(StateEnd) }

// Menu returns to the menu from the pause or end screen.
func (s *Session) Menu() error { return s.transition(StateMenu) }

// Finish posts the final score once. It is a no-op without a board.
func (s *Session) Finish(ctx context.Context) error {
	if s.state != StateEnd {
		return fmt.Errorf("%w: finish in %s", ErrInvalidTransition, s.state)
	}
	if s.posted || s.board == nil {
		return nil
	}
	if _, err := s.board.AddRecord(ctx, s.cfg.Name, s.score); err != nil {
		return fmt.Errorf("failed to save score: %w", err)
	}
	s.posted = true
	return nil
}
