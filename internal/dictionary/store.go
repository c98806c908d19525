// Package dictionary holds the tiered word dictionary.
package dictionary

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/charmbracelet/log"

	"github.com/EvxnXu/typing-platformer-game/internal/model"
	"github.com/EvxnXu/typing-platformer-game/internal/wordlist"
)

// TierCount is the number of difficulty tiers, numbered 1..TierCount.
const TierCount = 20

// ErrTierRange is returned for tier numbers outside [1, TierCount].
var ErrTierRange = errors.New("tier out of range")

// TierFileName returns the file name for tier n, e.g. subdict_07.txt.
func TierFileName(n int) string {
	return fmt.Sprintf("subdict_%02d.txt", n)
}

// LoadReport summarizes a load. Index i refers to tier i+1.
type LoadReport struct {
	Entries [TierCount]int
	Skipped [TierCount]int
	Missing []int
}

// Total returns the number of loaded entries across all tiers.
func (r LoadReport) Total() int {
	total := 0
	for _, n := range r.Entries {
		total += n
	}
	return total
}

// Store holds TierCount tiers of scored entries. It is read-only between loads.
type Store struct {
	tiers  [TierCount][]model.Entry
	logger *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for absorbed per-tier failures.
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{logger: log.New(io.Discard)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// FromTiers builds a store from in-memory tiers. tiers[i] becomes tier i+1;
// extra tiers are ignored.
func FromTiers(tiers [][]model.Entry, opts ...Option) *Store {
	s := New(opts...)
	for i := 0; i < len(tiers) && i < TierCount; i++ {
		s.tiers[i] = append([]model.Entry(nil), tiers[i]...)
	}
	return s
}

// Load reads the tier files from dir, replacing all tiers.
func (s *Store) Load(dir string) LoadReport {
	return s.LoadFS(os.DirFS(dir))
}

// LoadFS reads the tier files from fsys, replacing all tiers. A missing or
// unreadable file yields an empty tier; it never fails the whole load.
func (s *Store) LoadFS(fsys fs.FS) LoadReport {
	var report LoadReport
	var tiers [TierCount][]model.Entry
	for i := 0; i < TierCount; i++ {
		n := i + 1
		name := TierFileName(n)
		entries, skipped, err := readTier(fsys, name)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			s.logger.Debug("tier file missing", "tier", n, "file", name)
			report.Missing = append(report.Missing, n)
			continue
		case err != nil && len(entries) == 0 && skipped == 0:
			s.logger.Warn("tier file unreadable", "tier", n, "file", name, "error", err)
			report.Missing = append(report.Missing, n)
			continue
		case err != nil:
			s.logger.Warn("tier file partially read", "tier", n, "file", name, "entries", len(entries), "error", err)
		}
		if skipped > 0 {
			s.logger.Debug("skipped malformed lines", "tier", n, "count", skipped)
		}
		tiers[i] = entries
		report.Entries[i] = len(entries)
		report.Skipped[i] = skipped
	}
	s.tiers = tiers
	return report
}

func readTier(fsys fs.FS, name string) ([]model.Entry, int, error) {
	file, err := fsys.Open(name)
	if err != nil {
		return nil, 0, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only tier file.
			_ = cerr
		}
	}()
	return wordlist.ReadEntries(file)
}

// Tier returns a copy of tier n.
func (s *Store) Tier(n int) ([]model.Entry, error) {
	if n < 1 || n > TierCount {
		return nil, fmt.Errorf("%w: %d", ErrTierRange, n)
	}
	return append([]model.Entry(nil), s.tiers[n-1]...), nil
}

// Len returns the number of entries in tier n, or 0 when n is out of range.
func (s *Store) Len(n int) int {
	if n < 1 || n > TierCount {
		return 0
	}
	return len(s.tiers[n-1])
}

// Entry returns entry i of tier n. Callers must check bounds with Len.
func (s *Store) Entry(n, i int) model.Entry {
	return s.tiers[n-1][i]
}

// Total returns the number of entries across all tiers.
func (s *Store) Total() int {
	total := 0
	for _, t := range s.tiers {
		total += len(t)
	}
	return total
}

// Empty reports whether every tier is empty.
func (s *Store) Empty() bool {
	return s.Total() == 0
}

// Nearest returns the closest non-empty tier to n, searching +1, -1, +2, -2, ...
// ok is false when every tier is empty.
func (s *Store) Nearest(n int) (int, bool) {
	if s.Len(n) > 0 {
		return n, true
	}
	for dist := 1; dist < TierCount; dist++ {
		if hi := n + dist; hi <= TierCount && s.Len(hi) > 0 {
			return hi, true
		}
		if lo := n - dist; lo >= 1 && s.Len(lo) > 0 {
			return lo, true
		}
	}
	return 0, false
}
