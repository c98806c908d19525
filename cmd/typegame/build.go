package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/EvxnXu/typing-platformer-game/internal/dictionary"
	"github.com/EvxnXu/typing-platformer-game/internal/model"
	"github.com/EvxnXu/typing-platformer-game/internal/scoring"
	"github.com/EvxnXu/typing-platformer-game/internal/wordlist"
)

var (
	buildInput  string
	buildBanned string
	buildLang   string
	buildOut    string
	buildForce  bool
)

func newBuildCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Score a word list and write the tier files",
		Args:  cobra.NoArgs,
		RunE:  runBuildCmd,
	}
	cmd.Flags().StringVar(&buildInput, "input", "", "word list, one word per line")
	cmd.Flags().StringVar(&buildBanned, "banned", "", "optional list of banned words")
	cmd.Flags().StringVar(&buildLang, "lang", "en", "language filter for words")
	cmd.Flags().StringVar(&buildOut, "out", "", "output directory (default: --dictionary)")
	cmd.Flags().BoolVar(&buildForce, "force", false, "overwrite existing tier files")
	return cmd
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	if buildInput == "" {
		return fmt.Errorf("--input is required")
	}
	cfg, err := loadGameConfig(cmd)
	if err != nil {
		return err
	}
	outDir := buildOut
	if outDir == "" {
		outDir = cfg.DictionaryDir
	}

	words, err := wordlist.LoadWords(buildInput)
	if err != nil {
		return fmt.Errorf("failed to load word list: %w", err)
	}
	filter := wordlist.FilterForLang(buildLang)
	kept := make([]string, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(w)
		if filter(w) {
			kept = append(kept, w)
		}
	}
	kept = wordlist.Unique(kept)
	logger.Info("loaded word list", "path", buildInput, "words", len(words), "kept", len(kept))

	if buildBanned != "" {
		banned, err := wordlist.LoadBanned(buildBanned)
		if err != nil {
			return fmt.Errorf("failed to load banned words: %w", err)
		}
		var removed int
		kept, removed = scoring.RemoveBanned(kept, banned)
		logger.Info("removed banned words", "count", removed)
	}
	if len(kept) == 0 {
		return fmt.Errorf("no words left after filtering")
	}

	tiers := scoring.SplitTiers(scoring.Score(kept))
	if !buildForce {
		for i := 1; i <= dictionary.TierCount; i++ {
			path := filepath.Join(outDir, dictionary.TierFileName(i))
			if _, err := os.Stat(path); err == nil {
				return fmt.Errorf("tier file already exists: %s (use --force to overwrite)", path)
			} else if !os.IsNotExist(err) {
				return fmt.Errorf("failed to stat tier file: %w", err)
			}
		}
	}
	for i, entries := range tiers {
		path := filepath.Join(outDir, dictionary.TierFileName(i+1))
		if err := writeTierFile(path, entries); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
	}
	logger.Info("wrote tier files", "dir", outDir, "tiers", dictionary.TierCount)
	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d words into %d tiers in %s\n", len(kept), dictionary.TierCount, outDir)
	return err
}

func writeTierFile(path string, entries []model.Entry) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create dictionary dir: %w", err)
	}
	tmpFile, err := os.CreateTemp(filepath.Dir(path), "subdict-*.txt")
	if err != nil {
		return fmt.Errorf("failed to create temp tier file: %w", err)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
	}()

	if err := wordlist.WriteEntries(tmpFile, entries); err != nil {
		return fmt.Errorf("failed to write tier file: %w", err)
	}
	if err := tmpFile.Close(); err != nil {
		return fmt.Errorf("failed to close tier file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("failed to write tier file: %w", err)
	}
	return nil
}
