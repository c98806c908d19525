package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/EvxnXu/typing-platformer-game/internal/render"
	"github.com/EvxnXu/typing-platformer-game/internal/store"
	"github.com/EvxnXu/typing-platformer-game/internal/wordmgr"
)

const (
	defaultDrawCount = 5
	defaultTopLimit  = store.DefaultTopLimit
)

var (
	drawCount   int
	drawAdvance bool

	scoresLimit int
)

func newDrawCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "draw",
		Short: "Print word windows without playing",
		Args:  cobra.NoArgs,
		RunE:  runDrawCmd,
	}
	cmd.Flags().IntVar(&drawCount, "count", defaultDrawCount, "number of windows")
	cmd.Flags().BoolVar(&drawAdvance, "advance", false, "count each window as a correct answer")
	return cmd
}

func runDrawCmd(cmd *cobra.Command, _ []string) error {
	if drawCount <= 0 {
		return fmt.Errorf("--count must be > 0")
	}
	logger := newLogger()
	cfg, err := loadGameConfig(cmd)
	if err != nil {
		return err
	}
	mgr, _ := newManager(cfg, logger)
	printer := render.New(cmd.OutOrStdout())
	for i := 0; i < drawCount; i++ {
		words, err := mgr.SelectWindow(drawAdvance)
		if err != nil {
			if errors.Is(err, wordmgr.ErrEmptyCorpus) {
				return emptyDictionaryError(cfg.DictionaryDir)
			}
			return err
		}
		if err := printer.Window(words, mgr.Status(), 0, 0); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

func newTiersCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tiers",
		Short: "Show per-tier word counts of the dictionary",
		Args:  cobra.NoArgs,
		RunE:  runTiersCmd,
	}
}

func runTiersCmd(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	cfg, err := loadGameConfig(cmd)
	if err != nil {
		return err
	}
	_, report := newManager(cfg, logger)
	return render.New(cmd.OutOrStdout()).Tiers(cfg.DictionaryDir, report)
}

func newScoresCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "scores",
		Short: "Show the leaderboard",
		Args:  cobra.NoArgs,
		RunE:  runScoresCmd,
	}
	cmd.Flags().IntVar(&scoresLimit, "limit", defaultTopLimit, "number of records")
	return cmd
}

func runScoresCmd(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	st, err := store.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("failed to open db: %w", err)
	}
	defer func() {
		if cerr := st.Close(); cerr != nil {
			logger.Error("failed to close db", "error", cerr)
		}
	}()
	records, err := st.TopRecords(context.Background(), scoresLimit)
	if err != nil {
		return fmt.Errorf("failed to load scores: %w", err)
	}
	return render.New(cmd.OutOrStdout()).Leaderboard(records)
}
