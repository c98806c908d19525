// Package main provides the CLI entrypoint for typegame.
package main

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/EvxnXu/typing-platformer-game/internal/config"
	"github.com/EvxnXu/typing-platformer-game/internal/dictionary"
	"github.com/EvxnXu/typing-platformer-game/internal/generator"
	"github.com/EvxnXu/typing-platformer-game/internal/model"
	"github.com/EvxnXu/typing-platformer-game/internal/render"
	"github.com/EvxnXu/typing-platformer-game/internal/session"
	"github.com/EvxnXu/typing-platformer-game/internal/store"
	"github.com/EvxnXu/typing-platformer-game/internal/wordmgr"
)

const (
	defaultStartLevel = wordmgr.MinLevel
	defaultMaxLevel   = wordmgr.DefaultMaxLevel
	defaultThreshold  = wordmgr.DefaultThreshold
	defaultDuration   = session.DefaultDuration
	defaultMultiplier = 1
	defaultPlayerName = "player"
)

var (
	gameDictionary string
	gameStartLevel int
	gameMaxLevel   int
	gameThreshold  int
	gameSeed       int64
	gameDuration   time.Duration
	gameMultiplier int
	gameName       string

	flagDBPath  string
	flagVerbose bool
)

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "typegame",
		Short:         "Type the words on the clouds before time runs out",
		Long: `Type the words on the clouds before time runs out.

While playing, type :pause to stop the clock, :resume to continue,
:quit to end the game and save the score, or :menu (while paused) to
abandon the game without saving.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE:          runPlayCmd,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&gameDictionary, "dictionary", config.DefaultDictionaryDir(), "directory with subdict_01.txt..subdict_20.txt")
	pf.IntVar(&gameStartLevel, "start-level", defaultStartLevel, "starting difficulty level")
	pf.IntVar(&gameMaxLevel, "max-level", defaultMaxLevel, "highest difficulty level")
	pf.IntVar(&gameThreshold, "threshold", defaultThreshold, "correct answers per level-up")
	pf.Int64Var(&gameSeed, "seed", 0, "random seed (default: time based)")
	pf.StringVar(&flagDBPath, "db", config.DefaultDBPath(), "leaderboard database path")
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "enable debug logging")

	rootCmd.Flags().DurationVar(&gameDuration, "duration", defaultDuration, "game length")
	rootCmd.Flags().IntVar(&gameMultiplier, "multiplier", defaultMultiplier, "score multiplier (1-3)")
	rootCmd.Flags().StringVar(&gameName, "name", defaultName(), "player name for the leaderboard")

	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newDrawCmd())
	rootCmd.AddCommand(newTiersCmd())
	rootCmd.AddCommand(newScoresCmd())
	rootCmd.AddCommand(newBuildCmd())

	return rootCmd
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "typegame",
	})
	if flagVerbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// loadGameConfig merges the config file under flags and validates the result.
func loadGameConfig(cmd *cobra.Command) (model.Config, error) {
	fileCfg, err := config.LoadConfig(config.DefaultConfigPath())
	if err != nil {
		return model.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	g := fileCfg.Game
	applyStringConfig(cmd, "dictionary", &gameDictionary, g.Dictionary)
	applyIntConfig(cmd, "start-level", &gameStartLevel, g.StartLevel)
	applyIntConfig(cmd, "max-level", &gameMaxLevel, g.MaxLevel)
	applyIntConfig(cmd, "threshold", &gameThreshold, g.Threshold)
	applyIntConfig(cmd, "multiplier", &gameMultiplier, g.Multiplier)
	applyStringConfig(cmd, "name", &gameName, g.Name)
	if err := applyDurationConfig(cmd, "duration", &gameDuration, g.Duration); err != nil {
		return model.Config{}, err
	}

	var seed *int64
	switch {
	case cmd.Flags().Changed("seed"):
		seed = &gameSeed
	case g.Seed != nil:
		seed = g.Seed
	}

	cfg := model.Config{
		DictionaryDir: gameDictionary,
		StartLevel:    gameStartLevel,
		MaxLevel:      gameMaxLevel,
		Threshold:     gameThreshold,
		Seed:          seed,
		Duration:      gameDuration,
		Multiplier:    gameMultiplier,
		Name:          strings.TrimSpace(gameName),
	}
	if err := validateConfig(cfg); err != nil {
		return model.Config{}, err
	}
	return cfg, nil
}

// newManager loads the dictionary and builds a Word Manager for cfg.
func newManager(cfg model.Config, logger *log.Logger) (*wordmgr.Manager, dictionary.LoadReport) {
	gen := generator.New(cfg.Seed)
	logger.Debug("random source", "seed", gen.Seed())
	mgr := wordmgr.New(
		wordmgr.Config{StartLevel: cfg.StartLevel, MaxLevel: cfg.MaxLevel, Threshold: cfg.Threshold},
		dictionary.New(dictionary.WithLogger(logger)),
		wordmgr.WithRand(gen),
		wordmgr.WithLogger(logger),
	)
	report := mgr.Load(cfg.DictionaryDir)
	return mgr, report
}

func runPlayCmd(cmd *cobra.Command, _ []string) error {
	logger := newLogger()
	cfg, err := loadGameConfig(cmd)
	if err != nil {
		return err
	}
	mgr, _ := newManager(cfg, logger)

	var board session.Board
	st, err := store.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open leaderboard, scores will not be saved", "path", flagDBPath, "error", err)
	} else {
		board = st
		defer func() {
			if cerr := st.Close(); cerr != nil {
				logger.Error("failed to close db", "error", cerr)
			}
		}()
	}

	sess := session.New(mgr, board, session.Config{
		Duration:   cfg.Duration,
		Multiplier: cfg.Multiplier,
		Name:       cfg.Name,
	})
	if err := sess.Start(); err != nil {
		if errors.Is(err, wordmgr.ErrEmptyCorpus) {
			return emptyDictionaryError(cfg.DictionaryDir)
		}
		return err
	}

	ctx := context.Background()
	out := cmd.OutOrStdout()
	printer := render.New(out)
	interactive := term.IsTerminal(int(os.Stdin.Fd()))
	scanner := bufio.NewScanner(cmd.InOrStdin())
	var readErr error
	last := time.Now()
	for sess.State() == session.StatePlay || sess.State() == session.StatePause {
		if sess.State() == session.StatePlay {
			if err := printer.Window(sess.Words(), sess.Status(), sess.Remaining(), sess.Score()); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if interactive {
			if _, err := fmt.Fprint(out, "> "); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
		}
		if !scanner.Scan() {
			readErr = scanner.Err()
			if err := sess.End(); err != nil {
				return err
			}
			break
		}
		now := time.Now()
		if sess.Tick(now.Sub(last)) == session.StateEnd {
			break
		}
		last = now

		line := strings.TrimSpace(scanner.Text())
		handled, err := runPlayCommand(sess, printer, line)
		if err != nil {
			return err
		}
		if handled {
			continue
		}
		if sess.State() == session.StatePause {
			if err := printer.Notice(pausedNotice); err != nil {
				return fmt.Errorf("failed to write output: %w", err)
			}
			continue
		}
		res, err := sess.Submit(line)
		if err != nil {
			return err
		}
		if err := printer.Result(res); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}

	if sess.State() == session.StateMenu {
		return printer.Notice("Game abandoned, score not saved.")
	}
	if err := sess.Finish(ctx); err != nil {
		logger.Error("failed to save score", "error", err)
	}
	if err := printer.Summary(cfg.Name, sess.Score(), sess.Status()); err != nil {
		return err
	}
	if st != nil {
		best, err := st.HighScore(ctx)
		if err != nil {
			logger.Warn("failed to load high score", "error", err)
		} else if err := printer.Best(best, sess.Score()); err != nil {
			return err
		}
	}
	if readErr != nil {
		return fmt.Errorf("failed to read input: %w", readErr)
	}
	return nil
}

const pausedNotice = "Paused. Type :resume to continue, :quit to end or :menu to abandon."

// runPlayCommand applies an in-game command. handled is false for ordinary answers.
func runPlayCommand(sess *session.Session, printer *render.Printer, line string) (bool, error) {
	var err error
	notice := ""
	switch line {
	case ":pause":
		err = sess.Pause()
		notice = pausedNotice
	case ":resume":
		err = sess.Resume()
	case ":quit":
		err = sess.End()
	case ":menu":
		err = sess.Menu()
	default:
		return false, nil
	}
	if errors.Is(err, session.ErrInvalidTransition) {
		notice = fmt.Sprintf("%s is not available while in %s", line, sess.State())
	} else if err != nil {
		return true, err
	}
	if notice == "" {
		return true, nil
	}
	if err := printer.Notice(notice); err != nil {
		return true, fmt.Errorf("failed to write output: %w", err)
	}
	return true, nil
}

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Create/open config file",
		Args:  cobra.NoArgs,
		RunE:  runConfigCmd,
	}
}

func runConfigCmd(_ *cobra.Command, _ []string) error {
	path := config.DefaultConfigPath()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("failed to stat config: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTemplate()), 0o644); err != nil {
			return fmt.Errorf("failed to write config: %w", err)
		}
	}

	editor := strings.TrimSpace(os.Getenv("EDITOR"))
	if editor == "" {
		editor = "vi"
	}
	parts := strings.Fields(editor)
	if len(parts) == 0 {
		return fmt.Errorf("editor command is empty")
	}
	cmd := exec.Command(parts[0], append(parts[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("failed to open editor: %w", err)
	}
	return nil
}

func applyStringConfig(cmd *cobra.Command, name string, target, value *string) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyIntConfig(cmd *cobra.Command, name string, target, value *int) {
	if value == nil {
		return
	}
	if cmd.Flags().Changed(name) {
		return
	}
	*target = *value
}

func applyDurationConfig(cmd *cobra.Command, name string, target *time.Duration, value *string) error {
	if value == nil || cmd.Flags().Changed(name) {
		return nil
	}
	d, err := time.ParseDuration(*value)
	if err != nil {
		return fmt.Errorf("invalid %s in config: %w", name, err)
	}
	*target = d
	return nil
}

func defaultConfigTemplate() string {
	return fmt.Sprintf(`# typegame configuration
# Uncomment a value to enable it. CLI flags override config values.

[game]
# dictionary = %q
# start-level = %d        # Starting difficulty level
# max-level = %d          # Highest base level (window uses level..level+2)
# threshold = %d           # Correct answers per level-up
# seed = 1234              # Fixed random seed
# duration = %q          # Game length
# multiplier = %d          # Score multiplier (1-3)
# name = %q
`,
		config.DefaultDictionaryDir(),
		defaultStartLevel,
		defaultMaxLevel,
		defaultThreshold,
		defaultDuration.String(),
		defaultMultiplier,
		defaultPlayerName,
	)
}

func validateConfig(cfg model.Config) error {
	if cfg.DictionaryDir == "" {
		return fmt.Errorf("--dictionary must not be empty")
	}
	if cfg.MaxLevel < wordmgr.MinLevel || cfg.MaxLevel > dictionary.TierCount {
		return fmt.Errorf("--max-level must be between %d and %d", wordmgr.MinLevel, dictionary.TierCount)
	}
	if cfg.StartLevel < wordmgr.MinLevel || cfg.StartLevel > cfg.MaxLevel {
		return fmt.Errorf("--start-level must be between %d and %d", wordmgr.MinLevel, cfg.MaxLevel)
	}
	if cfg.Threshold < 1 {
		return fmt.Errorf("--threshold must be >= 1")
	}
	if cfg.Duration <= 0 {
		return fmt.Errorf("--duration must be > 0")
	}
	if cfg.Multiplier < 1 || cfg.Multiplier > session.MaxMultiplier {
		return fmt.Errorf("--multiplier must be between 1 and %d", session.MaxMultiplier)
	}
	if cfg.Name == "" {
		return fmt.Errorf("--name must not be empty")
	}
	return nil
}

func defaultName() string {
	if u := strings.TrimSpace(os.Getenv("USER")); u != "" {
		return u
	}
	return defaultPlayerName
}

func emptyDictionaryError(dir string) error {
	lines := []string{
		"dictionary has no words",
		fmt.Sprintf("expected tier files %s..%s in: %s", dictionary.TierFileName(1), dictionary.TierFileName(dictionary.TierCount), dir),
		"Build one: typegame build --input words.txt",
		"Inspect: typegame tiers",
	}
	return fmt.Errorf("%s", strings.Join(lines, "\n"))
}
