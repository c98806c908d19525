package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/EvxnXu/typing-platformer-game/internal/dictionary"
	"github.com/EvxnXu/typing-platformer-game/internal/model"
	"github.com/EvxnXu/typing-platformer-game/internal/session"
	"github.com/EvxnXu/typing-platformer-game/internal/wordmgr"
)

// Printer writes styled output. Colors are dropped when w is not a terminal.
type Printer struct {
	w       io.Writer
	title   lipgloss.Style
	word    lipgloss.Style
	hit     lipgloss.Style
	miss    lipgloss.Style
	muted   lipgloss.Style
	levelUp lipgloss.Style
}

// New returns a Printer for w.
func New(w io.Writer) *Printer {
	r := lipgloss.NewRenderer(w)
	return &Printer{
		w:       w,
		title:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("#C89A3A")),
		word:    r.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true),
		hit:     r.NewStyle().Foreground(lipgloss.Color("#52C41A")),
		miss:    r.NewStyle().Foreground(lipgloss.Color("#FF4D4F")),
		muted:   r.NewStyle().Foreground(lipgloss.Color("#8C8C8C")),
		levelUp: r.NewStyle().Foreground(lipgloss.Color("#40A9FF")).Bold(true),
	}
}

func (p *Printer) println(s string) error {
	_, err := fmt.Fprintln(p.w, s)
	return err
}

func (p *Printer) lines(lines []string) error {
	for _, line := range lines {
		if err := p.println(line); err != nil {
			return err
		}
	}
	return nil
}

// Window prints the current words, one per platform, with a status line.
func (p *Printer) Window(words []model.Word, st wordmgr.Status, remaining time.Duration, score int) error {
	parts := make([]string, 0, len(words))
	for _, w := range words {
		parts = append(parts, p.word.Render(w.Text))
	}
	status := fmt.Sprintf("level %d · streak %d/%d · score %d · %s left",
		st.CurrentLevel, st.CorrectStreak, st.Threshold, score, remaining.Round(time.Second))
	if err := p.println(strings.Join(parts, "   ")); err != nil {
		return err
	}
	return p.println(p.muted.Render(status))
}

// Result prints the outcome of one answer.
func (p *Printer) Result(res session.Result) error {
	if !res.Matched {
		return p.println(p.miss.Render("miss"))
	}
	line := p.hit.Render(fmt.Sprintf("+%d %s", res.Points, res.Word.Text))
	if res.LeveledUp {
		line += " " + p.levelUp.Render("level up!")
	}
	return p.println(line)
}

// Summary prints the final score.
func (p *Printer) Summary(name string, score int, st wordmgr.Status) error {
	if err := p.println(p.title.Render("Game over")); err != nil {
		return err
	}
	return p.println(fmt.Sprintf("%s scored %d (reached level %d)", name, score, st.CurrentLevel))
}

// Best prints the leaderboard high score after a game that scored score.
func (p *Printer) Best(best, score int) error {
	if score > 0 && score >= best {
		return p.println(p.levelUp.Render("New high score!"))
	}
	return p.println(p.muted.Render(fmt.Sprintf("Best so far: %d", best)))
}

// Notice prints an informational line.
func (p *Printer) Notice(msg string) error {
	return p.println(p.muted.Render(msg))
}

// Leaderboard prints the top records.
func (p *Printer) Leaderboard(records []model.Record) error {
	if err := p.println(p.title.Render("Leaderboard")); err != nil {
		return err
	}
	if len(records) == 0 {
		return p.println("No scores recorded yet.")
	}
	rows := make([][]string, 0, len(records))
	for i, rec := range records {
		rows = append(rows, []string{
			strconv.Itoa(i + 1),
			rec.Name,
			strconv.Itoa(rec.Score),
			rec.CreatedAt.Local().Format("2006-01-02 15:04"),
		})
	}
	return p.lines(formatTable([]string{"Rank", "Name", "Score", "Date"}, rows, map[int]bool{0: true, 2: true}))
}

// Tiers prints per-tier counts from a load.
func (p *Printer) Tiers(dir string, report dictionary.LoadReport) error {
	if err := p.println(p.title.Render("Dictionary " + dir)); err != nil {
		return err
	}
	missing := make(map[int]bool, len(report.Missing))
	for _, n := range report.Missing {
		missing[n] = true
	}
	rows := make([][]string, 0, dictionary.TierCount)
	for i := 0; i < dictionary.TierCount; i++ {
		n := i + 1
		note := ""
		if missing[n] {
			note = "missing"
		}
		rows = append(rows, []string{
			strconv.Itoa(n),
			strconv.Itoa(report.Entries[i]),
			strconv.Itoa(report.Skipped[i]),
			note,
		})
	}
	if err := p.lines(formatTable([]string{"Tier", "Words", "Skipped", ""}, rows, map[int]bool{0: true, 1: true, 2: true})); err != nil {
		return err
	}
	return p.println(fmt.Sprintf("Total: %d", report.Total()))
}
