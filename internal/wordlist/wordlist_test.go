package wordlist

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/EvxnXu/typing-platformer-game/internal/model"
)

func TestParseEntry(t *testing.T) {
	cases := []struct {
		line  string
		want  model.Entry
		valid bool
	}{
		{line: "cloud|120", want: model.Entry{Text: "cloud", Score: 120}, valid: true},
		{line: "  rain | 40 ", want: model.Entry{Text: "rain", Score: 40}, valid: true},
		{line: "word", want: model.Entry{Text: "word"}, valid: true},
		{line: "word|notanumber", valid: false},
		{line: "|15", valid: false},
		{line: "   ", valid: false},
	}
	for _, tc := range cases {
		got, ok := ParseEntry(tc.line)
		if ok != tc.valid {
			t.Fatalf("ParseEntry(%q) ok=%v, want %v", tc.line, ok, tc.valid)
		}
		if ok && got != tc.want {
			t.Fatalf("ParseEntry(%q)=%+v, want %+v", tc.line, got, tc.want)
		}
	}
}

func TestReadEntriesSkipsMalformed(t *testing.T) {
	input := "alpha|10\n\nbeta|oops\ngamma\n"
	entries, skipped, err := ReadEntries(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if skipped != 1 {
		t.Fatalf("expected 1 skipped line, got %d", skipped)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[1] != (model.Entry{Text: "gamma", Score: 0}) {
		t.Fatalf("unexpected bare entry: %+v", entries[1])
	}
}

func TestWriteEntriesRoundTripsThroughReader(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteEntries(&buf, []model.Entry{{Text: "sky", Score: 100}, {Text: "storm", Score: 4200}}); err != nil {
		t.Fatalf("WriteEntries failed: %v", err)
	}
	if buf.String() != "sky|100\nstorm|4200\n" {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestLoadWordsSkipsCommentsAndBlanks(t *testing.T) {
	path := filepath.Join(t.TempDir(), "words.txt")
	if err := os.WriteFile(path, []byte("# header\nhello\n\nworld\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	words, err := LoadWords(path)
	if err != nil {
		t.Fatalf("LoadWords failed: %v", err)
	}
	if len(words) != 2 || words[0] != "hello" || words[1] != "world" {
		t.Fatalf("unexpected words: %v", words)
	}
}

func TestLoadWordsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := LoadWords(path); err == nil {
		t.Fatalf("expected error for empty word list")
	}
}

func TestReadEntriesSkipsOverlongLine(t *testing.T) {
	input := "alpha|100\n" + strings.Repeat("x", 70*1024) + "|5\ngamma|300"
	entries, skipped, err := ReadEntries(strings.NewReader(input))
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if skipped != 1 || len(entries) != 2 {
		t.Fatalf("expected 2 entries and 1 skipped, got %d and %d", len(entries), skipped)
	}
	if entries[1] != (model.Entry{Text: "gamma", Score: 300}) {
		t.Fatalf("unexpected last entry: %+v", entries[1])
	}
}

func TestReadEntriesHandlesCRLF(t *testing.T) {
	entries, _, err := ReadEntries(strings.NewReader("sky|10\r\nrain|20\r\n"))
	if err != nil {
		t.Fatalf("ReadEntries failed: %v", err)
	}
	if len(entries) != 2 || entries[1] != (model.Entry{Text: "rain", Score: 20}) {
		t.Fatalf("unexpected entries: %+v", entries)
	}
}

func TestLoadBannedAcceptsEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banned.txt")
	if err := os.WriteFile(path, []byte("# nothing yet\n\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	words, err := LoadBanned(path)
	if err != nil {
		t.Fatalf("LoadBanned failed: %v", err)
	}
	if len(words) != 0 {
		t.Fatalf("expected no banned words, got %v", words)
	}
}

func TestLoadBannedLowercases(t *testing.T) {
	path := filepath.Join(t.TempDir(), "banned.txt")
	if err := os.WriteFile(path, []byte("Darn\nHECK\n"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	words, err := LoadBanned(path)
	if err != nil {
		t.Fatalf("LoadBanned failed: %v", err)
	}
	if len(words) != 2 || words[0] != "darn" || words[1] != "heck" {
		t.Fatalf("unexpected banned words: %v", words)
	}
}
