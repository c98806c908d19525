// Package wordlist loads word lists and scored tier files.
package wordlist

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/EvxnXu/typing-platformer-game/internal/model"
)

// MaxLineLength is the longest tier or word list line accepted. Longer
// lines are skipped as malformed.
const MaxLineLength = 256

// LoadWords reads one word per line from the provided file path.
func LoadWords(path string) ([]string, error) {
	words, err := readWordFile(path)
	if err != nil {
		return nil, err
	}
	if len(words) == 0 {
		return nil, fmt.Errorf("word list is empty")
	}
	return words, nil
}

// LoadBanned reads a banned-word list. An empty file yields no words.
func LoadBanned(path string) ([]string, error) {
	words, err := readWordFile(path)
	if err != nil {
		return nil, err
	}
	for i, w := range words {
		words[i] = strings.ToLower(w)
	}
	return words, nil
}

func readWordFile(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := file.Close(); cerr != nil {
			// Best-effort close for read-only word list.
			_ = cerr
		}
	}()

	var words []string
	err = eachLine(file, func(line string, tooLong bool) {
		line = strings.TrimSpace(line)
		if tooLong || line == "" || strings.HasPrefix(line, "#") {
			return
		}
		words = append(words, line)
	})
	if err != nil {
		return nil, err
	}
	return words, nil
}

// eachLine calls fn for every line of r without its line ending. Lines over
// MaxLineLength are passed truncated with tooLong set.
func eachLine(r io.Reader, fn func(line string, tooLong bool)) error {
	reader := bufio.NewReader(r)
	var buf []byte
	tooLong := false
	for {
		chunk, isPrefix, err := reader.ReadLine()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if !tooLong {
			buf = append(buf, chunk...)
			if len(buf) > MaxLineLength {
				buf = buf[:MaxLineLength]
				tooLong = true
			}
		}
		if isPrefix {
			continue
		}
		fn(string(buf), tooLong)
		buf = buf[:0]
		tooLong = false
	}
}

// ParseEntry parses a single tier line. A bare word gets score 0.
// ok is false for blank lines and for lines whose score is not an integer.
func ParseEntry(line string) (model.Entry, bool) {
	line = strings.TrimSpace(line)
	if line == "" {
		return model.Entry{}, false
	}
	word, rawScore, found := strings.Cut(line, "|")
	if !found {
		return model.Entry{Text: line}, true
	}
	score, err := strconv.Atoi(strings.TrimSpace(rawScore))
	if err != nil {
		return model.Entry{}, false
	}
	word = strings.TrimSpace(word)
	if word == "" {
		return model.Entry{}, false
	}
	return model.Entry{Text: word, Score: score}, true
}

// ReadEntries reads scored entries from r. Malformed and overlong lines are
// skipped and counted. On a read error the entries read so far are returned
// with the error.
func ReadEntries(r io.Reader) ([]model.Entry, int, error) {
	var entries []model.Entry
	skipped := 0
	err := eachLine(r, func(text string, tooLong bool) {
		if tooLong {
			skipped++
			return
		}
		if strings.TrimSpace(text) == "" {
			return
		}
		entry, ok := ParseEntry(text)
		if !ok {
			skipped++
			return
		}
		entries = append(entries, entry)
	})
	return entries, skipped, err
}

// WriteEntries writes entries in word|score form, one per line.
func WriteEntries(w io.Writer, entries []model.Entry) error {
	writer := bufio.NewWriter(w)
	for _, e := range entries {
		if _, err := fmt.Fprintf(writer, "%s|%d\n", e.Text, e.Score); err != nil {
			return err
		}
	}
	return writer.Flush()
}
