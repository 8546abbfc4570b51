// internal/corpus/memory.go
//
// In-memory Lexicon backed by a plain word list. Used for development and
// tests, or when WORDS_FILE points the server at a newline-delimited list
// instead of the database. Entries are owned copies; results may cross
// goroutine boundaries freely.

package corpus

import (
	"bufio"
	"context"
	_ "embed"
	"os"
	"strings"

	"github.com/lettergrid/beehive/internal/letters"
	"github.com/lettergrid/beehive/internal/puzzle"
)

//go:embed default_words.txt
var defaultWords string

type memEntry struct {
	text string
	mask letters.Mask
}

// Memory holds the corpus as precomputed (text, mask) pairs. It is
// immutable after construction and safe for concurrent readers.
type Memory struct {
	entries []memEntry
}

// NewMemory builds a Memory from raw word lines. Lines failing Normalize
// are dropped, duplicates collapse to one entry.
func NewMemory(words []string) *Memory {
	m := &Memory{entries: make([]memEntry, 0, len(words))}
	seen := make(map[string]struct{}, len(words))
	for _, w := range words {
		w, ok := Normalize(w)
		if !ok {
			continue
		}
		if _, dup := seen[w]; dup {
			continue
		}
		seen[w] = struct{}{}
		mask, err := letters.WordMask(w)
		if err != nil {
			continue
		}
		m.entries = append(m.entries, memEntry{text: w, mask: mask})
	}
	return m
}

// LoadMemory reads one word per line from path, falling back to the
// embedded default list when path is empty.
func LoadMemory(path string) (*Memory, error) {
	if path == "" {
		return NewMemory(DefaultWords()), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return NewMemory(lines), nil
}

// DefaultWords returns the embedded default word list, comments stripped.
func DefaultWords() []string {
	var out []string
	for _, line := range strings.Split(defaultWords, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		out = append(out, line)
	}
	return out
}

// WordsSubsetOf filters the corpus with the same predicate the SQL store
// pushes down: word letters a subset of set, pangram when set is also a
// subset of the word's letters.
func (m *Memory) WordsSubsetOf(ctx context.Context, set letters.Mask) ([]puzzle.Word, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var out []puzzle.Word
	for _, e := range m.entries {
		if e.mask&set != e.mask {
			continue
		}
		out = append(out, puzzle.Word{Text: e.text, Mask: e.mask, IsPangram: e.mask&set == set})
	}
	return out, nil
}

// Len reports the number of corpus entries.
func (m *Memory) Len() int { return len(m.entries) }
