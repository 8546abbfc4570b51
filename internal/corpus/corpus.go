// internal/corpus/corpus.go
//
// Word corpus access for the puzzle generator and the management API.
// The corpus itself lives elsewhere (SQLite in production, a plain word
// list in memory for development and tests); this package owns the letter
// subset matching predicate and nothing else.

package corpus

import (
	"context"
	"strings"

	"github.com/lettergrid/beehive/internal/letters"
	"github.com/lettergrid/beehive/internal/puzzle"
)

// Lexicon answers letter-subset queries against a word corpus.
//
// WordsSubsetOf returns every corpus word whose letters are a subset of
// set, each tagged as a pangram when the word also uses every letter of
// set. Implementations may push the predicate down to a store as long as
// results match that definition exactly.
type Lexicon interface {
	WordsSubsetOf(ctx context.Context, set letters.Mask) ([]puzzle.Word, error)
}

const minWordLen = 4

// Normalize lowercases and trims w, reporting whether it is admissible
// corpus text: at least four characters, all ASCII letters.
func Normalize(w string) (string, bool) {
	w = strings.ToLower(strings.TrimSpace(w))
	if len(w) < minWordLen {
		return w, false
	}
	for i := 0; i < len(w); i++ {
		if w[i] < 'a' || w[i] > 'z' {
			return w, false
		}
	}
	return w, true
}
