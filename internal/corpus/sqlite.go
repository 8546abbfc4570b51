// internal/corpus/sqlite.go
//
// SQLite-backed corpus store. Each row holds the word text (primary key),
// its precomputed letter mask, and its length, so the subset predicate and
// the fuzzy-search length band both run as indexed SQL.

package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/lettergrid/beehive/internal/letters"
	"github.com/lettergrid/beehive/internal/puzzle"
)

const (
	defaultListLimit = 200
	searchLimit      = 15
)

// Store implements Lexicon plus the management operations (bulk add/remove,
// cursor listing, fuzzy search) on top of the words table.
type Store struct {
	db *sql.DB
}

// NewStore wraps an opened database handle.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// WordsSubsetOf returns every stored word writable with the letters of set.
// The subset test is pushed down as a bitwise predicate; the pangram flag
// falls out of the returned mask.
func (s *Store) WordsSubsetOf(ctx context.Context, set letters.Mask) ([]puzzle.Word, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT word, letter_mask FROM words WHERE (letter_mask & ?) = letter_mask`,
		int64(set),
	)
	if err != nil {
		return nil, fmt.Errorf("query words for mask %026b: %w", set, err)
	}
	defer rows.Close()

	var out []puzzle.Word
	for rows.Next() {
		var (
			text string
			mask int64
		)
		if err := rows.Scan(&text, &mask); err != nil {
			return nil, fmt.Errorf("scan word row: %w", err)
		}
		m := letters.Mask(mask)
		out = append(out, puzzle.Word{Text: text, Mask: m, IsPangram: m&set == set})
	}
	return out, rows.Err()
}

// AddWords inserts words in one statement, ignoring duplicates. Callers are
// expected to have normalized the words already (see Normalize); masks and
// lengths are derived here.
func (s *Store) AddWords(ctx context.Context, words []string) error {
	if len(words) == 0 {
		return nil
	}
	var b strings.Builder
	b.WriteString(`INSERT OR IGNORE INTO words (word, letter_mask, length) VALUES `)
	args := make([]any, 0, len(words)*3)
	for i, w := range words {
		mask, err := letters.WordMask(w)
		if err != nil {
			return fmt.Errorf("word %q: %w", w, err)
		}
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString("(?,?,?)")
		args = append(args, w, int64(mask), len(w))
	}
	if _, err := s.db.ExecContext(ctx, b.String(), args...); err != nil {
		return fmt.Errorf("insert %d words: %w", len(words), err)
	}
	return nil
}

// RemoveWords deletes words by text. Missing words are not an error.
func (s *Store) RemoveWords(ctx context.Context, words []string) error {
	if len(words) == 0 {
		return nil
	}
	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(words)), ",")
	args := make([]any, len(words))
	for i, w := range words {
		args[i] = strings.ToLower(strings.TrimSpace(w))
	}
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM words WHERE word IN (`+placeholders+`)`, args...); err != nil {
		return fmt.Errorf("delete %d words: %w", len(words), err)
	}
	return nil
}

// ListPage is one page of a keyset-paginated corpus listing.
type ListPage struct {
	Words []string
	Next  string // cursor word for the next page; empty on the last page
}

// List returns up to limit words in text order, strictly after the cursor
// word. It fetches one extra row to detect whether another page exists.
func (s *Store) List(ctx context.Context, after string, limit int) (ListPage, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT word FROM words WHERE word > ? ORDER BY word LIMIT ?`,
		after, limit+1,
	)
	if err != nil {
		return ListPage{}, fmt.Errorf("list words after %q: %w", after, err)
	}
	defer rows.Close()

	var page ListPage
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return ListPage{}, fmt.Errorf("scan word row: %w", err)
		}
		page.Words = append(page.Words, w)
	}
	if err := rows.Err(); err != nil {
		return ListPage{}, err
	}
	if len(page.Words) > limit {
		page.Words = page.Words[:limit]
		page.Next = page.Words[limit-1]
	}
	return page, nil
}

// Search ranks corpus words by edit distance to q and returns the closest
// matches. Candidates are narrowed to a length band around q first so the
// in-process ranking never walks the whole table.
func (s *Store) Search(ctx context.Context, q string) ([]string, error) {
	q = strings.ToLower(strings.TrimSpace(q))
	lo, hi := len(q)-2, len(q)+2
	if lo < minWordLen {
		lo = minWordLen
	}
	rows, err := s.db.QueryContext(ctx,
		`SELECT word FROM words WHERE length BETWEEN ? AND ?`, lo, hi,
	)
	if err != nil {
		return nil, fmt.Errorf("search words like %q: %w", q, err)
	}
	defer rows.Close()

	type ranked struct {
		word string
		dist int
	}
	var candidates []ranked
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scan word row: %w", err)
		}
		candidates = append(candidates, ranked{word: w, dist: levenshtein.ComputeDistance(q, w)})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].word < candidates[j].word
	})
	if len(candidates) > searchLimit {
		candidates = candidates[:searchLimit]
	}
	out := make([]string, len(candidates))
	for i, c := range candidates {
		out[i] = c.word
	}
	return out, nil
}

// Count reports how many words the corpus holds.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM words`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count words: %w", err)
	}
	return n, nil
}
