// internal/puzzle/types.go
//
// Core types for the daily letter-subset puzzle.
// Defines:
//   - Word: a dictionary entry matched against a puzzle letter set.
//   - ScoreBucket: a named rank with a minimum cumulative score.
//   - Config: the full puzzle of the day (letters, valid words, rank table).

package puzzle

import (
	"sort"
	"sync"

	"github.com/lettergrid/beehive/internal/letters"
)

// Word is one dictionary entry valid for a specific puzzle. Identity is the
// text alone; IsPangram is relative to the letter set the word was matched
// against, so two Words with the same text are the same word even when their
// flags differ.
type Word struct {
	Text      string       `json:"word"`
	Mask      letters.Mask `json:"-"`
	IsPangram bool         `json:"is_pangram"`
}

// Score returns the point value of the word.
func (w Word) Score() int { return Score(w.Text, w.IsPangram) }

// Score computes the point value of a guess: four-letter words are worth a
// single point, longer words are worth their length, and pangrams earn a
// seven point bonus on top.
func Score(text string, pangram bool) int {
	if len(text) == 4 {
		return 1
	}
	n := len(text)
	if pangram {
		n += 7
	}
	return n
}

// ScoreBucket is a named rank threshold expressed as a minimum cumulative
// score for the day's puzzle.
type ScoreBucket struct {
	Label    string `json:"label"`
	MinScore int    `json:"min_score"`
}

// Config is the puzzle of the day. It is immutable once built: a new day
// gets a new Config, never an edit of the old one.
type Config struct {
	ScoreBuckets   []ScoreBucket `json:"score_buckets"`
	RequiredLetter string        `json:"required_letter"`
	OtherLetters   []string      `json:"other_letters"`
	ValidWords     []Word        `json:"valid_words"`

	indexOnce sync.Once
	byText    map[string]Word
	letterSet letters.Mask
}

// NewConfig assembles a Config from a drawn letter set and its matched
// words. Words are sorted by text so serialized configs compare bit for bit.
func NewConfig(required byte, others []byte, words []Word, buckets []ScoreBucket) *Config {
	sort.Slice(words, func(i, j int) bool { return words[i].Text < words[j].Text })
	other := make([]string, len(others))
	for i, o := range others {
		other[i] = string(o)
	}
	return &Config{
		ScoreBuckets:   buckets,
		RequiredLetter: string(required),
		OtherLetters:   other,
		ValidWords:     words,
	}
}

// index lazily builds the text lookup and the combined letter mask. Configs
// arrive either from NewConfig or from a JSON decode, so this cannot assume
// a constructor ran.
func (c *Config) index() {
	c.indexOnce.Do(func() {
		c.byText = make(map[string]Word, len(c.ValidWords))
		for _, w := range c.ValidWords {
			c.byText[w.Text] = w
		}
		set, err := letters.WordMask(c.RequiredLetter)
		if err != nil {
			panic("puzzle: config has invalid required letter " + c.RequiredLetter)
		}
		for _, o := range c.OtherLetters {
			m, err := letters.WordMask(o)
			if err != nil {
				panic("puzzle: config has invalid letter " + o)
			}
			set |= m
		}
		c.letterSet = set
	})
}

// LetterSet returns the union mask of the required letter and the six
// companions.
func (c *Config) LetterSet() letters.Mask {
	c.index()
	return c.letterSet
}

// Lookup reports whether text is one of the puzzle's valid words.
func (c *Config) Lookup(text string) (Word, bool) {
	c.index()
	w, ok := c.byText[text]
	return w, ok
}
