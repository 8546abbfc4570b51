// internal/generator/generator.go
//
// Daily puzzle generation by rejection sampling over letter sets: draw a
// required letter plus six distinct companions, collect every corpus word
// writable with them, retry until at least one candidate uses all seven.
//
// There is no retry cap. A pathologically sparse corpus (no pangram for any
// seven-letter set) makes Generate spin until its context is cancelled; a
// real dictionary of tens of thousands of words terminates after a handful
// of draws, so a non-trivial corpus is an operational precondition, not a
// runtime error.

package generator

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lettergrid/beehive/internal/corpus"
	"github.com/lettergrid/beehive/internal/letters"
	"github.com/lettergrid/beehive/internal/puzzle"
)

// Rank labels and the cumulative-score fractions of the first eight ranks.
// The ninth rank (Genius) sits at the full achievable score.
var (
	bucketLabels    = [9]string{"Beginner", "Good Start", "Moving Up", "Good", "Solid", "Nice", "Great", "Amazing", "Genius"}
	bucketFractions = [8]float64{0.0, 0.02, 0.05, 0.08, 0.15, 0.25, 0.4, 0.5}
)

const otherLetterCount = 6

// Generator builds solvable puzzles from a corpus. The random source is
// seeded per call, by default from the current UTC epoch day, so repeated
// calls within one day draw the same candidate sequence.
type Generator struct {
	lex  corpus.Lexicon
	seed func() int64
}

// New returns a day-seeded Generator over lex.
func New(lex corpus.Lexicon) *Generator {
	return &Generator{lex: lex, seed: epochDay}
}

// NewSeeded fixes the seed source. Tests use it to force both the
// found-immediately and the several-retries paths deterministically.
func NewSeeded(lex corpus.Lexicon, seed func() int64) *Generator {
	return &Generator{lex: lex, seed: seed}
}

func epochDay() int64 { return time.Now().UTC().Unix() / 86400 }

// Generate runs the rejection-sampling loop and assembles the accepted
// letter set, its valid words, and the score bucket table. A corpus error
// aborts the attempt and propagates; no default puzzle is ever substituted.
func (g *Generator) Generate(ctx context.Context) (*puzzle.Config, error) {
	rng := rand.New(rand.NewSource(g.seed()))
	for attempt := 1; ; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		required, others := drawLetters(rng)
		set := letterSet(required, others)

		words, err := g.lex.WordsSubsetOf(ctx, set)
		if err != nil {
			return nil, fmt.Errorf("corpus lookup: %w", err)
		}
		if !hasPangram(words) {
			continue
		}

		log.Debug().
			Int("attempt", attempt).
			Str("letters", string(letters.Letters(set))).
			Int("words", len(words)).
			Msg("accepted puzzle letter set")
		return puzzle.NewConfig(required, others, words, scoreBuckets(words)), nil
	}
}

// drawLetters picks seven distinct letters uniformly without replacement;
// the first becomes the required letter.
func drawLetters(rng *rand.Rand) (required byte, others []byte) {
	perm := rng.Perm(26)
	required = 'a' + byte(perm[0])
	others = make([]byte, otherLetterCount)
	for i := range others {
		others[i] = 'a' + byte(perm[i+1])
	}
	return required, others
}

func letterSet(required byte, others []byte) letters.Mask {
	set, err := letters.LetterMask(required)
	if err != nil {
		panic(err)
	}
	for _, o := range others {
		m, err := letters.LetterMask(o)
		if err != nil {
			panic(err)
		}
		set |= m
	}
	return set
}

func hasPangram(words []puzzle.Word) bool {
	for _, w := range words {
		if w.IsPangram {
			return true
		}
	}
	return false
}

// scoreBuckets derives the nine rank thresholds from the total achievable
// score. Fractional thresholds truncate toward zero; the final rank
// requires every available point.
func scoreBuckets(words []puzzle.Word) []puzzle.ScoreBucket {
	maxScore := 0
	for _, w := range words {
		maxScore += w.Score()
	}
	out := make([]puzzle.ScoreBucket, 0, len(bucketLabels))
	for i, f := range bucketFractions {
		out = append(out, puzzle.ScoreBucket{Label: bucketLabels[i], MinScore: int(float64(maxScore) * f)})
	}
	return append(out, puzzle.ScoreBucket{Label: bucketLabels[len(bucketLabels)-1], MinScore: maxScore})
}
