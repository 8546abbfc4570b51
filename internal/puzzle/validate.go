// internal/puzzle/validate.go
//
// Guess validation for a puzzle Config. Verdicts are ordinary results shown
// to the player, never failures; the check order below is part of the game's
// contract and must not be rearranged.

package puzzle

import (
	"strings"

	"github.com/lettergrid/beehive/internal/letters"
)

// Verdict classifies a player's guess.
type Verdict string

const (
	VerdictTooShort        Verdict = "too_short"
	VerdictAlreadyGuessed  Verdict = "already_guessed"
	VerdictMissingRequired Verdict = "missing_required_letter"
	VerdictBadLetters      Verdict = "bad_letters"
	VerdictNotInList       Verdict = "not_in_list"
	VerdictAccepted        Verdict = "accepted"
)

// GuessResult is the outcome of checking one guess. Points and IsPangram
// are only meaningful when Verdict is VerdictAccepted.
type GuessResult struct {
	Verdict   Verdict `json:"verdict"`
	Points    int     `json:"points"`
	IsPangram bool    `json:"is_pangram"`
}

// CheckGuess evaluates candidate against the puzzle, first failure wins:
// length, repeat, required letter, stray letters, dictionary membership.
// On acceptance the pangram flag is recomputed from the candidate's own
// letters rather than trusted from the stored word.
func (c *Config) CheckGuess(candidate string, submitted map[string]struct{}) GuessResult {
	candidate = strings.ToLower(strings.TrimSpace(candidate))

	if len(candidate) < 4 {
		return GuessResult{Verdict: VerdictTooShort}
	}
	if _, ok := submitted[candidate]; ok {
		return GuessResult{Verdict: VerdictAlreadyGuessed}
	}
	if !strings.Contains(candidate, c.RequiredLetter) {
		return GuessResult{Verdict: VerdictMissingRequired}
	}
	set := c.LetterSet()
	mask, err := letters.WordMask(candidate)
	if err != nil || mask&^set != 0 {
		return GuessResult{Verdict: VerdictBadLetters}
	}
	if _, ok := c.Lookup(candidate); !ok {
		return GuessResult{Verdict: VerdictNotInList}
	}

	pangram := mask&set == set
	return GuessResult{
		Verdict:   VerdictAccepted,
		Points:    Score(candidate, pangram),
		IsPangram: pangram,
	}
}
