package puzzle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lettergrid/beehive/internal/letters"
)

func TestCheckGuessVerdicts(t *testing.T) {
	cfg := newTestConfig(t)
	submitted := map[string]struct{}{"nice": {}, "icon": {}}

	tests := []struct {
		name      string
		candidate string
		want      Verdict
	}{
		{"too short", "ice", VerdictTooShort},
		{"already guessed", "icon", VerdictAlreadyGuessed},
		{"missing required letter", "oxen", VerdictMissingRequired},
		{"letter outside the set", "comic", VerdictBadLetters},
		{"non-letter character", "c0in", VerdictBadLetters},
		{"valid letters but not a word", "cilo", VerdictNotInList},
		{"accepted", "clone", VerdictAccepted},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := cfg.CheckGuess(tt.candidate, submitted)
			assert.Equal(t, tt.want, res.Verdict)
		})
	}
}

// The check order is authoritative: a guess that is both too short and
// already submitted reports too_short.
func TestCheckGuessOrder(t *testing.T) {
	cfg := newTestConfig(t)
	submitted := map[string]struct{}{"ice": {}}

	res := cfg.CheckGuess("ice", submitted)
	assert.Equal(t, VerdictTooShort, res.Verdict)

	// Already-guessed wins over the missing required letter.
	submitted["oxen"] = struct{}{}
	res = cfg.CheckGuess("oxen", submitted)
	assert.Equal(t, VerdictAlreadyGuessed, res.Verdict)
}

func TestCheckGuessNormalizes(t *testing.T) {
	cfg := newTestConfig(t)
	res := cfg.CheckGuess("  CLONE ", nil)
	assert.Equal(t, VerdictAccepted, res.Verdict)
	assert.Equal(t, 5, res.Points)
	assert.False(t, res.IsPangram)
}

// The pangram flag on acceptance comes from the candidate's own letters,
// independent of whatever flag the stored word carries.
func TestCheckGuessRecomputesPangram(t *testing.T) {
	cfg := NewConfig('c', []byte{'e', 'i', 'l', 'n', 'o', 'x'}, []Word{
		mustWord(t, "lexicon", false), // deliberately mistagged
		mustWord(t, "nice", true),     // deliberately mistagged
	}, nil)

	res := cfg.CheckGuess("lexicon", nil)
	require.Equal(t, VerdictAccepted, res.Verdict)
	assert.True(t, res.IsPangram)
	assert.Equal(t, 14, res.Points)

	res = cfg.CheckGuess("nice", nil)
	require.Equal(t, VerdictAccepted, res.Verdict)
	assert.False(t, res.IsPangram)
	assert.Equal(t, 1, res.Points)
}

// ------------------------------ helpers -------------------------------------

func mustWord(t *testing.T, text string, pangram bool) Word {
	t.Helper()
	m, err := letters.WordMask(text)
	require.NoError(t, err)
	return Word{Text: text, Mask: m, IsPangram: pangram}
}

func newTestConfig(t *testing.T) *Config {
	t.Helper()
	words := []Word{
		mustWord(t, "lexicon", true),
		mustWord(t, "exile", false),
		mustWord(t, "nice", false),
		mustWord(t, "icon", false),
		mustWord(t, "coin", false),
		mustWord(t, "clone", false),
		mustWord(t, "once", false),
		mustWord(t, "ice", false), // below min length, never accepted
	}
	return NewConfig('c', []byte{'e', 'i', 'l', 'n', 'o', 'x'}, words, nil)
}

func wordTexts(ws []Word) []string {
	out := make([]string, len(ws))
	for i, w := range ws {
		out[i] = w.Text
	}
	return out
}

func lettersOf(cfg *Config) []byte {
	return letters.Letters(cfg.LetterSet())
}
