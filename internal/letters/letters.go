// internal/letters/letters.go
//
// Bitmask encoding of lowercase latin letters.
// A Mask is a 32-bit set: bit i set means letter 'a'+i is present.
// Union is bitwise OR; "a is a subset of b" is a&b == a.

package letters

import (
	"errors"
	"fmt"
	"math/bits"
)

// Mask is a set of lowercase latin letters, one bit per alphabet position.
type Mask uint32

const alphabetSize = 26

// ErrNotALetter reports input outside 'a'..'z'. Callers must normalize
// (lowercase, strip) before encoding.
var ErrNotALetter = errors.New("letters: not a lowercase latin letter")

// LetterMask returns the single-bit mask for c.
func LetterMask(c byte) (Mask, error) {
	if c < 'a' || c > 'z' {
		return 0, fmt.Errorf("%w: %q", ErrNotALetter, c)
	}
	return 1 << (c - 'a'), nil
}

// Letter reverses LetterMask. The mask must have exactly one bit set;
// anything else is a programming error and panics.
func Letter(m Mask) byte {
	if bits.OnesCount32(uint32(m)) != 1 {
		panic(fmt.Sprintf("letters: mask %026b does not have exactly one bit set", m))
	}
	return 'a' + byte(bits.TrailingZeros32(uint32(m)))
}

// WordMask folds LetterMask over every character of s. Repeated letters
// contribute no extra bits.
func WordMask(s string) (Mask, error) {
	var m Mask
	for i := 0; i < len(s); i++ {
		lm, err := LetterMask(s[i])
		if err != nil {
			return 0, err
		}
		m |= lm
	}
	return m, nil
}

// Letters expands m into its letters in ascending alphabet order.
func Letters(m Mask) []byte {
	out := make([]byte, 0, bits.OnesCount32(uint32(m)))
	for i := 0; i < alphabetSize; i++ {
		if m&(1<<i) != 0 {
			out = append(out, 'a'+byte(i))
		}
	}
	return out
}

// Count returns the number of letters in m.
func Count(m Mask) int { return bits.OnesCount32(uint32(m)) }
