package daily

import (
	"fmt"
	"strconv"
)

// maxOffsetHours bounds accepted offsets to the range real timezones use.
const maxOffsetHours = 14

// ParseOffset converts a "±HH:MM" UTC offset string to seconds east of UTC.
// Callers identify their day by supplying an offset, not a zone name.
func ParseOffset(s string) (int, error) {
	if len(s) != 6 || (s[0] != '+' && s[0] != '-') || s[3] != ':' ||
		!isDigits(s[1:3]) || !isDigits(s[4:6]) {
		return 0, fmt.Errorf("invalid utc offset %q, want ±HH:MM", s)
	}
	hh, _ := strconv.Atoi(s[1:3])
	mm, _ := strconv.Atoi(s[4:6])
	if mm > 59 || hh > maxOffsetHours || (hh == maxOffsetHours && mm != 0) {
		return 0, fmt.Errorf("invalid utc offset %q, want ±HH:MM", s)
	}
	sec := (hh*60 + mm) * 60
	if s[0] == '-' {
		sec = -sec
	}
	return sec, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
