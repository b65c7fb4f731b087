package traittable

import (
	"math"
	"strconv"
	"strings"
	"unicode"
)

// Trait codes. Any other value means the trait was not measured.
const (
	Absent   = 0
	Present  = 1
	Unscored = 2
)

// ParseCode converts a trait cell to an integer code using a permissive
// policy: leading whitespace is ignored, an optional sign and the leading run
// of decimal digits are used, and anything after them is discarded. A cell
// with no leading digits becomes 0. ok is false whenever the cell was not a
// plain integer (surrounding whitespace aside), so callers can reject it.
// Empty cells are 0 with ok true.
//
// Note that under this policy garbage and an explicit 0 are
// indistinguishable, which is why Options.Strict exists.
func ParseCode(cell string) (code int, ok bool) {
	trimmed := strings.TrimSpace(cell)
	if trimmed == "" {
		return 0, true
	}

	s := strings.TrimLeftFunc(cell, unicode.IsSpace)
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}

	if end == digitsStart {
		return 0, false
	}

	v, err := strconv.Atoi(s[:end])
	if err != nil {
		// Out of range for int. It is certainly not 0 or 1.
		if s[0] == '-' {
			return math.MinInt32, false
		}
		return math.MaxInt32, false
	}

	return v, s[:end] == trimmed
}

// Measured reports whether code is a scored absence or presence.
func Measured(code int) bool {
	return code == Absent || code == Present
}
