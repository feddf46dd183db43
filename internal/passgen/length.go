package passgen

import (
	"strconv"
	"strings"
)

const (
	MinLength     = 4
	MaxLength     = 50
	DefaultLength = 12
)

// ClampLength forces n into [MinLength, MaxLength].
func ClampLength(n int) int {
	return max(MinLength, min(MaxLength, n))
}

// ParseLength interprets raw user input as a length. Leading whitespace and
// an optional sign are followed by the leading run of digits, so "30.5" and
// "30px" both read as 30. Input without leading digits falls back to
// DefaultLength; the result is always clamped.
func ParseLength(raw string) int {
	s := strings.TrimSpace(raw)

	sign := ""
	if s != "" && (s[0] == '+' || s[0] == '-') {
		sign, s = s[:1], s[1:]
	}

	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == 0 {
		return DefaultLength
	}

	n, err := strconv.Atoi(sign + s[:end])
	if err != nil {
		// Only overflow is possible here.
		if sign == "-" {
			return MinLength
		}
		return MaxLength
	}
	return ClampLength(n)
}
