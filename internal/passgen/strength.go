package passgen

import "unicode/utf16"

// Strength is a coarse password rating.
type Strength string

const (
	Weak   Strength = "weak"
	Medium Strength = "medium"
	Strong Strength = "strong"
)

// MaxPoints is the highest value Points can return.
const MaxPoints = 6

// Points scores a password: up to 2 for length (8+ gives 1, 12+ gives 2)
// and 1 for each of uppercase, lowercase, digit and any other character.
func Points(password string) int {
	var hasUpper, hasLower, hasDigit, hasOther bool
	length := 0
	for _, r := range password {
		// Length is measured in UTF-16 code units, as browsers report it.
		length += utf16.RuneLen(r)
		switch {
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= '0' && r <= '9':
			hasDigit = true
		default:
			hasOther = true
		}
	}

	score := 0
	switch {
	case length >= 12:
		score += 2
	case length >= 8:
		score++
	}
	for _, ok := range []bool{hasUpper, hasLower, hasDigit, hasOther} {
		if ok {
			score++
		}
	}

	return score
}

// Score rates a password. Any string, including the empty one, is accepted.
func Score(password string) Strength {
	switch p := Points(password); {
	case p >= 5:
		return Strong
	case p >= 3:
		return Medium
	default:
		return Weak
	}
}
