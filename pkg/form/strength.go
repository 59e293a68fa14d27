package form

import "unicode/utf16"

// MaxStrength is the highest strength score.
const MaxStrength = 5

// ComputeStrength scores a raw password from 0 to MaxStrength, one point each
// for: non-empty, at least 8 UTF-16 code units, both lower and upper case ASCII
// letters, an ASCII digit, a character outside [A-Za-z0-9].
//
// The score is a presentation hint only; it does not decide validity.
func ComputeStrength(password string) int {
	if password == "" {
		return 0
	}

	score := 1
	if utf16Len(password) >= 8 {
		score++
	}

	var lower, upper, digit, other bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z':
			lower = true
		case r >= 'A' && r <= 'Z':
			upper = true
		case r >= '0' && r <= '9':
			digit = true
		default:
			other = true
		}
	}
	if lower && upper {
		score++
	}
	if digit {
		score++
	}
	if other {
		score++
	}
	return score
}

// Tier is the presentation bucket of a strength score.
type Tier int

const (
	TierNone Tier = iota
	TierWeak
	TierMedium
	TierStrong
)

// TierFor buckets a score: 0 none, 1-2 weak, 3 medium, 4-5 strong.
func TierFor(score int) Tier {
	switch {
	case score <= 0:
		return TierNone
	case score <= 2:
		return TierWeak
	case score == 3:
		return TierMedium
	default:
		return TierStrong
	}
}

// Percent is the indicator fill for the tier.
func (t Tier) Percent() int {
	switch t {
	case TierWeak:
		return 30
	case TierMedium:
		return 60
	case TierStrong:
		return 100
	default:
		return 0
	}
}

// Color is the indicator fill color for the tier.
func (t Tier) Color() string {
	switch t {
	case TierWeak:
		return "#e74c3c"
	case TierMedium:
		return "#f1c40f"
	case TierStrong:
		return "#2ecc71"
	default:
		return "transparent"
	}
}

func (t Tier) String() string {
	switch t {
	case TierWeak:
		return "weak"
	case TierMedium:
		return "medium"
	case TierStrong:
		return "strong"
	default:
		return "none"
	}
}

// Key is the translation key of the tier label.
func (t Tier) Key() string {
	return "form.strength." + t.String()
}

// utf16Len is the length of s as a browser input reports it; characters
// outside the BMP count twice.
func utf16Len(s string) int {
	n := 0
	for _, r := range s {
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}
