package validator

import (
	"regexp"
	"unicode/utf8"
)

// PasswordSpecialChars is the closed set of symbols a password may contain
// and must contain at least one of.
const PasswordSpecialChars = "@$!%*?&"

// PasswordMinLength is the shortest accepted password.
const PasswordMinLength = 8

var (
	uppercaseRegex   = regexp.MustCompile(`[A-Z]`)
	lowercaseRegex   = regexp.MustCompile(`[a-z]`)
	digitRegex       = regexp.MustCompile(`[0-9]`)
	specialCharRegex = regexp.MustCompile(`[@$!%*?&]`)

	// RE2 has no lookahead, so the alphabet is checked on its own and the
	// per-class requirements by the regexes above.
	passwordAlphabetRegex = regexp.MustCompile(`^[A-Za-z\d@$!%*?&]+$`)
)

// StrongPassword requires at least PasswordMinLength characters drawn only
// from letters, digits and PasswordSpecialChars, with at least one lowercase
// letter, one uppercase letter, one digit and one special character.
func StrongPassword(field, value string) Rule {
	return Rule{
		Check: func() bool {
			if utf8.RuneCountInString(value) < PasswordMinLength {
				return false
			}
			if !passwordAlphabetRegex.MatchString(value) {
				return false
			}
			return lowercaseRegex.MatchString(value) &&
				uppercaseRegex.MatchString(value) &&
				digitRegex.MatchString(value) &&
				specialCharRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "password must be at least 8 characters with upper, lower, digit and special character",
			TranslationKey: "validation.password_strength",
			TranslationValues: map[string]any{
				"field":         field,
				"min_length":    PasswordMinLength,
				"special_chars": PasswordSpecialChars,
			},
			Reason: ErrFormatInvalid,
		},
	}
}
