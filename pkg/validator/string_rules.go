package validator

import (
	"regexp"
	"strings"
)

// personNameRegex admits ASCII letters and whitespace, at least three of them.
var personNameRegex = regexp.MustCompile(`^[A-Za-z` + whitespace + `]{3,}$`)

// RequiredString validates that a string is not empty after trimming whitespace.
func RequiredString(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return strings.TrimSpace(value) != ""
		},
		Error: ValidationError{
			Field:          field,
			Message:        "field is required",
			TranslationKey: "validation.required",
			TranslationValues: map[string]any{
				"field": field,
			},
			Reason: ErrValueMissing,
		},
	}
}

// PersonName accepts letters and whitespace only, three characters minimum.
// The value is checked as given; callers trim first.
func PersonName(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return personNameRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be at least 3 letters or spaces",
			TranslationKey: "validation.person_name",
			TranslationValues: map[string]any{
				"field": field,
				"min":   3,
			},
			Reason: ErrFormatInvalid,
		},
	}
}
