package validator

import (
	"fmt"
	"strings"
	"time"
)

// dateLayouts lists the accepted calendar date formats. Date-only input is the
// common case; the others cover datetime-local style values.
var dateLayouts = []string{
	time.DateOnly,
	time.RFC3339,
	"2006-01-02T15:04",
}

// ParseDate parses a calendar date. Surrounding whitespace is ignored.
func ParseDate(value string) (time.Time, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Age returns the number of full years between birthdate and now, comparing
// year, month and day rather than elapsed duration.
func Age(birthdate, now time.Time) int {
	age := now.Year() - birthdate.Year()

	// Birthday hasn't come round yet this year
	if now.Month() < birthdate.Month() ||
		(now.Month() == birthdate.Month() && now.Day() < birthdate.Day()) {
		age--
	}

	return age
}

// ValidDate validates that a string parses as a calendar date.
func ValidDate(field, value string) Rule {
	return Rule{
		Check: func() bool {
			_, ok := ParseDate(value)
			return ok
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid date",
			TranslationKey: "validation.date",
			TranslationValues: map[string]any{
				"field": field,
			},
			Reason: ErrFormatInvalid,
		},
	}
}

// MinAge validates that the birth date in value is at least minAge years
// before now. A value that does not parse never passes.
func MinAge(field, value string, minAge int, now time.Time) Rule {
	return Rule{
		Check: func() bool {
			birthdate, ok := ParseDate(value)
			if !ok {
				return false
			}
			return Age(birthdate, now) >= minAge
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("minimum age of %d years required", minAge),
			TranslationKey: "validation.min_age",
			TranslationValues: map[string]any{
				"field":   field,
				"min_age": minAge,
			},
			Reason: ErrConstraintUnmet,
		},
	}
}
