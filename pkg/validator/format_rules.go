package validator

import (
	"regexp"
)

// whitespace is the body of a character class for ECMAScript whitespace,
// which RE2's ASCII-only \s does not cover.
const whitespace = `\t\n\v\f\r\p{Z}\x{feff}`

// lineTerminators cannot appear in a quoted local part.
const lineTerminators = `\n\r\x{2028}\x{2029}`

var (
	// Local part (dot-atoms or a quoted string), '@', then a dotted domain
	// ending in a 2+ letter TLD or a bracketed IPv4 literal.
	emailRegex = regexp.MustCompile(`^(([^<>()\[\]\\.,;:` + whitespace + `@"]+(\.[^<>()\[\]\\.,;:` + whitespace + `@"]+)*)|("[^` + lineTerminators + `]+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)

	// Exactly ten decimal digits, no separators or country code.
	phoneRegex = regexp.MustCompile(`^\d{10}$`)

	// Optional http(s) scheme, dotted lowercase domain, optional path.
	websiteRegex = regexp.MustCompile(`^(https?://)?([\da-z\.-]+)\.([a-z\.]{2,6})([/\w \.-]*)*/?$`)
)

// ValidEmail validates an email address against a local-part@domain grammar
// that also accepts quoted local parts and bracketed IPv4 domains.
func ValidEmail(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return emailRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid email address",
			TranslationKey: "validation.email",
			TranslationValues: map[string]any{
				"field": field,
			},
			Reason: ErrFormatInvalid,
		},
	}
}

// ValidPhone validates a ten digit phone number.
func ValidPhone(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return phoneRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be exactly 10 digits",
			TranslationKey: "validation.phone",
			TranslationValues: map[string]any{
				"field":  field,
				"digits": 10,
			},
			Reason: ErrFormatInvalid,
		},
	}
}

// ValidWebsite validates a website address. The scheme is optional but, when
// present, must be http or https.
func ValidWebsite(field, value string) Rule {
	return Rule{
		Check: func() bool {
			return websiteRegex.MatchString(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid URL",
			TranslationKey: "validation.url",
			TranslationValues: map[string]any{
				"field": field,
			},
			Reason: ErrFormatInvalid,
		},
	}
}

// Optional wraps rules for a field that may be left blank: an empty value
// passes, anything else must satisfy every wrapped rule.
func Optional(value string, rules ...Rule) []Rule {
	if value == "" {
		return nil
	}
	return rules
}
