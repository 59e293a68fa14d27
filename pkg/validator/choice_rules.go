package validator

// Accepted validates that a checkbox-style boolean is checked.
func Accepted(field string, checked bool) Rule {
	return Rule{
		Check: func() bool {
			return checked
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be accepted",
			TranslationKey: "validation.accepted",
			TranslationValues: map[string]any{
				"field": field,
			},
			Reason: ErrValueMissing,
		},
	}
}
