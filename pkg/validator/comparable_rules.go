package validator

// EqualTo validates that value equals other exactly, as used for
// confirmation fields. otherField names the field being confirmed.
func EqualTo[T comparable](field string, value T, otherField string, other T) Rule {
	return Rule{
		Check: func() bool {
			return value == other
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must match " + otherField,
			TranslationKey: "validation.equal_to",
			TranslationValues: map[string]any{
				"field": field,
				"other": otherField,
			},
			Reason: ErrValueMismatch,
		},
	}
}
