package validator

import "errors"

// Failure kinds. Every Rule built by this package carries exactly one of them
// as its Reason.
var (
	// ErrValidationFailed is returned when validation fails but no specific error is provided.
	ErrValidationFailed = errors.New("validation failed")

	// ErrFormatInvalid is the reason for a regex or grammar mismatch.
	ErrFormatInvalid = errors.New("invalid format")

	// ErrValueMissing is the reason for a required value that is empty or unchecked.
	ErrValueMissing = errors.New("value is missing")

	// ErrValueMismatch is the reason for a value that must equal another one and does not.
	ErrValueMismatch = errors.New("values do not match")

	// ErrConstraintUnmet is the reason for a well-formed value outside the allowed range.
	ErrConstraintUnmet = errors.New("constraint not met")

	// ErrUnknownField is the reason for a field no rule is registered for.
	ErrUnknownField = errors.New("unknown field")
)
