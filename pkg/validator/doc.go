// Package validator provides the rule primitives used by the signup form:
// small Rule values that pair a boolean Check with translation-friendly error
// metadata, plus the concrete checks the form fields need (person names,
// email addresses, phone numbers, dates and minimum age, websites, strong
// passwords, confirmations and accepted checkboxes).
//
// Rules are evaluated with Apply, which runs every rule and aggregates the
// failures into a ValidationErrors slice that satisfies the error interface.
//
// # Failure kinds
//
// Each ValidationError carries a Reason, one of:
//
//   - ErrFormatInvalid   – regex or grammar mismatch
//   - ErrValueMissing    – required value is empty or unchecked
//   - ErrValueMismatch   – confirmation does not equal its source
//   - ErrConstraintUnmet – well-formed value outside the allowed range
//
// ValidationErrors unwraps to its reasons, so errors.Is works on the
// aggregate:
//
//	err := validator.Apply(
//	    validator.RequiredString("email", email),
//	    validator.ValidEmail("email", email),
//	)
//	if errors.Is(err, validator.ErrValueMissing) {
//	    // nothing typed yet
//	}
//
// Rules never trim their input. Callers normalise values first so that the
// same trimmed string flows through every rule of a field.
//
// The package is stateless; rules that depend on the current date take the
// reference time as an argument.
package validator
