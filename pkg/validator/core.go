package validator

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError represents a single validation error with translation support.
// Reason is one of the failure-kind sentinels from errors.go.
type ValidationError struct {
	Field             string
	Message           string
	TranslationKey    string
	TranslationValues map[string]any
	Reason            error
}

// ValidationErrors represents a collection of validation errors.
type ValidationErrors []ValidationError

func (ve ValidationErrors) Error() string {
	if len(ve) == 0 {
		return "validation failed"
	}

	var parts []string
	for _, err := range ve {
		parts = append(parts, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Unwrap exposes the failure reasons so errors.Is can match ErrFormatInvalid,
// ErrValueMissing and friends against an aggregated error.
func (ve ValidationErrors) Unwrap() []error {
	reasons := make([]error, 0, len(ve)+1)
	reasons = append(reasons, ErrValidationFailed)
	for _, err := range ve {
		if err.Reason != nil {
			reasons = append(reasons, err.Reason)
		}
	}
	return reasons
}

func (ve *ValidationErrors) Add(err ValidationError) {
	*ve = append(*ve, err)
}

// First returns the earliest failure, which is the one a single-message UI shows.
func (ve ValidationErrors) First() (ValidationError, bool) {
	if len(ve) == 0 {
		return ValidationError{}, false
	}
	return ve[0], true
}

func (ve ValidationErrors) IsEmpty() bool {
	return len(ve) == 0
}

// Rule represents a single validation rule.
type Rule struct {
	Check func() bool
	Error ValidationError
}

// Apply executes multiple validation rules and returns any validation errors.
// Every rule runs; failures keep the order the rules were given in.
func Apply(rules ...Rule) error {
	var errors ValidationErrors

	for _, rule := range rules {
		if !rule.Check() {
			errors.Add(rule.Error)
		}
	}

	if errors.IsEmpty() {
		return nil
	}

	return errors
}

// ExtractValidationErrors extracts ValidationErrors from an error.
func ExtractValidationErrors(err error) ValidationErrors {
	if err == nil {
		return nil
	}

	var validationErr ValidationErrors
	if errors.As(err, &validationErr) {
		return validationErr
	}

	return nil
}
