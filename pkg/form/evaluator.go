package form

import (
	"strings"
	"time"

	"github.com/dmitrymomot/formcheck/pkg/validator"
)

// MinimumAge is the youngest accepted age in full years.
const MinimumAge = 18

// EvalContext carries the cross-field and environmental inputs some rules need.
type EvalContext struct {
	// Password is the current raw value of the Password field.
	Password string
	// Now is the reference time for the age rule. Zero means time.Now().
	Now time.Time
}

// Result is the outcome of a single evaluation. Message is empty iff OK.
type Result struct {
	OK      bool
	Message string
	// Key is the translation key of Message.
	Key string
	// Err is the failure kind (validator.ErrFormatInvalid and friends); nil when OK.
	Err error
}

type fieldRule struct {
	message string
	rules   func(name string, v Value, ec EvalContext) []validator.Rule
}

var fieldRules = [fieldCount]fieldRule{
	Name: {
		message: "Name must be at least 3 chars (letters only)",
		rules: func(name string, v Value, _ EvalContext) []validator.Rule {
			s := strings.TrimSpace(v.Text)
			return []validator.Rule{
				validator.RequiredString(name, s),
				validator.PersonName(name, s),
			}
		},
	},
	Email: {
		message: "Please provide a valid email",
		rules: func(name string, v Value, _ EvalContext) []validator.Rule {
			s := strings.TrimSpace(v.Text)
			return []validator.Rule{
				validator.RequiredString(name, s),
				validator.ValidEmail(name, s),
			}
		},
	},
	Phone: {
		message: "Phone must be 10 digits",
		rules: func(name string, v Value, _ EvalContext) []validator.Rule {
			s := strings.TrimSpace(v.Text)
			return []validator.Rule{
				validator.RequiredString(name, s),
				validator.ValidPhone(name, s),
			}
		},
	},
	DateOfBirth: {
		message: "You must be at least 18 years old",
		rules: func(name string, v Value, ec EvalContext) []validator.Rule {
			s := strings.TrimSpace(v.Text)
			return []validator.Rule{
				validator.RequiredString(name, s),
				validator.ValidDate(name, s),
				validator.MinAge(name, s, MinimumAge, ec.Now),
			}
		},
	},
	Website: {
		message: "Please include a valid URL (http/https)",
		rules: func(name string, v Value, _ EvalContext) []validator.Rule {
			s := strings.TrimSpace(v.Text)
			return validator.Optional(s, validator.ValidWebsite(name, s))
		},
	},
	Password: {
		message: "Min 8 chars, Upper/Lower, Number & Special Char",
		rules: func(name string, v Value, _ EvalContext) []validator.Rule {
			s := strings.TrimSpace(v.Text)
			return []validator.Rule{
				validator.RequiredString(name, s),
				validator.StrongPassword(name, s),
			}
		},
	},
	ConfirmPassword: {
		message: "Passwords do not match",
		rules: func(name string, v Value, ec EvalContext) []validator.Rule {
			s := strings.TrimSpace(v.Text)
			return []validator.Rule{
				validator.RequiredString(name, s),
				validator.EqualTo(name, s, Password.String(), ec.Password),
			}
		},
	},
	TermsAccepted: {
		message: "You must agree to the terms",
		rules: func(name string, v Value, _ EvalContext) []validator.Rule {
			return []validator.Rule{validator.Accepted(name, v.Checked)}
		},
	},
}

// Message returns the fixed English failure message of a field.
func Message(field Field) string {
	if !field.Valid() {
		return "Unknown field"
	}
	return fieldRules[field].message
}

// MessageKey returns the translation key of a field's failure message.
func MessageKey(field Field) string {
	if !field.Valid() {
		return "form.errors.unknown_field"
	}
	return "form.errors." + field.String()
}

// Evaluate validates value as the content of field. It has no side effects:
// the same inputs always give the same Result.
func Evaluate(field Field, value Value, ec EvalContext) Result {
	if !field.Valid() {
		return Result{
			Message: Message(field),
			Key:     MessageKey(field),
			Err:     validator.ErrUnknownField,
		}
	}
	if ec.Now.IsZero() {
		ec.Now = time.Now()
	}

	err := validator.Apply(fieldRules[field].rules(field.String(), value, ec)...)
	if err == nil {
		return Result{OK: true}
	}

	reason := validator.ErrValidationFailed
	if first, ok := validator.ExtractValidationErrors(err).First(); ok && first.Reason != nil {
		reason = first.Reason
	}
	return Result{
		Message: fieldRules[field].message,
		Key:     MessageKey(field),
		Err:     reason,
	}
}
