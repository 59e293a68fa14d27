package form

import (
	"github.com/dmitrymomot/formcheck/pkg/notifications"
)

// FieldHandle is the host's presentation of a single input.
type FieldHandle interface {
	// Value returns the current raw content.
	Value() Value
	MarkSuccess()
	MarkError(message string)
	// ClearMark removes success or error marking.
	ClearMark()
	// ResetValue empties the input (unchecks a checkbox).
	ResetValue()
}

// StrengthIndicator is the password strength bar.
type StrengthIndicator interface {
	SetFill(percent int, color string)
}

// Translator localises failure messages. *i18n.Translator satisfies it.
type Translator interface {
	Td(lang, key, defaultValue string, args ...string) string
}

// Bindings are the host capabilities a Controller drives. Every field needs a
// handle; Notifier may be nil.
type Bindings struct {
	Fields   map[Field]FieldHandle
	Strength StrengthIndicator
	Notifier notifications.Deliverer
}
