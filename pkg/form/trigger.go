package form

import (
	"context"

	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// EventKind is a host interaction on a field.
type EventKind int

const (
	// EventBlur is loss of focus.
	EventBlur EventKind = iota + 1
	// EventChange is a committed change, such as toggling a checkbox.
	EventChange
	// EventInput is a keystroke-level edit.
	EventInput
)

func (k EventKind) String() string {
	switch k {
	case EventBlur:
		return "blur"
	case EventChange:
		return "change"
	case EventInput:
		return "input"
	default:
		return "unknown"
	}
}

// TriggerEvent is an interaction reported by the host.
type TriggerEvent struct {
	Field Field
	Kind  EventKind
}

// Trigger routes a host event according to the binding policy: text fields
// validate on blur, the terms checkbox on change, and the password updates
// its strength on every input. For validating events the result is the
// field's validity; for password input it is true. Events outside the policy
// are ignored and report false.
func (c *Controller) Trigger(ctx context.Context, ev TriggerEvent) bool {
	switch {
	case ev.Kind == EventBlur && ev.Field.IsText():
		return c.OnFieldTrigger(ctx, ev.Field)
	case ev.Kind == EventChange && ev.Field == TermsAccepted:
		return c.OnFieldTrigger(ctx, ev.Field)
	case ev.Kind == EventInput && ev.Field == Password:
		c.OnPasswordChanged(ctx, c.fields[Password].Value().Text)
		return true
	default:
		c.logger.DebugContext(ctx, "event ignored",
			logger.Field(ev.Field.String()),
			logger.Event(ev.Kind.String()),
		)
		return false
	}
}
