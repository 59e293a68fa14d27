package form

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/formcheck/pkg/i18n"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/notifications"
)

// Default texts of the notification sent after an accepted submission.
const (
	DefaultSuccessTitle   = "Success"
	DefaultSuccessMessage = "Registration Successful!"
)

// SubmissionIDKey is the context key under which OnSubmitAttempt stores the
// attempt's identifier for the notifier and for loggers built with
// logger.WithContextValue.
type SubmissionIDKey struct{}

// Controller decides when fields are evaluated and applies the results to
// the bound presentation. It is safe for concurrent use, though hosts
// normally drive it from a single event loop.
type Controller struct {
	fields   map[Field]FieldHandle
	strength StrengthIndicator
	notifier notifications.Deliverer

	logger         *slog.Logger
	now            func() time.Time
	translator     Translator
	lang           string
	successTitle   string
	successMessage string

	mu     sync.RWMutex
	states [fieldCount]State
}

// New binds a controller to the host capabilities. Every field must have a
// handle and the strength indicator must be set.
func New(b Bindings, opts ...Option) (*Controller, error) {
	for _, f := range Fields() {
		if b.Fields[f] == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingBinding, f)
		}
	}
	if b.Strength == nil {
		return nil, ErrMissingIndicator
	}

	c := &Controller{
		fields:   make(map[Field]FieldHandle, fieldCount),
		strength: b.Strength,
		notifier: b.Notifier,
		logger:   logger.Discard(),
		now:      time.Now,
	}
	for _, f := range Fields() {
		c.fields[f] = b.Fields[f]
	}
	if c.notifier == nil {
		c.notifier = notifications.NoOpDeliverer{}
	}

	for _, opt := range opts {
		opt(c)
	}
	c.logger = c.logger.With(logger.Component("form"))

	return c, nil
}

// OnFieldTrigger evaluates exactly one field, records its state, marks its
// presentation and returns whether it passed.
func (c *Controller) OnFieldTrigger(ctx context.Context, field Field) bool {
	return c.trigger(ctx, field, c.evalContext())
}

// OnPasswordChanged updates the strength indicator for newValue and, when
// the confirmation input is not empty, re-checks it against newValue.
// It returns the strength score.
func (c *Controller) OnPasswordChanged(ctx context.Context, newValue string) int {
	score := ComputeStrength(newValue)
	tier := TierFor(score)
	c.strength.SetFill(tier.Percent(), tier.Color())

	c.logger.DebugContext(ctx, "password strength updated",
		logger.Score(score),
		slog.String("tier", tier.String()),
	)

	if c.fields[ConfirmPassword].Value().Text != "" {
		ec := c.evalContext()
		ec.Password = newValue
		c.trigger(ctx, ConfirmPassword, ec)
	}

	return score
}

// OnSubmitAttempt evaluates every field in display order, without stopping
// at the first failure. When all pass it sends the success notification and
// resets the form; otherwise nothing but the field marks changes.
//
// The result tells hosts whether the submission was accepted; hosts never
// navigate away on their own.
func (c *Controller) OnSubmitAttempt(ctx context.Context) bool {
	submissionID := uuid.NewString()
	ctx = context.WithValue(ctx, SubmissionIDKey{}, submissionID)
	ec := c.evalContext()

	valid := true
	for _, f := range Fields() {
		if !c.trigger(ctx, f, ec) {
			valid = false
		}
	}

	if !valid {
		c.logger.InfoContext(ctx, "submission rejected",
			slog.Any("invalid_fields", fieldNamesOf(c.Snapshot().Invalid())),
		)
		return false
	}

	notif := notifications.New(notifications.TypeSuccess, c.successTitleText(ctx), c.successMessageText(ctx))
	notif.CreatedAt = c.now()
	notif = notif.WithData("submission_id", submissionID)

	if err := c.notifier.Deliver(ctx, notif); err != nil {
		c.logger.ErrorContext(ctx, "failed to deliver submission notification",
			logger.NotificationID(notif.ID),
			logger.Error(err),
		)
	}

	c.Reset()

	c.logger.InfoContext(ctx, "submission accepted",
		logger.NotificationID(notif.ID),
	)
	return true
}

// Reset empties every input, clears every mark, returns every state to
// untouched and empties the strength indicator.
func (c *Controller) Reset() {
	for _, f := range Fields() {
		h := c.fields[f]
		h.ResetValue()
		h.ClearMark()
	}

	c.mu.Lock()
	c.states = [fieldCount]State{}
	c.mu.Unlock()

	c.strength.SetFill(TierNone.Percent(), TierNone.Color())
}

// State returns the latest state of field. Unknown fields are untouched.
func (c *Controller) State(field Field) State {
	if !field.Valid() {
		return State{}
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.states[field]
}

// Snapshot copies the current value and state of every field.
func (c *Controller) Snapshot() FormState {
	c.mu.RLock()
	states := c.states
	c.mu.RUnlock()

	snap := FormState{Fields: make([]FieldState, 0, fieldCount)}
	for _, f := range Fields() {
		snap.Fields = append(snap.Fields, FieldState{
			Field: f,
			Value: c.fields[f].Value(),
			State: states[f],
		})
	}
	return snap
}

// OverallValid reports whether every field's latest evaluation passed.
// It is derived on each call and never cached.
func (c *Controller) OverallValid() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, s := range c.states {
		if s.Status != StatusValid {
			return false
		}
	}
	return true
}

func (c *Controller) trigger(ctx context.Context, field Field, ec EvalContext) bool {
	h, ok := c.fields[field]
	if !ok {
		c.logger.WarnContext(ctx, "trigger for unknown field", logger.Field(field.String()))
		return false
	}

	res := Evaluate(field, h.Value(), ec)
	message := ""
	if !res.OK {
		message = c.translate(ctx, res.Key, res.Message)
	}
	st := stateFor(res, message)

	c.mu.Lock()
	c.states[field] = st
	c.mu.Unlock()

	if res.OK {
		h.MarkSuccess()
	} else {
		h.MarkError(message)
	}

	c.logger.DebugContext(ctx, "field evaluated",
		logger.Field(field.String()),
		logger.Status(st.Status.String()),
		logger.Error(res.Err),
	)
	return res.OK
}

func (c *Controller) evalContext() EvalContext {
	return EvalContext{
		Password: c.fields[Password].Value().Text,
		Now:      c.now(),
	}
}

// translate uses the language stored in ctx by i18n.SetLocale, or the one
// given to WithTranslator.
func (c *Controller) translate(ctx context.Context, key, fallback string) string {
	if c.translator == nil {
		return fallback
	}
	lang := c.lang
	if l, ok := i18n.LocaleFromContext(ctx); ok {
		lang = l
	}
	return c.translator.Td(lang, key, fallback)
}

func (c *Controller) successTitleText(ctx context.Context) string {
	if c.successTitle != "" {
		return c.successTitle
	}
	return c.translate(ctx, "form.submit.title", DefaultSuccessTitle)
}

func (c *Controller) successMessageText(ctx context.Context) string {
	if c.successMessage != "" {
		return c.successMessage
	}
	return c.translate(ctx, "form.submit.message", DefaultSuccessMessage)
}

func fieldNamesOf(fields []Field) []string {
	names := make([]string, len(fields))
	for i, f := range fields {
		names[i] = f.String()
	}
	return names
}
