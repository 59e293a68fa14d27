package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/charmbracelet/huh"

	"github.com/dmitrymomot/formcheck/pkg/form"
	"github.com/dmitrymomot/formcheck/pkg/i18n"
	"github.com/dmitrymomot/formcheck/pkg/logger"
	"github.com/dmitrymomot/formcheck/pkg/notifications"
)

var errSubmissionRejected = errors.New("submission rejected")

var defaultLabels = map[form.Field]string{
	form.Name:            "Full name",
	form.Email:           "Email",
	form.Phone:           "Phone",
	form.DateOfBirth:     "Date of birth",
	form.Website:         "Website",
	form.Password:        "Password",
	form.ConfirmPassword: "Confirm password",
	form.TermsAccepted:   "I agree to the terms",
}

// app wires the controller to terminal presentation.
type app struct {
	ctrl   *form.Controller
	fields map[form.Field]*termField
	bar    *strengthBar
	toast  *notifications.Toast
	tr     *i18n.Translator
	lang   string
	out    io.Writer
}

func newApp(ctx context.Context, cfg Config, langs []string, out io.Writer, log *slog.Logger) (*app, error) {
	tr, err := i18n.NewBuiltinTranslator(ctx, i18n.WithLogger(log))
	if err != nil {
		return nil, fmt.Errorf("load translations: %w", err)
	}
	lang := tr.Match(langs...)

	toastOpts := []notifications.ToastOption{
		notifications.WithDelay(cfg.ToastDelay),
		notifications.WithToastLogger(log),
	}
	if cfg.ToastReschedule {
		toastOpts = append(toastOpts, notifications.WithRescheduleOnShow())
	}
	toast, err := notifications.NewToast(&toastSurface{w: out}, toastOpts...)
	if err != nil {
		return nil, err
	}

	a := &app{
		fields: make(map[form.Field]*termField),
		bar:    &strengthBar{},
		toast:  toast,
		tr:     tr,
		lang:   lang,
		out:    out,
	}

	handles := make(map[form.Field]form.FieldHandle)
	for _, f := range form.Fields() {
		tf := &termField{}
		a.fields[f] = tf
		handles[f] = tf
	}

	notifier := notifications.NewMultiDeliverer(
		[]notifications.Deliverer{toast, notifications.NewLogDeliverer(log)},
		notifications.WithMultiDelivererLogger(log),
	)

	a.ctrl, err = form.New(form.Bindings{
		Fields:   handles,
		Strength: a.bar,
		Notifier: notifier,
	},
		form.WithLogger(log),
		form.WithTranslator(tr, lang),
	)
	if err != nil {
		return nil, err
	}

	log.DebugContext(ctx, "signup form ready", logger.Lang(lang))
	return a, nil
}

func (a *app) label(f form.Field) string {
	return a.tr.Td(a.lang, "form.labels."+f.String(), defaultLabels[f])
}

// submit fills the form with values, replays the interactions a user would
// produce, and attempts the submission.
func (a *app) submit(ctx context.Context, values map[form.Field]form.Value) bool {
	for _, f := range form.Fields() {
		a.fields[f].Set(values[f])
	}

	a.ctrl.Trigger(ctx, form.TriggerEvent{Field: form.Password, Kind: form.EventInput})
	for _, f := range form.Fields() {
		kind := form.EventBlur
		if !f.IsText() {
			kind = form.EventChange
		}
		a.ctrl.Trigger(ctx, form.TriggerEvent{Field: f, Kind: kind})
	}

	if a.ctrl.OnSubmitAttempt(ctx) {
		return true
	}
	a.report()
	return false
}

// report prints every field's mark.
func (a *app) report() {
	for _, f := range form.Fields() {
		m, msg := a.fields[f].Mark()
		switch m {
		case markSuccess:
			fmt.Fprintf(a.out, "%s %s\n", successStyle.Render("✓"), a.label(f))
		case markError:
			fmt.Fprintf(a.out, "%s %s: %s\n", errorStyle.Render("✗"), a.label(f), msg)
		}
	}
}

// waitForToast blocks until the toast hides itself or ctx ends.
func (a *app) waitForToast(ctx context.Context) {
	ticker := time.NewTicker(25 * time.Millisecond)
	defer ticker.Stop()
	for a.toast.Visible() {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}

func (a *app) close() {
	a.toast.Stop()
}

func (a *app) validateText(ctx context.Context, f form.Field) func(string) error {
	return func(s string) error {
		a.fields[f].Set(form.TextValue(s))
		if a.ctrl.Trigger(ctx, form.TriggerEvent{Field: f, Kind: form.EventBlur}) {
			return nil
		}
		return errors.New(a.ctrl.State(f).Message)
	}
}

// runInteractive shows the form; validate hooks act as blur and change
// triggers, the password description follows every keystroke.
func (a *app) runInteractive(ctx context.Context) (bool, error) {
	var (
		values   = make(map[form.Field]*string)
		password string
		accepted bool
	)
	for _, f := range form.Fields() {
		if f.IsText() && f != form.Password {
			values[f] = new(string)
		}
	}
	values[form.Password] = &password

	input := func(f form.Field, placeholder string) *huh.Input {
		return huh.NewInput().
			Title(a.label(f)).
			Placeholder(placeholder).
			Value(values[f]).
			Validate(a.validateText(ctx, f))
	}

	passwordInput := input(form.Password, "").
		EchoMode(huh.EchoModePassword).
		DescriptionFunc(func() string {
			a.fields[form.Password].Set(form.TextValue(password))
			score := a.ctrl.OnPasswordChanged(ctx, password)
			return a.bar.Render() + " " + a.tr.Tc(ctx, form.TierFor(score).Key())
		}, &password)

	terms := huh.NewConfirm().
		Title(a.label(form.TermsAccepted)).
		Value(&accepted).
		Validate(func(b bool) error {
			a.fields[form.TermsAccepted].Set(form.CheckedValue(b))
			if a.ctrl.Trigger(ctx, form.TriggerEvent{Field: form.TermsAccepted, Kind: form.EventChange}) {
				return nil
			}
			return errors.New(a.ctrl.State(form.TermsAccepted).Message)
		})

	f := huh.NewForm(
		huh.NewGroup(
			input(form.Name, "Ann Lee"),
			input(form.Email, "ann@example.com"),
			input(form.Phone, "1234567890"),
			input(form.DateOfBirth, "YYYY-MM-DD"),
			input(form.Website, "https://example.com"),
		),
		huh.NewGroup(
			passwordInput,
			input(form.ConfirmPassword, "").EchoMode(huh.EchoModePassword),
			terms,
		),
	)
	if err := f.RunWithContext(ctx); err != nil {
		return false, err
	}

	submitted := make(map[form.Field]form.Value, len(values)+1)
	for field, v := range values {
		submitted[field] = form.TextValue(*v)
	}
	submitted[form.TermsAccepted] = form.CheckedValue(accepted)
	return a.submit(ctx, submitted), nil
}
