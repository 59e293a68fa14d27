package form

import (
	"log/slog"
	"time"
)

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the controller logger. The default discards output.
func WithLogger(l *slog.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithClock replaces time.Now as the reference for the age rule and
// notification timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) {
		if now != nil {
			c.now = now
		}
	}
}

// WithTranslator localises field messages and the success notification into
// lang, unless the call's context carries a language set by i18n.SetLocale.
// Keys missing from the catalog fall back to the built-in English text.
func WithTranslator(t Translator, lang string) Option {
	return func(c *Controller) {
		c.translator = t
		c.lang = lang
	}
}

// WithSuccessNotification overrides the title and message of the notification
// sent after an accepted submission.
func WithSuccessNotification(title, message string) Option {
	return func(c *Controller) {
		c.successTitle = title
		c.successMessage = message
	}
}
