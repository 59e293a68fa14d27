package logger

import (
	"log/slog"
)

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Field records a form field name under the key "field".
func Field(name string) slog.Attr {
	return slog.String("field", name)
}

// Status records a validation status under the key "status".
func Status(status string) slog.Attr {
	return slog.String("status", status)
}

// Score records a password strength score under the key "score".
func Score(score int) slog.Attr {
	return slog.Int("score", score)
}

// Lang records a language code under the key "lang".
func Lang(lang string) slog.Attr {
	return slog.String("lang", lang)
}

// NotificationID records the notification identifier under the key "notification_id".
// If id is nil, it returns an empty Attr.
func NotificationID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("notification_id", id)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}
