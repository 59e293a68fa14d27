package notifications

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// Deliverer shows a notification to the user through one channel.
type Deliverer interface {
	Deliver(ctx context.Context, notif Notification) error
}

// MultiDeliverer combines multiple delivery channels.
type MultiDeliverer struct {
	deliverers []Deliverer
	logger     *slog.Logger
}

// MultiDelivererOption configures a MultiDeliverer.
type MultiDelivererOption func(*MultiDeliverer)

// WithMultiDelivererLogger sets the logger for the MultiDeliverer.
func WithMultiDelivererLogger(l *slog.Logger) MultiDelivererOption {
	return func(m *MultiDeliverer) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewMultiDeliverer creates a new multi-channel deliverer. Nil deliverers are skipped.
func NewMultiDeliverer(deliverers []Deliverer, opts ...MultiDelivererOption) *MultiDeliverer {
	clean := make([]Deliverer, 0, len(deliverers))
	for _, d := range deliverers {
		if d != nil {
			clean = append(clean, d)
		}
	}

	m := &MultiDeliverer{
		deliverers: clean,
		logger:     logger.Discard(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Deliver sends the notification through every channel. A failing channel is
// logged and skipped; delivery is best effort.
func (m *MultiDeliverer) Deliver(ctx context.Context, notif Notification) error {
	for i, d := range m.deliverers {
		if err := d.Deliver(ctx, notif); err != nil {
			m.logger.LogAttrs(ctx, slog.LevelError, "failed to deliver notification",
				logger.NotificationID(notif.ID),
				slog.Int("deliverer_index", i),
				logger.Error(err),
			)
		}
	}
	return nil
}

// LogDeliverer records every notification it receives on a logger.
type LogDeliverer struct {
	logger *slog.Logger
}

// NewLogDeliverer creates a deliverer writing to l. A nil logger discards.
func NewLogDeliverer(l *slog.Logger) *LogDeliverer {
	if l == nil {
		l = logger.Discard()
	}
	return &LogDeliverer{logger: l}
}

// Deliver logs notif at info level and never fails.
func (d *LogDeliverer) Deliver(ctx context.Context, notif Notification) error {
	d.logger.LogAttrs(ctx, slog.LevelInfo, "notification delivered",
		logger.NotificationID(notif.ID),
		slog.String("type", string(notif.Type)),
		slog.String("title", notif.Title),
		slog.String("message", notif.Message),
	)
	return nil
}

// NoOpDeliverer is a deliverer that does nothing.
type NoOpDeliverer struct{}

// Deliver does nothing and returns nil.
func (NoOpDeliverer) Deliver(context.Context, Notification) error {
	return nil
}
