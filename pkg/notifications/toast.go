package notifications

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/dmitrymomot/formcheck/pkg/logger"
)

// DefaultToastDelay is how long a toast stays visible.
const DefaultToastDelay = 4 * time.Second

// ErrNilSurface is returned by NewToast when no surface is given.
var ErrNilSurface = errors.New("notifications: toast surface is nil")

// Surface is the host widget a toast is drawn on.
type Surface interface {
	Show(notif Notification)
	Hide()
}

// Timer is the handle returned by a Scheduler. *time.Timer satisfies it.
type Timer interface {
	Stop() bool
}

// Scheduler runs f once after d. time.AfterFunc is the default.
type Scheduler func(d time.Duration, f func()) Timer

// ToastOption configures a Toast.
type ToastOption func(*Toast)

// WithDelay sets how long a toast stays visible. Non-positive values are ignored.
func WithDelay(d time.Duration) ToastOption {
	return func(t *Toast) {
		if d > 0 {
			t.delay = d
		}
	}
}

// WithRescheduleOnShow keeps a single hide timer: showing a toast cancels the
// pending hide and arms a new one, so a toast is always visible for the full delay.
func WithRescheduleOnShow() ToastOption {
	return func(t *Toast) {
		t.reschedule = true
	}
}

// WithScheduler replaces time.AfterFunc.
func WithScheduler(s Scheduler) ToastOption {
	return func(t *Toast) {
		if s != nil {
			t.schedule = s
		}
	}
}

// WithToastLogger sets the logger for the Toast.
func WithToastLogger(l *slog.Logger) ToastOption {
	return func(t *Toast) {
		if l != nil {
			t.logger = l
		}
	}
}

// Toast is a Deliverer that shows a notification on a Surface and hides it
// after a fixed delay.
//
// By default every Deliver arms its own one-shot hide timer and never cancels
// earlier ones, so a timer left over from a previous toast can hide a newer
// one early. WithRescheduleOnShow switches to a single cancel-and-rearm timer.
type Toast struct {
	surface    Surface
	delay      time.Duration
	reschedule bool
	schedule   Scheduler
	logger     *slog.Logger

	mu      sync.Mutex
	visible bool
	nextID  uint64
	pending map[uint64]Timer
}

// NewToast creates a toast deliverer drawing on surface.
func NewToast(surface Surface, opts ...ToastOption) (*Toast, error) {
	if surface == nil {
		return nil, ErrNilSurface
	}

	t := &Toast{
		surface: surface,
		delay:   DefaultToastDelay,
		schedule: func(d time.Duration, f func()) Timer {
			return time.AfterFunc(d, f)
		},
		logger:  logger.Discard(),
		pending: make(map[uint64]Timer),
	}

	for _, opt := range opts {
		opt(t)
	}

	return t, nil
}

// Deliver shows notif and schedules the hide.
func (t *Toast) Deliver(ctx context.Context, notif Notification) error {
	t.mu.Lock()
	if t.reschedule {
		t.stopPendingLocked()
	}
	t.visible = true
	t.mu.Unlock()

	t.surface.Show(notif)

	// The slot is reserved before scheduling so a timer that fires at once
	// still finds it, and the scheduler runs without the lock held.
	t.mu.Lock()
	t.nextID++
	id := t.nextID
	t.pending[id] = nil
	t.mu.Unlock()

	timer := t.schedule(t.delay, func() { t.hide(id) })

	t.mu.Lock()
	if _, ok := t.pending[id]; ok {
		t.pending[id] = timer
	} else if timer != nil {
		// fired already or cancelled while scheduling
		timer.Stop()
	}
	t.mu.Unlock()

	t.logger.LogAttrs(ctx, slog.LevelDebug, "toast shown",
		logger.NotificationID(notif.ID),
		logger.Duration(t.delay),
	)
	return nil
}

// Visible reports whether a toast is currently shown.
func (t *Toast) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Pending reports how many hide timers have not fired yet.
func (t *Toast) Pending() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.pending)
}

// Stop cancels every pending hide. The toast keeps its current visibility.
func (t *Toast) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopPendingLocked()
}

func (t *Toast) stopPendingLocked() {
	for id, timer := range t.pending {
		if timer != nil {
			timer.Stop()
		}
		delete(t.pending, id)
	}
}

func (t *Toast) hide(id uint64) {
	t.mu.Lock()
	if _, ok := t.pending[id]; !ok {
		// cancelled after the timer already fired
		t.mu.Unlock()
		return
	}
	delete(t.pending, id)
	t.visible = false
	t.mu.Unlock()

	t.surface.Hide()
}
