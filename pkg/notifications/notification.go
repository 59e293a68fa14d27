package notifications

import (
	"time"

	"github.com/google/uuid"
)

// Type represents the notification type/severity.
type Type string

const (
	TypeInfo    Type = "info"
	TypeSuccess Type = "success"
	TypeWarning Type = "warning"
	TypeError   Type = "error"
)

// Notification is a short user-facing message.
type Notification struct {
	ID        string         `json:"id"`
	Type      Type           `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}

// New builds a notification with a fresh ID and the current time.
func New(typ Type, title, message string) Notification {
	return Notification{
		ID:        uuid.New().String(),
		Type:      typ,
		Title:     title,
		Message:   message,
		CreatedAt: time.Now(),
	}
}

// WithData returns a copy of n carrying the given payload entry.
func (n Notification) WithData(key string, value any) Notification {
	data := make(map[string]any, len(n.Data)+1)
	for k, v := range n.Data {
		data[k] = v
	}
	data[key] = value
	n.Data = data
	return n
}
