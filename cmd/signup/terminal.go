package main

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/dmitrymomot/formcheck/pkg/form"
	"github.com/dmitrymomot/formcheck/pkg/notifications"
)

const barWidth = 20

var (
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#e74c3c"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#2ecc71"))
	faintStyle   = lipgloss.NewStyle().Faint(true)
	toastStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#2ecc71")).
			Padding(0, 1)
)

type mark int

const (
	markNone mark = iota
	markSuccess
	markError
)

// termField is a form.FieldHandle over a terminal input. The huh form owns
// the editable buffer; hooks copy it in with Set.
type termField struct {
	mu      sync.Mutex
	value   form.Value
	mark    mark
	message string
}

func (f *termField) Set(v form.Value) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.value = v
}

func (f *termField) Value() form.Value {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.value
}

func (f *termField) MarkSuccess() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mark, f.message = markSuccess, ""
}

func (f *termField) MarkError(message string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mark, f.message = markError, message
}

func (f *termField) ClearMark() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.mark, f.message = markNone, ""
}

func (f *termField) ResetValue() {
	f.Set(form.Value{})
}

// Mark returns the current marking and its message.
func (f *termField) Mark() (mark, string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.mark, f.message
}

// strengthBar is a form.StrengthIndicator drawn as a row of blocks.
type strengthBar struct {
	mu      sync.Mutex
	percent int
	color   string
}

func (b *strengthBar) SetFill(percent int, color string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.percent, b.color = percent, color
}

func (b *strengthBar) Fill() (int, string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.percent, b.color
}

func (b *strengthBar) Render() string {
	percent, color := b.Fill()
	percent = max(0, min(percent, 100))
	filled := percent * barWidth / 100

	blocks := strings.Repeat("█", filled)
	if color != "" && color != "transparent" {
		blocks = lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render(blocks)
	}
	return blocks + faintStyle.Render(strings.Repeat("░", barWidth-filled))
}

// toastSurface prints notifications as a bordered box.
type toastSurface struct {
	mu sync.Mutex
	w  io.Writer
}

func (s *toastSurface) Show(n notifications.Notification) {
	s.mu.Lock()
	defer s.mu.Unlock()
	body := lipgloss.NewStyle().Bold(true).Render(n.Title) + "\n" + n.Message
	fmt.Fprintln(s.w, toastStyle.Render(body))
}

func (s *toastSurface) Hide() {
	s.mu.Lock()
	defer s.mu.Unlock()
	fmt.Fprintln(s.w, faintStyle.Render("(notification dismissed)"))
}
