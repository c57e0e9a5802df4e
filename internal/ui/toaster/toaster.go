// Package toaster provides the notification toast overlay.
//
// Toasts are keyed by ID so a caller can dismiss exactly the toast it
// raised. Loading toasts stay up until dismissed; the others are expected to
// be paired with ScheduleDismiss.
package toaster

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/muesli/reflow/wordwrap"

	"github.com/swalay/labelctl/internal/ui/overlay"
	"github.com/swalay/labelctl/internal/ui/styles"
)

// Style determines the visual appearance of the toast.
type Style int

const (
	// StyleSuccess shows ✅ with green border.
	StyleSuccess Style = iota
	// StyleError shows ❌ with red border.
	StyleError
	// StyleLoading shows ⏳ with blue border and is never auto-dismissed.
	StyleLoading
)

// ID identifies one toast.
type ID string

// NewID returns a fresh toast ID.
func NewID() ID {
	return ID(uuid.NewString())
}

type toast struct {
	id      ID
	message string
	style   Style
}

// Model holds the visible toasts, oldest first.
type Model struct {
	toasts []toast
	width  int
	height int
}

// New creates a new toaster model.
func New() Model {
	return Model{}
}

// Show displays a toast. Showing an ID that is already visible replaces it
// in place. Empty messages are ignored.
func (m Model) Show(id ID, message string, style Style) Model {
	if message == "" {
		return m
	}
	t := toast{id: id, message: message, style: style}

	toasts := make([]toast, 0, len(m.toasts)+1)
	replaced := false
	for _, existing := range m.toasts {
		if existing.id == id {
			toasts = append(toasts, t)
			replaced = true
			continue
		}
		toasts = append(toasts, existing)
	}
	if !replaced {
		toasts = append(toasts, t)
	}
	m.toasts = toasts
	return m
}

// Dismiss removes the toast with the given ID. Unknown IDs are a no-op.
func (m Model) Dismiss(id ID) Model {
	toasts := make([]toast, 0, len(m.toasts))
	for _, t := range m.toasts {
		if t.id != id {
			toasts = append(toasts, t)
		}
	}
	m.toasts = toasts
	return m
}

// Visible returns whether any toast is showing.
func (m Model) Visible() bool {
	return len(m.toasts) > 0
}

// Has reports whether the toast with the given ID is showing.
func (m Model) Has(id ID) bool {
	for _, t := range m.toasts {
		if t.id == id {
			return true
		}
	}
	return false
}

// Messages returns the visible toast messages, oldest first.
func (m Model) Messages() []string {
	out := make([]string, len(m.toasts))
	for i, t := range m.toasts {
		out[i] = t.message
	}
	return out
}

// SetSize updates the viewport dimensions for overlay positioning.
func (m Model) SetSize(width, height int) Model {
	m.width = width
	m.height = height
	return m
}

// View renders the toast stack.
func (m Model) View() string {
	if len(m.toasts) == 0 {
		return ""
	}
	boxes := make([]string, 0, len(m.toasts))
	for _, t := range m.toasts {
		boxes = append(boxes, renderToast(t, m.wrapWidth()))
	}
	return lipgloss.JoinVertical(lipgloss.Center, boxes...)
}

// maxTextWidth caps toast text so long server messages wrap.
const maxTextWidth = 48

// wrapWidth is the text width available inside a toast box.
func (m Model) wrapWidth() int {
	w := maxTextWidth
	// border and padding take two cells per side
	if m.width > 0 && m.width-4 < w {
		w = max(m.width-4, 10)
	}
	return w
}

func renderToast(t toast, width int) string {
	style := lipgloss.NewStyle().
		Padding(0, 1).
		Border(lipgloss.RoundedBorder())

	var content string
	switch t.style {
	case StyleError:
		style = style.BorderForeground(styles.ToastBorderErrorColor)
		content = "❌ " + t.message
	case StyleLoading:
		style = style.BorderForeground(styles.ToastBorderLoadingColor)
		content = "⏳ " + t.message
	default: // StyleSuccess
		style = style.BorderForeground(styles.ToastBorderSuccessColor)
		content = "✅ " + t.message
	}
	return style.Render(wordwrap.String(content, width))
}

// Overlay renders the toasts at the top center of bg.
func (m Model) Overlay(bg string) string {
	if len(m.toasts) == 0 {
		return bg
	}
	cfg := overlay.Config{
		Width:    m.width,
		Height:   max(m.height, strings.Count(bg, "\n")+1),
		Position: overlay.Top,
		PadY:     1,
	}
	return overlay.Place(cfg, m.View(), bg)
}

// DismissMsg asks the owner to dismiss the toast with ID.
type DismissMsg struct {
	ID ID
}

// ScheduleDismiss returns a command that dismisses toast id after d.
func ScheduleDismiss(id ID, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(_ time.Time) tea.Msg {
		return DismissMsg{ID: id}
	})
}
