// Package mode defines the page controller interface, shared services, and
// the messages pages use to reach app-owned collaborators.
package mode

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/swalay/labelctl/internal/config"
	"github.com/swalay/labelctl/internal/labels"
	"github.com/swalay/labelctl/internal/mode/shared"
	"github.com/swalay/labelctl/internal/ui/toaster"
)

// Controller defines the interface all pages must implement.
type Controller interface {
	// Init returns initial commands for the page.
	Init() tea.Cmd

	// Update handles messages and returns updated model and commands.
	Update(msg tea.Msg) (Controller, tea.Cmd)

	// View renders the page.
	View() string

	// SetSize handles terminal resize events.
	SetSize(width, height int) Controller
}

// Services contains shared dependencies injected into pages.
type Services struct {
	Registrar labels.Registrar
	Config    *config.Config
	Clock     shared.Clock
}

// NavigateMsg asks the app to push route Path.
type NavigateMsg struct {
	Path string
}

// Navigate returns a command that pushes path.
func Navigate(path string) tea.Cmd {
	return func() tea.Msg {
		return NavigateMsg{Path: path}
	}
}

// ShowToastMsg asks the app to display a toast. Loading toasts stay up until
// a DismissToastMsg with the same ID arrives.
type ShowToastMsg struct {
	ID      toaster.ID
	Message string
	Style   toaster.Style
}

// DismissToastMsg asks the app to remove the toast with ID.
type DismissToastMsg struct {
	ID toaster.ID
}

// ShowToast returns a command that shows a toast with a fresh ID.
func ShowToast(message string, style toaster.Style) tea.Cmd {
	return ShowToastWithID(toaster.NewID(), message, style)
}

// ShowToastWithID returns a command that shows a toast the caller can
// later dismiss by id.
func ShowToastWithID(id toaster.ID, message string, style toaster.Style) tea.Cmd {
	return func() tea.Msg {
		return ShowToastMsg{ID: id, Message: message, Style: style}
	}
}

// DismissToast returns a command that removes toast id.
func DismissToast(id toaster.ID) tea.Cmd {
	return func() tea.Msg {
		return DismissToastMsg{ID: id}
	}
}

// RegisteredMsg announces a label the backend accepted. Pages that list
// labels record it.
type RegisteredMsg struct {
	Registration labels.Registration
}
