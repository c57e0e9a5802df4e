// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// FormKeyMap defines the keybindings for the label registration form.
type FormKeyMap struct {
	// Focus
	Next key.Binding
	Prev key.Binding

	// Radio group
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding

	// Actions
	Enter  key.Binding
	Submit key.Binding
	Back   key.Binding

	// General
	Quit key.Binding
}

// DefaultFormKeyMap returns the default form keybindings.
func DefaultFormKeyMap() FormKeyMap {
	return FormKeyMap{
		Next: key.NewBinding(
			key.WithKeys("tab", "down", "ctrl+n"),
			key.WithHelp("tab/↓", "next field"),
		),
		Prev: key.NewBinding(
			key.WithKeys("shift+tab", "up", "ctrl+p"),
			key.WithHelp("shift+tab/↑", "prev field"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←", "previous option"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→", "next option"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "select"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "confirm"),
		),
		Submit: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "register"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back to labels"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the form footer.
func (k FormKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Submit, k.Back, k.Quit}
}

// FullHelp returns keybindings grouped for the expanded help view.
func (k FormKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Next, k.Prev},
		{k.Left, k.Right, k.Toggle},
		{k.Enter, k.Submit, k.Back, k.Quit},
	}
}

// LabelsKeyMap defines the keybindings for the labels list page.
type LabelsKeyMap struct {
	Up       key.Binding
	Down     key.Binding
	NewLabel key.Binding
	Quit     key.Binding
}

// DefaultLabelsKeyMap returns the default labels page keybindings.
func DefaultLabelsKeyMap() LabelsKeyMap {
	return LabelsKeyMap{
		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/↑", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/↓", "move down"),
		),
		NewLabel: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "register label"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp returns keybindings for the labels page footer.
func (k LabelsKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NewLabel, k.Up, k.Down, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k LabelsKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// Form is the shared form keymap.
var Form = DefaultFormKeyMap()

// Labels is the shared labels page keymap.
var Labels = DefaultLabelsKeyMap()
