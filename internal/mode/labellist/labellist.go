// Package labellist implements the /labels landing page: the labels
// registered during this session and the entry point to the registration
// form.
package labellist

import (
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/swalay/labelctl/internal/keys"
	"github.com/swalay/labelctl/internal/labels"
	"github.com/swalay/labelctl/internal/mode"
	"github.com/swalay/labelctl/internal/mode/shared"
	"github.com/swalay/labelctl/internal/ui/breadcrumb"
	"github.com/swalay/labelctl/internal/ui/styles"
)

// Heading is the page title.
const Heading = "Labels"

// EmptyHint is shown before anything has been registered.
const EmptyHint = "No labels registered this session. Press n to register one."

// Crumbs is the breadcrumb trail for this page.
var Crumbs = []breadcrumb.Crumb{
	{Title: "Home", Path: "/"},
	{Title: "Labels", Path: labels.RouteLabels},
}

// Entry is one registered label.
type Entry struct {
	Registration labels.Registration
	At           time.Time
}

// Model is the labels page. Entries live in memory only.
type Model struct {
	clock   shared.Clock
	entries []Entry
	cursor  int
	help    help.Model
	width   int
	height  int
}

// New creates an empty labels page.
func New(services mode.Services) Model {
	clock := services.Clock
	if clock == nil {
		clock = shared.RealClock{}
	}
	return Model{clock: clock, help: help.New()}
}

// Init implements mode.Controller.
func (m Model) Init() tea.Cmd {
	return nil
}

// Entries returns the registered labels, newest first.
func (m Model) Entries() []Entry {
	return m.entries
}

// Cursor returns the selected row.
func (m Model) Cursor() int {
	return m.cursor
}

// Record adds a registration to the top of the list and selects it.
func (m Model) Record(reg labels.Registration) Model {
	entry := Entry{Registration: reg, At: m.clock.Now()}
	m.entries = append([]Entry{entry}, m.entries...)
	m.cursor = 0
	return m
}

// SetSize handles terminal resize events.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	m.help.Width = width
	return m
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case mode.RegisteredMsg:
		return m.Record(msg.Registration), nil

	case tea.KeyMsg:
		km := keys.Labels
		switch {
		case key.Matches(msg, km.NewLabel):
			return m, mode.Navigate(labels.RouteRegister)
		case key.Matches(msg, km.Quit):
			return m, tea.Quit
		case key.Matches(msg, km.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, km.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		}
	}
	return m, nil
}

// View renders the page.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(breadcrumb.Render(Crumbs, m.width))
	b.WriteString("\n\n")
	b.WriteString(styles.HeadingStyle.Render(Heading))
	b.WriteString("\n\n")

	if len(m.entries) == 0 {
		b.WriteString(styles.HintStyle.Render(EmptyHint))
	} else {
		b.WriteString(m.renderTable())
	}

	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys.Labels))
	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func (m Model) renderTable() string {
	rows := make([][]string, 0, len(m.entries))
	for _, e := range m.entries {
		r := e.Registration
		rows = append(rows, []string{
			r.Username,
			r.Email,
			r.Contact,
			string(r.UserType),
			r.Label,
			shared.FormatRelativeTimeWithClock(e.At, m.clock),
		})
	}

	selected := lipgloss.NewStyle().Bold(true).Foreground(styles.BorderHighlightFocusColor)
	header := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor)
	cell := lipgloss.NewStyle().Foreground(styles.TextPrimaryColor)

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(styles.BorderDefaultColor)).
		Headers("Username", "Email", "Contact", "Type", "Record Label", "Registered").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return header.Padding(0, 1)
			case row == m.cursor:
				return selected.Padding(0, 1)
			default:
				return cell.Padding(0, 1)
			}
		}).
		Render()
}
