package register

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/swalay/labelctl/internal/keys"
	"github.com/swalay/labelctl/internal/labels"
	"github.com/swalay/labelctl/internal/mode"
	"github.com/swalay/labelctl/internal/ui/breadcrumb"
	"github.com/swalay/labelctl/internal/ui/styles"
)

// Heading is the page title.
const Heading = "Register label"

// SubmitLabel is the text on the submit button.
const SubmitLabel = "Register Label"

// Zone IDs for mouse hit testing.
const (
	zoneUsername = "register-username"
	zoneEmail    = "register-email"
	zoneContact  = "register-contact"
	zoneLabel    = "register-label"
	zoneSubmit   = "register-submit"
	zoneNormal   = "register-usertype-normal"
	zoneSuper    = "register-usertype-super"
)

// Crumbs is the breadcrumb trail for this page.
var Crumbs = []breadcrumb.Crumb{
	{Title: "Home", Path: "/"},
	{Title: "Labels", Path: labels.RouteLabels},
	{Title: "Register", Path: labels.RouteRegister},
}

const defaultSectionWidth = 44

// View renders the page.
func (m Model) View() string {
	width := defaultSectionWidth
	if m.width > 0 {
		width = max(min(m.width-4, 64), 20)
	}

	var b strings.Builder
	b.WriteString(breadcrumb.Render(Crumbs, m.width))
	b.WriteString("\n\n")
	b.WriteString(styles.HeadingStyle.Render(Heading))
	b.WriteString("\n\n")

	b.WriteString(zone.Mark(zoneUsername, m.textSection(fieldUsername, "Username", "required", m.username.View(), width)))
	b.WriteString("\n")
	b.WriteString(zone.Mark(zoneEmail, m.textSection(fieldEmail, "Email", "required", m.email.View(), width)))
	b.WriteString("\n")
	b.WriteString(zone.Mark(zoneContact, m.textSection(fieldContact, "Contact", "required, digits", m.contact.View(), width)))
	b.WriteString("\n")
	b.WriteString(m.userTypeSection(width))
	b.WriteString("\n")
	b.WriteString(zone.Mark(zoneLabel, m.labelSection(width)))
	b.WriteString("\n\n")

	button := styles.PrimaryButtonStyle
	if m.focus == fieldSubmit {
		button = styles.PrimaryButtonFocusedStyle
	}
	b.WriteString(zone.Mark(zoneSubmit, button.Render(SubmitLabel)))
	b.WriteString("\n\n")
	b.WriteString(m.help.View(keys.Form))

	return lipgloss.NewStyle().Padding(0, 2).Render(b.String())
}

func (m Model) textSection(f field, title, hint, content string, width int) string {
	return styles.RenderFormSection(styles.FormSection{
		Content: []string{" " + content},
		Title:   title,
		Hint:    hint,
		Width:   width,
		Focused: m.focus == f,
	})
}

func (m Model) userTypeSection(width int) string {
	focused := m.focus == fieldUserType
	options := make([]string, 0, len(userTypeOptions))
	for _, t := range userTypeOptions {
		selected := m.form.UserType == t
		options = append(options, zone.Mark(userTypeZone(t), styles.FormatRadio(userTypeTitle(t), selected, focused)))
	}
	return styles.RenderFormSection(styles.FormSection{
		Content: []string{" " + strings.Join(options, "   ")},
		Title:   "User Type",
		Width:   width,
		Focused: focused,
	})
}

func (m Model) labelSection(width int) string {
	content := m.label.View()
	if !m.form.IsLabel {
		content = m.form.Label
	}
	hint := "required"
	if !m.form.IsLabel {
		hint = "disabled"
	}
	return styles.RenderFormSection(styles.FormSection{
		Content:  []string{" " + content},
		Title:    "Record Label Name",
		Hint:     hint,
		Width:    width,
		Focused:  m.focus == fieldLabel,
		Disabled: !m.form.IsLabel,
	})
}

func userTypeTitle(t labels.UserType) string {
	if t == labels.UserTypeNormal {
		return "Normal"
	}
	return "Super"
}

func userTypeZone(t labels.UserType) string {
	if t == labels.UserTypeNormal {
		return zoneNormal
	}
	return zoneSuper
}

// handleClick focuses the clicked field, selects the clicked radio option or
// presses the button.
func (m Model) handleClick(msg tea.MouseMsg) (mode.Controller, tea.Cmd) {
	if z := zone.Get(zoneSubmit); z != nil && z.InBounds(msg) {
		m = m.setFocus(fieldSubmit)
		return m.submit()
	}
	for _, t := range userTypeOptions {
		if z := zone.Get(userTypeZone(t)); z != nil && z.InBounds(msg) {
			m = m.setFocus(fieldUserType)
			return m.selectUserType(t), nil
		}
	}

	fields := []struct {
		id string
		f  field
	}{
		{zoneUsername, fieldUsername},
		{zoneEmail, fieldEmail},
		{zoneContact, fieldContact},
		{zoneLabel, fieldLabel},
	}
	for _, fz := range fields {
		if z := zone.Get(fz.id); z != nil && z.InBounds(msg) {
			return m.setFocus(fz.f), nil
		}
	}
	return m, nil
}
