// Package register implements the label registration page.
package register

import (
	"context"
	"unicode"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/swalay/labelctl/internal/keys"
	"github.com/swalay/labelctl/internal/labels"
	"github.com/swalay/labelctl/internal/log"
	"github.com/swalay/labelctl/internal/mode"
	"github.com/swalay/labelctl/internal/ui/toaster"
)

// field identifies a focusable row of the form, in display order.
type field int

const (
	fieldUsername field = iota
	fieldEmail
	fieldContact
	fieldUserType
	fieldLabel
	fieldSubmit
	fieldCount
)

// userTypeOptions are the radio options, left to right.
var userTypeOptions = []labels.UserType{labels.UserTypeNormal, labels.UserTypeSuper}

// SubmittedMsg carries the result of one AddLabel call back to the page that
// issued it.
type SubmittedMsg struct {
	LoadingID    toaster.ID
	Registration labels.Registration
	Outcome      labels.Outcome
}

// Model is the registration page.
type Model struct {
	services mode.Services
	form     labels.Form

	username textinput.Model
	email    textinput.Model
	contact  textinput.Model
	label    textinput.Model

	focus  field
	help   help.Model
	width  int
	height int
}

// New creates the page with a fresh form and focus on Username.
func New(services mode.Services) Model {
	m := Model{
		services: services,
		form:     labels.NewForm(),
		username: newInput("alice"),
		email:    newInput("alice@example.com"),
		contact:  newInput("9999999999"),
		label:    newInput("Acme Records"),
		help:     help.New(),
	}
	m.contact.CharLimit = 15
	m.syncInputs()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = ""
	ti.CharLimit = 100
	ti.Width = 36
	return ti
}

// Init returns the cursor blink command.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Form returns the current form state.
func (m Model) Form() labels.Form {
	return m.form
}

// SetSize handles terminal resize events.
func (m Model) SetSize(width, height int) mode.Controller {
	m.width = width
	m.height = height
	m.help.Width = width
	inputWidth := max(min(width-8, 60), 10)
	for _, ti := range m.inputs() {
		ti.Width = inputWidth
	}
	return m
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (mode.Controller, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease {
			return m.handleClick(msg)
		}
		return m, nil

	case SubmittedMsg:
		return m, m.handleSubmitted(msg)
	}

	if ti := m.focusedInput(); ti != nil {
		var cmd tea.Cmd
		*ti, cmd = ti.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (mode.Controller, tea.Cmd) {
	km := keys.Form

	switch {
	case key.Matches(msg, km.Back):
		return m, mode.Navigate(labels.RouteLabels)

	case key.Matches(msg, km.Submit):
		return m.submit()

	case key.Matches(msg, km.Enter):
		if m.focus == fieldSubmit || m.focus == m.lastField() {
			return m.submit()
		}
		return m.moveFocus(1), textinput.Blink

	case key.Matches(msg, km.Next):
		return m.moveFocus(1), textinput.Blink

	case key.Matches(msg, km.Prev):
		return m.moveFocus(-1), textinput.Blink
	}

	if m.focus == fieldSubmit && key.Matches(msg, km.Toggle) {
		return m.submit()
	}

	if m.focus == fieldUserType {
		switch {
		case key.Matches(msg, km.Left):
			return m.selectUserType(labels.UserTypeNormal), nil
		case key.Matches(msg, km.Right):
			return m.selectUserType(labels.UserTypeSuper), nil
		case key.Matches(msg, km.Toggle):
			if m.form.UserType == labels.UserTypeNormal {
				return m.selectUserType(labels.UserTypeSuper), nil
			}
			return m.selectUserType(labels.UserTypeNormal), nil
		}
		return m, nil
	}

	ti := m.focusedInput()
	if ti == nil {
		return m, nil
	}
	if m.focus == fieldContact {
		var ok bool
		if msg, ok = digitsOnly(msg); !ok {
			return m, nil
		}
	}

	var cmd tea.Cmd
	*ti, cmd = ti.Update(msg)
	m = m.applyInput(m.focus)
	return m, cmd
}

// digitsOnly strips non-digit runes from typed or pasted text. It reports
// false when nothing is left to insert.
func digitsOnly(msg tea.KeyMsg) (tea.KeyMsg, bool) {
	if msg.Type != tea.KeyRunes {
		return msg, true
	}
	runes := make([]rune, 0, len(msg.Runes))
	for _, r := range msg.Runes {
		if unicode.IsDigit(r) {
			runes = append(runes, r)
		}
	}
	if len(runes) == 0 {
		return msg, false
	}
	msg.Runes = runes
	return msg, true
}

// applyInput turns the edited input's value into a form change.
func (m Model) applyInput(f field) Model {
	var name, value string
	switch f {
	case fieldUsername:
		name, value = labels.FieldUsername, m.username.Value()
	case fieldEmail:
		name, value = labels.FieldEmail, m.email.Value()
	case fieldContact:
		name, value = labels.FieldContact, m.contact.Value()
	case fieldLabel:
		name, value = labels.FieldLabel, m.label.Value()
	default:
		return m
	}
	m.form = m.form.Apply(labels.TextChange(name, value))
	return m
}

func (m Model) selectUserType(t labels.UserType) Model {
	if m.form.UserType == t {
		return m
	}
	m.form = m.form.Apply(labels.SelectUserType(t))
	log.Debug(log.CatUI, "User type selected", "usertype", t, "isLable", m.form.IsLabel)
	m.syncInputs()
	return m
}

// syncInputs copies form state back into the inputs after changes that did
// not come from typing.
func (m *Model) syncInputs() {
	if m.label.Value() != m.form.Label {
		m.label.SetValue(m.form.Label)
	}
	if !m.form.IsLabel && m.focus == fieldLabel {
		m.focus = fieldSubmit
	}
	m.refocus()
}

func (m *Model) refocus() {
	for f, ti := range m.inputMap() {
		if f == m.focus {
			ti.Focus()
		} else {
			ti.Blur()
		}
	}
}

func (m Model) enabled(f field) bool {
	return f != fieldLabel || m.form.IsLabel
}

// lastField is the last enabled field before the submit button.
func (m Model) lastField() field {
	for f := fieldSubmit - 1; f >= 0; f-- {
		if m.enabled(f) {
			return f
		}
	}
	return fieldUsername
}

func (m Model) moveFocus(delta int) Model {
	f := m.focus
	for range fieldCount {
		f = (f + field(delta) + fieldCount) % fieldCount
		if m.enabled(f) {
			break
		}
	}
	m.focus = f
	m.refocus()
	return m
}

func (m Model) setFocus(f field) Model {
	if !m.enabled(f) {
		return m
	}
	m.focus = f
	m.refocus()
	return m
}

func (m *Model) focusedInput() *textinput.Model {
	return m.inputMap()[m.focus]
}

func (m *Model) inputMap() map[field]*textinput.Model {
	return map[field]*textinput.Model{
		fieldUsername: &m.username,
		fieldEmail:    &m.email,
		fieldContact:  &m.contact,
		fieldLabel:    &m.label,
	}
}

func (m *Model) inputs() []*textinput.Model {
	return []*textinput.Model{&m.username, &m.email, &m.contact, &m.label}
}

// submit validates the form and, when it passes, issues the AddLabel call.
// Each submit owns its loading toast and dismisses it on every exit path.
func (m Model) submit() (mode.Controller, tea.Cmd) {
	loadingID := toaster.NewID()
	showLoading := mode.ShowToastWithID(loadingID, labels.MsgCreating, toaster.StyleLoading)

	if err := m.form.Validate(); err != nil {
		log.Debug(log.CatUI, "Registration rejected by validation", "error", err)
		return m, tea.Sequence(
			showLoading,
			mode.DismissToast(loadingID),
			mode.ShowToast(err.Error(), toaster.StyleError),
		)
	}

	if m.form.UserType == labels.UserTypeNormal {
		m.form = m.form.Settle()
		m.syncInputs()
	}
	reg := m.form.Payload()
	registrar := m.services.Registrar

	log.Info(log.CatUI, "Submitting registration", "username", reg.Username, "usertype", reg.UserType)
	return m, tea.Sequence(showLoading, func() tea.Msg {
		resp, err := registrar.AddLabel(context.Background(), reg)
		return SubmittedMsg{
			LoadingID:    loadingID,
			Registration: reg,
			Outcome:      labels.Classify(resp, err),
		}
	})
}

func (m Model) handleSubmitted(msg SubmittedMsg) tea.Cmd {
	dismiss := mode.DismissToast(msg.LoadingID)
	out := msg.Outcome

	switch out.Kind {
	case labels.OutcomeRegistered:
		log.Info(log.CatUI, "Label registered", "username", msg.Registration.Username, "lable", msg.Registration.Label)
		reg := msg.Registration
		return tea.Sequence(
			dismiss,
			mode.ShowToast(out.Message, toaster.StyleSuccess),
			func() tea.Msg { return mode.RegisteredMsg{Registration: reg} },
			mode.Navigate(labels.RouteLabels),
		)

	case labels.OutcomeRejected:
		log.Warn(log.CatAPI, "Registration rejected by server", "username", msg.Registration.Username, "message", out.Message)
		return tea.Sequence(dismiss, mode.ShowToast(out.Message, toaster.StyleError))

	default:
		log.ErrorErr(log.CatAPI, "Registration request failed", out.Err, "username", msg.Registration.Username)
		return tea.Sequence(dismiss, mode.ShowToast(out.Message, toaster.StyleError))
	}
}
