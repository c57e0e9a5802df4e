// Package app contains the root application model.
package app

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/swalay/labelctl/internal/config"
	"github.com/swalay/labelctl/internal/keys"
	"github.com/swalay/labelctl/internal/labels"
	"github.com/swalay/labelctl/internal/log"
	"github.com/swalay/labelctl/internal/mode"
	"github.com/swalay/labelctl/internal/mode/labellist"
	"github.com/swalay/labelctl/internal/mode/register"
	"github.com/swalay/labelctl/internal/mode/shared"
	"github.com/swalay/labelctl/internal/ui/styles"
	"github.com/swalay/labelctl/internal/ui/toaster"
)

// RegistrarFactory builds the backend client for a configuration. It is
// called at startup and again after every config reload.
type RegistrarFactory func(config.Config) labels.Registrar

// Model is the root application state.
type Model struct {
	// Routing
	route    string
	labels   labellist.Model
	register register.Model

	// Shared services (passed to pages)
	services     mode.Services
	cfg          config.Config
	newRegistrar RegistrarFactory

	// Global state
	width  int
	height int

	// Centralized toaster - owned by app, not individual pages
	toaster toaster.Model
}

// New creates the application model starting at route.
func New(cfg config.Config, newRegistrar RegistrarFactory, route string) Model {
	services := mode.Services{
		Registrar: newRegistrar(cfg),
		Config:    &cfg,
		Clock:     shared.RealClock{},
	}

	m := Model{
		labels:       labellist.New(services),
		services:     services,
		cfg:          cfg,
		newRegistrar: newRegistrar,
		toaster:      toaster.New(),
	}
	m, _ = m.navigate(route)
	return m
}

// Route returns the current route.
func (m Model) Route() string {
	return m.route
}

// Labels returns the labels page.
func (m Model) Labels() labellist.Model {
	return m.labels
}

// Toaster returns the toast stack.
func (m Model) Toaster() toaster.Model {
	return m.toaster
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return m.active().Init()
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		m.labels = m.labels.SetSize(msg.Width, msg.Height).(labellist.Model)
		m.register = m.register.SetSize(msg.Width, msg.Height).(register.Model)
		m.toaster = m.toaster.SetSize(msg.Width, msg.Height)

		return m, nil

	case tea.KeyMsg:
		if key.Matches(msg, keys.Form.Quit) {
			log.Info(log.CatMode, "Quit requested", "route", m.route)
			return m, tea.Quit
		}

	case tea.MouseMsg:
		if !m.cfg.UI.Mouse {
			return m, nil
		}

	case mode.NavigateMsg:
		return m.navigate(msg.Path)

	case mode.ShowToastMsg:
		m.toaster = m.toaster.Show(msg.ID, msg.Message, msg.Style)
		if msg.Style == toaster.StyleLoading {
			return m, nil
		}
		return m, toaster.ScheduleDismiss(msg.ID, m.cfg.UI.ToastDuration)

	case mode.DismissToastMsg:
		m.toaster = m.toaster.Dismiss(msg.ID)
		return m, nil

	case toaster.DismissMsg:
		m.toaster = m.toaster.Dismiss(msg.ID)
		return m, nil

	case mode.RegisteredMsg:
		m.labels = m.labels.Record(msg.Registration)
		return m, nil

	case register.SubmittedMsg:
		// Results can land after the user has left the page; the loading
		// toast still has to be dismissed.
		c, cmd := m.register.Update(msg)
		m.register = c.(register.Model)
		return m, cmd

	case config.ReloadedMsg:
		return m.applyConfig(msg.Config), nil
	}

	// Delegate everything else to the active page
	var cmd tea.Cmd
	switch m.route {
	case labels.RouteRegister:
		var c mode.Controller
		c, cmd = m.register.Update(msg)
		m.register = c.(register.Model)
	default:
		var c mode.Controller
		c, cmd = m.labels.Update(msg)
		m.labels = c.(labellist.Model)
	}
	return m, cmd
}

// navigate switches the active page. The registration page is rebuilt on
// every visit so each visit starts from a fresh form.
func (m Model) navigate(path string) (Model, tea.Cmd) {
	switch path {
	case labels.RouteRegister:
		m.register = register.New(m.services).SetSize(m.width, m.height).(register.Model)
	case labels.RouteLabels:
	default:
		log.Warn(log.CatMode, "Ignoring navigation to unknown route", "path", path)
		return m, nil
	}

	log.Info(log.CatMode, "Navigating", "from", m.route, "to", path)
	m.route = path
	return m, m.active().Init()
}

// applyConfig swaps in a reloaded configuration and rebuilds the backend
// client. Pages pick the new client up on their next visit.
func (m Model) applyConfig(cfg config.Config) Model {
	m.cfg = cfg
	m.services.Config = &cfg
	m.services.Registrar = m.newRegistrar(cfg)
	styles.ApplyTheme(cfg.Theme.Highlight, cfg.Theme.Muted, cfg.Theme.Error, cfg.Theme.Success)
	log.Info(log.CatConfig, "Applied reloaded config", "base_url", cfg.API.BaseURL)
	return m
}

func (m Model) active() mode.Controller {
	if m.route == labels.RouteRegister {
		return m.register
	}
	return m.labels
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.active().View()
	view = m.toaster.Overlay(view)
	return zone.Scan(view)
}
