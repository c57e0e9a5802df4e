package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/exp/teatest"
	zone "github.com/lrstanley/bubblezone"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/swalay/labelctl/internal/api"
	"github.com/swalay/labelctl/internal/config"
	"github.com/swalay/labelctl/internal/labels"
	"github.com/swalay/labelctl/internal/mode"
	"github.com/swalay/labelctl/internal/mode/register"
	"github.com/swalay/labelctl/internal/testutil"
	"github.com/swalay/labelctl/internal/ui/toaster"
)

func TestMain(m *testing.M) {
	zone.NewGlobal()
	os.Exit(m.Run())
}

// createTestModel creates a Model backed by registrar.
func createTestModel(registrar labels.Registrar, route string) Model {
	cfg := config.Defaults()
	m := New(cfg, func(config.Config) labels.Registrar { return registrar }, route)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	return next.(Model)
}

func updateApp(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	am, ok := next.(Model)
	require.True(t, ok)
	return am, cmd
}

func TestApp_StartRoute(t *testing.T) {
	m := createTestModel(testutil.Succeeding(), labels.RouteRegister)
	assert.Equal(t, labels.RouteRegister, m.Route())
	assert.Contains(t, m.View(), register.Heading)
}

func TestApp_WindowSizeMsg(t *testing.T) {
	m := createTestModel(testutil.Succeeding(), labels.RouteLabels)

	m, _ = updateApp(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	assert.Equal(t, 120, m.width)
	assert.Equal(t, 50, m.height)
}

func TestApp_NavigateBetweenPages(t *testing.T) {
	m := createTestModel(testutil.Succeeding(), labels.RouteLabels)

	m, _ = updateApp(t, m, mode.NavigateMsg{Path: labels.RouteRegister})
	assert.Equal(t, labels.RouteRegister, m.Route())

	m, _ = updateApp(t, m, mode.NavigateMsg{Path: labels.RouteLabels})
	assert.Equal(t, labels.RouteLabels, m.Route())
}

func TestApp_NavigateUnknownRouteIgnored(t *testing.T) {
	m := createTestModel(testutil.Succeeding(), labels.RouteLabels)

	m, cmd := updateApp(t, m, mode.NavigateMsg{Path: "/nowhere"})

	assert.Equal(t, labels.RouteLabels, m.Route())
	assert.Nil(t, cmd)
}

func TestApp_RegisterPageStartsFreshOnEachVisit(t *testing.T) {
	m := createTestModel(testutil.Succeeding(), labels.RouteRegister)
	m, _ = updateApp(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("alice")})
	require.Equal(t, "alice", m.register.Form().Username)

	m, _ = updateApp(t, m, mode.NavigateMsg{Path: labels.RouteLabels})
	m, _ = updateApp(t, m, mode.NavigateMsg{Path: labels.RouteRegister})

	assert.Empty(t, m.register.Form().Username)
}

func TestApp_ToastLifecycle(t *testing.T) {
	m := createTestModel(testutil.Succeeding(), labels.RouteLabels)
	loading := toaster.NewID()

	m, cmd := updateApp(t, m, mode.ShowToastMsg{ID: loading, Message: labels.MsgCreating, Style: toaster.StyleLoading})
	assert.Nil(t, cmd, "loading toasts are not auto-dismissed")
	assert.True(t, m.Toaster().Has(loading))
	assert.Contains(t, m.View(), labels.MsgCreating)

	success := toaster.NewID()
	m, cmd = updateApp(t, m, mode.ShowToastMsg{ID: success, Message: labels.MsgRegistered, Style: toaster.StyleSuccess})
	require.NotNil(t, cmd, "non-loading toasts schedule their dismissal")

	m, _ = updateApp(t, m, mode.DismissToastMsg{ID: loading})
	assert.False(t, m.Toaster().Has(loading))
	assert.True(t, m.Toaster().Has(success))

	m, _ = updateApp(t, m, toaster.DismissMsg{ID: success})
	assert.False(t, m.Toaster().Visible())
}

func TestApp_RegisteredMsgRecordedOnLabelsPage(t *testing.T) {
	m := createTestModel(testutil.Succeeding(), labels.RouteRegister)

	m, _ = updateApp(t, m, mode.RegisteredMsg{Registration: testutil.Registration()})

	require.Len(t, m.Labels().Entries(), 1)
}

func TestApp_LateResultStillDismissesLoadingToast(t *testing.T) {
	m := createTestModel(testutil.Rejecting("duplicate email"), labels.RouteLabels)
	loading := toaster.NewID()
	m, _ = updateApp(t, m, mode.ShowToastMsg{ID: loading, Message: labels.MsgCreating, Style: toaster.StyleLoading})

	m, cmd := updateApp(t, m, register.SubmittedMsg{
		LoadingID: loading,
		Outcome:   labels.Classify(labels.Response{Message: "duplicate email"}, nil),
	})
	for _, msg := range testutil.Collect(cmd) {
		m, _ = updateApp(t, m, msg)
	}

	assert.False(t, m.Toaster().Has(loading))
	assert.Equal(t, []string{"duplicate email"}, m.Toaster().Messages())
}

func TestApp_ReloadRebuildsRegistrar(t *testing.T) {
	var seen []string
	factory := func(c config.Config) labels.Registrar {
		seen = append(seen, c.API.BaseURL)
		return testutil.Succeeding()
	}
	m := New(config.Defaults(), factory, labels.RouteLabels)

	cfg := config.Defaults()
	cfg.API.BaseURL = "https://dash.example.com"
	m, _ = updateApp(t, m, config.ReloadedMsg{Config: cfg})

	assert.Equal(t, []string{"http://localhost:3000", "https://dash.example.com"}, seen)
	assert.Equal(t, "https://dash.example.com", m.services.Config.API.BaseURL)
}

func TestApp_MouseIgnoredWhenDisabled(t *testing.T) {
	cfg := config.Defaults()
	cfg.UI.Mouse = false
	m := New(cfg, func(config.Config) labels.Registrar { return testutil.Succeeding() }, labels.RouteRegister)

	_, cmd := updateApp(t, m, tea.MouseMsg{X: 1, Y: 1, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	assert.Nil(t, cmd)
}

func TestApp_CtrlCQuits(t *testing.T) {
	m := createTestModel(testutil.Succeeding(), labels.RouteRegister)

	_, cmd := updateApp(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})

	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

// backend is an httptest stand-in for the dashboard's addLabel endpoint.
type backend struct {
	mu       sync.Mutex
	received []labels.Registration
	reply    labels.Response
}

func (b *backend) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var reg labels.Registration
	if r.URL.Path != labels.AddLabelPath || json.NewDecoder(r.Body).Decode(&reg) != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	b.mu.Lock()
	b.received = append(b.received, reg)
	b.mu.Unlock()
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(b.reply)
}

func (b *backend) calls() []labels.Registration {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]labels.Registration(nil), b.received...)
}

func TestApp_EndToEndRegistration(t *testing.T) {
	be := &backend{reply: labels.Response{Success: true}}
	srv := httptest.NewServer(be)
	t.Cleanup(srv.Close)

	cfg := config.Defaults()
	cfg.API.BaseURL = srv.URL
	cfg.UI.ToastDuration = 5 * time.Second
	factory := func(c config.Config) labels.Registrar {
		return api.NewClient(api.Config{BaseURL: c.API.BaseURL, Token: c.API.Token, Timeout: c.API.Timeout})
	}

	tm := teatest.NewTestModel(t, New(cfg, factory, labels.RouteRegister), teatest.WithInitialTermSize(100, 40))

	tab := tea.KeyMsg{Type: tea.KeyTab}
	tm.Type("alice")
	tm.Send(tab)
	tm.Type("a@b.com")
	tm.Send(tab)
	tm.Type("9999999999")
	tm.Send(tab)
	tm.Send(tab)
	tm.Type("Acme Records")
	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlS})

	teatest.WaitFor(t, tm.Output(), func(out []byte) bool {
		return bytes.Contains(out, []byte(labels.MsgRegistered)) && bytes.Contains(out, []byte("Registered"))
	}, teatest.WithDuration(5*time.Second), teatest.WithCheckInterval(20*time.Millisecond))

	tm.Send(tea.KeyMsg{Type: tea.KeyCtrlC})
	tm.WaitFinished(t, teatest.WithFinalTimeout(5*time.Second))

	final, ok := tm.FinalModel(t).(Model)
	require.True(t, ok)
	assert.Equal(t, labels.RouteLabels, final.Route())
	require.Len(t, final.Labels().Entries(), 1)
	assert.Equal(t, []labels.Registration{testutil.Registration()}, be.calls())
	for _, msg := range final.Toaster().Messages() {
		assert.NotEqual(t, labels.MsgCreating, msg, "loading toast must be gone")
	}
}
