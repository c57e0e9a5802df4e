package toaster

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	m := New()

	assert.False(t, m.Visible())
	assert.Empty(t, m.View())
}

func TestShowAndDismiss(t *testing.T) {
	id := NewID()
	m := New().Show(id, "Creating account", StyleLoading)

	assert.True(t, m.Visible())
	assert.True(t, m.Has(id))
	assert.Contains(t, m.View(), "Creating account")

	m = m.Dismiss(id)
	assert.False(t, m.Visible())
	assert.False(t, m.Has(id))
}

func TestDismiss_OnlyTargetsOwnID(t *testing.T) {
	loadingA, loadingB := NewID(), NewID()
	m := New().
		Show(loadingA, "Creating account", StyleLoading).
		Show(loadingB, "Creating account", StyleLoading)

	m = m.Dismiss(loadingA)

	assert.False(t, m.Has(loadingA))
	assert.True(t, m.Has(loadingB), "a second submit's toast must survive")
}

func TestDismiss_UnknownIDIsNoop(t *testing.T) {
	id := NewID()
	m := New().Show(id, "Label registered successfully!", StyleSuccess)

	m = m.Dismiss(NewID())
	assert.True(t, m.Has(id))
}

func TestShow_SameIDReplacesInPlace(t *testing.T) {
	first, second := NewID(), NewID()
	m := New().
		Show(first, "one", StyleLoading).
		Show(second, "two", StyleSuccess).
		Show(first, "uno", StyleError)

	assert.Equal(t, []string{"uno", "two"}, m.Messages())
}

func TestShow_EmptyMessageIgnored(t *testing.T) {
	m := New().Show(NewID(), "", StyleError)

	assert.False(t, m.Visible())
}

func TestView_StylePrefixes(t *testing.T) {
	tests := []struct {
		style  Style
		prefix string
	}{
		{StyleSuccess, "✅"},
		{StyleError, "❌"},
		{StyleLoading, "⏳"},
	}
	for _, tt := range tests {
		view := New().Show(NewID(), "msg", tt.style).View()
		assert.Contains(t, view, tt.prefix+" msg")
		assert.Contains(t, view, "╭")
	}
}

func TestView_StacksOldestFirst(t *testing.T) {
	m := New().
		Show(NewID(), "Creating account", StyleLoading).
		Show(NewID(), "Username is required", StyleError)

	view := ansi.Strip(m.View())
	require.Less(t, strings.Index(view, "Creating account"), strings.Index(view, "Username is required"))
}

func TestOverlay_PlacesAtTop(t *testing.T) {
	m := New().Show(NewID(), "saved", StyleSuccess).SetSize(40, 10)
	bg := strings.TrimSuffix(strings.Repeat(strings.Repeat(".", 40)+"\n", 10), "\n")

	lines := strings.Split(ansi.Strip(m.Overlay(bg)), "\n")

	require.Len(t, lines, 10)
	assert.Equal(t, strings.Repeat(".", 40), lines[0], "one row of padding above the toast")
	assert.Contains(t, lines[2], "saved")
	assert.Equal(t, strings.Repeat(".", 40), lines[9])
}

func TestOverlay_NoToastsReturnsBackground(t *testing.T) {
	assert.Equal(t, "bg", New().Overlay("bg"))
}

func TestScheduleDismiss(t *testing.T) {
	id := NewID()
	cmd := ScheduleDismiss(id, time.Millisecond)
	require.NotNil(t, cmd)

	msg := cmd()
	assert.Equal(t, DismissMsg{ID: id}, msg)
}

func TestNewID_Unique(t *testing.T) {
	assert.NotEqual(t, NewID(), NewID())
}

func TestView_WrapsLongMessages(t *testing.T) {
	msg := strings.Repeat("label already registered ", 6)
	m := New().Show(NewID(), msg, StyleError)

	lines := strings.Split(ansi.Strip(m.View()), "\n")
	require.Greater(t, len(lines), 3, "long messages span several lines")
	for _, line := range lines {
		assert.LessOrEqual(t, ansi.StringWidth(line), maxTextWidth+4)
	}
}

func TestView_WrapsToNarrowTerminal(t *testing.T) {
	m := New().Show(NewID(), "Username is required before registering", StyleError).SetSize(24, 10)

	for _, line := range strings.Split(ansi.Strip(m.View()), "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(line), 24)
	}
}
