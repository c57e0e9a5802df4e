package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFormatRelativeTime(t *testing.T) {
	now := time.Date(2025, 12, 13, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		input    time.Time
		expected string
	}{
		{"just registered", now.Add(-30 * time.Second), "now"},
		{"minutes", now.Add(-5 * time.Minute), "5m ago"},
		{"hour boundary", now.Add(-1 * time.Hour), "1h ago"},
		{"days", now.Add(-48 * time.Hour), "2d ago"},
		{"future", now.Add(time.Hour), "now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FormatRelativeTimeFrom(tt.input, now)
			require.Equal(t, tt.expected, got, "FormatRelativeTimeFrom(%v, %v)", tt.input, now)
		})
	}
}

func TestFormatRelativeTimeWithClock(t *testing.T) {
	now := time.Date(2025, 12, 13, 12, 0, 0, 0, time.UTC)

	got := FormatRelativeTimeWithClock(now.Add(-3*time.Hour), FixedClock(now))
	require.Equal(t, "3h ago", got)
}
