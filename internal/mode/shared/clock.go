// Package shared provides common types and utilities for pages.
package shared

import (
	"fmt"
	"time"
)

// Clock provides the current time. Use RealClock for production
// and FixedClock for testing.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual current time.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time { return time.Now() }

// FixedClock always returns the same instant.
type FixedClock time.Time

// Now returns the fixed instant.
func (c FixedClock) Now() time.Time { return time.Time(c) }

// FormatRelativeTimeWithClock returns a human-friendly relative timestamp using the provided clock.
// Examples: "now", "5m ago", "3h ago", "2d ago"
func FormatRelativeTimeWithClock(t time.Time, clock Clock) string {
	return FormatRelativeTimeFrom(t, clock.Now())
}

// FormatRelativeTimeFrom returns a human-friendly relative timestamp
// relative to the given reference time.
func FormatRelativeTimeFrom(t, now time.Time) string {
	d := now.Sub(t)

	switch {
	case d < time.Minute:
		return "now"
	case d < time.Hour:
		return fmt.Sprintf("%dm ago", int(d.Minutes()))
	case d < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(d.Hours()))
	default:
		return fmt.Sprintf("%dd ago", int(d.Hours()/24))
	}
}
