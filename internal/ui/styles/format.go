package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Radio glyphs.
const (
	RadioOn  = "◉"
	RadioOff = "○"
)

// TruncateString truncates unstyled text to fit within maxWidth cells,
// adding an ellipsis if needed.
func TruncateString(s string, maxWidth int) string {
	if maxWidth < 1 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	if maxWidth <= 3 {
		return strings.Repeat(".", maxWidth)
	}
	return runewidth.Truncate(s, maxWidth, "...")
}

// FormatRadio renders one radio option, e.g. "◉ Super".
func FormatRadio(label string, selected, focused bool) string {
	glyph := RadioOff
	if selected {
		glyph = RadioOn
	}
	text := glyph + " " + label
	switch {
	case selected && focused:
		return lipgloss.NewStyle().Bold(true).Foreground(BorderHighlightFocusColor).Render(text)
	case selected:
		return lipgloss.NewStyle().Foreground(TextPrimaryColor).Render(text)
	default:
		return HintStyle.Render(text)
	}
}

// MaskSecret keeps the last four characters of s visible.
func MaskSecret(s string) string {
	if s == "" {
		return ""
	}
	if len(s) <= 4 {
		return strings.Repeat("•", len(s))
	}
	return strings.Repeat("•", len(s)-4) + s[len(s)-4:]
}
