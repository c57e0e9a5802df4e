package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Rounded border characters used by RenderFormSection.
const (
	borderTopLeft     = "╭"
	borderTopRight    = "╮"
	borderBottomLeft  = "╰"
	borderBottomRight = "╯"
	borderHorizontal  = "─"
	borderVertical    = "│"
)

// FormSection configures RenderFormSection.
type FormSection struct {
	Content  []string
	Title    string
	Hint     string // Shown after the title in parentheses, e.g. "required"
	Width    int
	Focused  bool
	Disabled bool
}

// RenderFormSection renders a bordered field section with the title inlined
// into the top border: ╭─ Title (hint) ───╮
func RenderFormSection(s FormSection) string {
	var borderColor lipgloss.TerminalColor = BorderDefaultColor
	var titleColor lipgloss.TerminalColor = TextPrimaryColor
	switch {
	case s.Disabled:
		titleColor = TextMutedColor
	case s.Focused:
		borderColor = BorderHighlightFocusColor
		titleColor = BorderHighlightFocusColor
	}

	borderStyle := lipgloss.NewStyle().Foreground(borderColor)
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(titleColor)

	innerWidth := max(s.Width-2, 1)

	var topBorder string
	if s.Title == "" {
		topBorder = borderStyle.Render(borderTopLeft + strings.Repeat(borderHorizontal, innerWidth) + borderTopRight)
	} else {
		titleLen := lipgloss.Width(s.Title)
		if s.Hint != "" {
			titleLen = lipgloss.Width(s.Title + " (" + s.Hint + ")")
		}
		dashesAfter := max(innerWidth-titleLen-3, 0) // "─ " before and " " after the title

		topBorder = borderStyle.Render(borderTopLeft+borderHorizontal+" ") + titleStyle.Render(s.Title)
		if s.Hint != "" {
			topBorder += " " + HintStyle.Render("("+s.Hint+")")
		}
		topBorder += borderStyle.Render(" " + strings.Repeat(borderHorizontal, dashesAfter) + borderTopRight)
	}

	rows := make([]string, 0, len(s.Content))
	for _, row := range s.Content {
		if s.Disabled {
			row = HintStyle.Render(row)
		}
		padding := ""
		if w := lipgloss.Width(row); w < innerWidth {
			padding = strings.Repeat(" ", innerWidth-w)
		}
		rows = append(rows, borderStyle.Render(borderVertical)+row+padding+borderStyle.Render(borderVertical))
	}

	bottomBorder := borderStyle.Render(borderBottomLeft + strings.Repeat(borderHorizontal, innerWidth) + borderBottomRight)

	return topBorder + "\n" + strings.Join(rows, "\n") + "\n" + bottomBorder
}
