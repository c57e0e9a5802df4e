// Package breadcrumb renders the page trail shown above each page heading.
package breadcrumb

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/swalay/labelctl/internal/ui/styles"
)

// Separator sits between crumbs.
const Separator = " › "

// Crumb is one step of the trail. The last crumb is the current page.
type Crumb struct {
	Title string
	Path  string
}

// Render draws the trail, truncating it to width when width > 0.
// Earlier crumbs are muted and the current page is bold.
func Render(crumbs []Crumb, width int) string {
	if len(crumbs) == 0 {
		return ""
	}

	if width > 0 && lipgloss.Width(Plain(crumbs)) > width {
		return styles.HintStyle.Render(styles.TruncateString(Plain(crumbs), width))
	}

	parts := make([]string, len(crumbs))
	last := len(crumbs) - 1
	for i, c := range crumbs {
		if i == last {
			parts[i] = lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor).Render(c.Title)
			continue
		}
		parts[i] = styles.HintStyle.Render(c.Title)
	}
	return strings.Join(parts, styles.HintStyle.Render(Separator))
}

// Plain returns the trail without styling.
func Plain(crumbs []Crumb) string {
	titles := make([]string, len(crumbs))
	for i, c := range crumbs {
		titles[i] = c.Title
	}
	return strings.Join(titles, Separator)
}
