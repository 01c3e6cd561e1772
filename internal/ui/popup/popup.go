// Package popup renders centred modal dialogs such as the key help.
package popup

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drawer/internal/ui/render"
	"github.com/llehouerou/drawer/internal/ui/styles"
)

// Dialog is a bordered box with an optional title and footer.
type Dialog struct {
	Title   string
	Content string
	Footer  string
	Width   int // content width; 0 fits the widest line
}

// Render returns the dialog centred in a termWidth x termHeight area.
func (d Dialog) Render(termWidth, termHeight int) string {
	s := styles.T().S()

	width := d.Width
	if width == 0 {
		width = max(maxLineWidth(d.Content), lipgloss.Width(d.Title), lipgloss.Width(d.Footer))
	}
	width = max(min(width, termWidth-4), 1)

	lines := make([]string, 0, strings.Count(d.Content, "\n")+5)
	if d.Title != "" {
		lines = append(lines, centerLine(s.Title.Render(d.Title), width), "")
	}
	for line := range strings.SplitSeq(d.Content, "\n") {
		if lipgloss.Width(line) > width {
			line = render.Truncate(line, width)
		}
		lines = append(lines, line)
	}
	if d.Footer != "" {
		lines = append(lines, "", centerLine(s.Subtle.Render(d.Footer), width))
	}

	box := styles.PanelStyle(true).
		Padding(0, 1).
		Width(width + 2).
		Render(strings.Join(lines, "\n"))

	return lipgloss.Place(termWidth, termHeight, lipgloss.Center, lipgloss.Center, box)
}

func maxLineWidth(s string) int {
	w := 0
	for line := range strings.SplitSeq(s, "\n") {
		w = max(w, lipgloss.Width(line))
	}
	return w
}

func centerLine(s string, width int) string {
	w := lipgloss.Width(s)
	if w >= width {
		return s
	}
	pad := (width - w) / 2
	return strings.Repeat(" ", pad) + s + strings.Repeat(" ", width-w-pad)
}
