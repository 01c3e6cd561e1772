package styles

import "github.com/charmbracelet/lipgloss"

// PanelStyle returns the rounded box style used by dialogs. Focused boxes
// take the accent border.
func PanelStyle(focused bool) lipgloss.Style {
	t := T()
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}
