package drawer

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drawer/internal/ui/overlay"
	"github.com/llehouerou/drawer/internal/ui/styles"
)

const (
	sheetChromeWidth = 4 // side borders + padding
	sheetHeaderRows  = 1 // top border carrying the handle
	handleWidth      = 6
)

// View renders the sheet and its overlay over base. A hidden sheet returns
// base unchanged.
func (m Model) View(base string) string {
	if !m.driver.OverlayInteractive() || m.width == 0 {
		return base
	}
	top := m.topRow()
	if top >= m.height {
		return base
	}
	dimmed := overlay.Dim(base, m.driver.Opacity(), m.width, m.height)
	return overlay.Place(dimmed, m.renderSheet(m.height-top), top, m.height)
}

// bodyRows is the number of content rows visible at the current offset.
func (m Model) bodyRows() int {
	return max(m.height-m.topRow()-sheetHeaderRows, 0)
}

func (m Model) renderSheet(rows int) string {
	t := styles.T()
	inner := max(m.width-2, 0)

	border := lipgloss.NewStyle().Foreground(t.Border).Background(t.BgSheet)
	header := border.Render("╭"+strings.Repeat("─", inner)+"╮")
	if m.opts.EnableGestures && inner >= handleWidth+2 {
		left := (inner - handleWidth) / 2
		right := inner - handleWidth - left
		header = border.Render("╭"+strings.Repeat("─", left)) +
			t.S().Handle.Background(t.BgSheet).Render(strings.Repeat("━", handleWidth)) +
			border.Render(strings.Repeat("─", right)+"╮")
	}

	body := rows - sheetHeaderRows
	if body <= 0 {
		return header
	}

	vp := m.viewport
	vp.Width = m.ContentWidth()
	vp.Height = body

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), false, true, false, true).
		BorderForeground(t.Border).
		BorderBackground(t.BgSheet).
		Background(t.BgSheet).
		Foreground(t.FgBase).
		Padding(0, 1).
		Width(inner).
		Height(body).
		MaxHeight(body)

	return header + "\n" + box.Render(vp.View())
}
