// internal/app/view.go
package app

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drawer/internal/keymap"
	"github.com/llehouerou/drawer/internal/shop"
	"github.com/llehouerou/drawer/internal/ui/popup"
	"github.com/llehouerou/drawer/internal/ui/render"
	"github.com/llehouerou/drawer/internal/ui/styles"
)

const footerHint = "enter open · n drinks · ? help · q quit"

// View renders the shop list with any open sheets drawn over it.
func (m Model) View() string {
	if m.Width == 0 || m.Height == 0 {
		return ""
	}
	if m.ShowHelp {
		return m.renderHelp()
	}

	view := m.renderList()
	view = m.ShopSheet.View(view)
	view = m.DrinkSheet.View(view)
	return view
}

func (m Model) renderList() string {
	st := styles.T().S()
	lines := make([]string, 0, m.Height)

	count := fmt.Sprintf("%d shops", len(m.Shops))
	lines = append(lines,
		render.Row(styles.ApplyGradient("Tea shops nearby", styles.T().Primary, styles.T().Secondary), st.Muted.Render(count), m.Width),
		st.Subtle.Render(render.Separator(m.Width)),
	)

	height := m.listHeight()
	start, end := m.Cursor.VisibleRange(len(m.Shops), height)
	for i := start; i < end; i++ {
		lines = append(lines, m.renderShopRow(m.Shops[i], i == m.Cursor.Pos()))
	}
	for len(lines) < height+2 {
		lines = append(lines, "")
	}

	lines = append(lines, st.Subtle.Render(render.Truncate(footerHint, m.Width)))
	return strings.Join(lines[:min(len(lines), m.Height)], "\n")
}

func (m Model) renderShopRow(s shop.Shop, selected bool) string {
	st := styles.T().S()

	status := "open"
	if !s.IsOpen {
		status = "closed"
	}
	right := fmt.Sprintf("★ %.1f  %s  %s", s.Rating, shop.Distance(s.DistanceMetres), status)
	nameWidth := max(m.Width-lipgloss.Width(right)-3, 1)
	row := render.Row(" "+render.Truncate(s.Name, nameWidth), right+" ", m.Width)

	if selected {
		return st.Cursor.Width(m.Width).Render(row)
	}
	return st.Base.Render(row)
}

func (m Model) renderHelp() string {
	var b strings.Builder
	sections := []struct {
		title   string
		context string
	}{
		{"Global", keymap.ContextGlobal},
		{"Shop list", keymap.ContextList},
		{"Sheet", keymap.ContextSheet},
	}
	for i, sec := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(styles.T().S().Accent.Render(sec.title))
		for _, kb := range keymap.ByContext(sec.context) {
			fmt.Fprintf(&b, "\n  %-12s %s", strings.Join(kb.Keys, "/"), kb.Description)
		}
		b.WriteString("\n")
	}

	d := popup.Dialog{
		Title:   "Keys",
		Content: strings.TrimRight(b.String(), "\n"),
		Footer:  "any key to close",
	}
	return d.Render(m.Width, m.Height)
}
