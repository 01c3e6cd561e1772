// Package overlay draws the dimming backdrop behind a bottom sheet and stacks
// full-width layers over a base view.
package overlay

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/llehouerou/drawer/internal/ui/styles"
)

const (
	// MaxDim is how far towards the backdrop colour a fully opaque overlay
	// fades the screen.
	MaxDim = 0.5

	// MinOpacity is the opacity below which the base keeps its own styling.
	MinOpacity = 0.05
)

// Dim fades base towards the theme backdrop. opacity is the overlay opacity
// in [0,1]; below MinOpacity base is returned untouched. Otherwise styling of
// the base is dropped so the whole screen shares one faded colour.
func Dim(base string, opacity float64, width, height int) string {
	if opacity < MinOpacity {
		return base
	}
	amount := min(opacity, 1) * MaxDim

	t := styles.T()
	style := lipgloss.NewStyle().
		Foreground(styles.Blend(t.FgBase, t.Backdrop, amount)).
		Background(styles.Blend(t.BgBase, t.Backdrop, amount))

	lines := fit(strings.Split(base, "\n"), height)
	for i, line := range lines {
		lines[i] = style.Render(padRight(ansi.Strip(line), width))
	}
	return strings.Join(lines, "\n")
}

// Place stacks layer over base starting at row. Layer lines replace whole
// base lines; anything outside [0,height) is dropped.
func Place(base, layer string, row, height int) string {
	lines := fit(strings.Split(base, "\n"), height)
	for i, line := range strings.Split(layer, "\n") {
		y := row + i
		if y < 0 {
			continue
		}
		if y >= len(lines) {
			break
		}
		lines[y] = line
	}
	return strings.Join(lines, "\n")
}

func fit(lines []string, height int) []string {
	if height <= 0 {
		return lines
	}
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func padRight(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
