package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Burnt orange - actions, cursor
	Secondary lipgloss.Color // Cream - highlights, ratings

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase   lipgloss.Color // Screen background
	BgSheet  lipgloss.Color // Bottom sheet surface
	BgCursor lipgloss.Color // Cursor/selection highlight
	Backdrop lipgloss.Color // Colour the overlay fades the screen towards

	// Borders
	Border      lipgloss.Color // Panel borders
	BorderFocus lipgloss.Color // Focused panel borders
	Handle      lipgloss.Color // Sheet drag handle

	// Status colors
	Success lipgloss.Color // Green - open
	Error   lipgloss.Color // Red - closed
	Warning lipgloss.Color // Yellow - ratings

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base    lipgloss.Style // Default text
	Muted   lipgloss.Style // Dimmed text
	Subtle  lipgloss.Style // Very dim text
	Title   lipgloss.Style // Bold, bright
	Accent  lipgloss.Style // Primary colour, bold
	Cursor  lipgloss.Style // Cursor background highlight
	Handle  lipgloss.Style // Drag handle glyphs
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#d86a2b"),
	Secondary: lipgloss.Color("#ffecbc"),

	FgBase:   lipgloss.Color("#e8e2d6"),
	FgMuted:  lipgloss.Color("#a09a90"),
	FgSubtle: lipgloss.Color("#707070"),

	BgBase:   lipgloss.Color("#1c1a17"),
	BgSheet:  lipgloss.Color("#26231f"),
	BgCursor: lipgloss.Color("#3a332b"),
	Backdrop: lipgloss.Color("#000000"),

	Border:      lipgloss.Color("#4f4f4f"),
	BorderFocus: lipgloss.Color("#d86a2b"),
	Handle:      lipgloss.Color("#707070"),

	Success: lipgloss.Color("#42b883"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#ffd700"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Accent: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Cursor: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Handle:  lipgloss.NewStyle().Foreground(t.Handle),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
