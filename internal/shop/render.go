package shop

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/dustin/go-humanize"

	"github.com/llehouerou/drawer/internal/ui/render"
	"github.com/llehouerou/drawer/internal/ui/styles"
)

const (
	maxRendererCacheEntries = 4
	topReviews              = 3
)

var (
	rendererMu    sync.Mutex
	rendererCache = map[int]*glamour.TermRenderer{}
)

// markdownRenderer returns a cached renderer wrapping at width. The dark
// standard style is used so no terminal background query is sent.
func markdownRenderer(width int) (*glamour.TermRenderer, error) {
	rendererMu.Lock()
	defer rendererMu.Unlock()

	if r, ok := rendererCache[width]; ok {
		return r, nil
	}
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return nil, err
	}
	if len(rendererCache) >= maxRendererCacheEntries {
		clear(rendererCache)
	}
	rendererCache[width] = r
	return r, nil
}

// Markdown renders md at width, falling back to the plain text.
func Markdown(md string, width int) string {
	r, err := markdownRenderer(max(width, 10))
	if err == nil {
		var out string
		if out, err = r.Render(md); err == nil {
			return strings.Trim(out, "\n")
		}
	}
	log.Printf("shop: render markdown: %v", err)
	return md
}

// Render lays out a shop as sheet content for the given width.
func Render(s Shop, width int) string {
	width = max(width, 20)
	st := styles.T().S()

	status := st.Success.Bold(true).Render("OPEN")
	if !s.IsOpen {
		status = st.Error.Bold(true).Render("CLOSED")
	}

	var b strings.Builder
	line := func(str string) {
		b.WriteString(str)
		b.WriteByte('\n')
	}
	section := func(title, right string) {
		line("")
		line(render.Row(st.Title.Render(title), st.Accent.Render(right), width))
	}

	line(render.Row(st.Title.Render(render.Truncate(s.Name, width-8)), status, width))
	line(render.Row(
		st.Warning.Render("★ ")+st.Base.Render(fmt.Sprintf("%.1f", s.Rating))+
			st.Muted.Render(fmt.Sprintf(" (%s reviews)", humanize.Comma(int64(len(s.Reviews))))),
		st.Muted.Render(Distance(s.DistanceMetres)),
		width,
	))
	line(st.Muted.Render("⌖ " + s.Location))
	line(st.Muted.Render("◷ " + s.Hours))
	line("")
	line(st.Accent.Render("[ Navigate ]") + "  " + st.Accent.Render("[ Call ]"))

	if len(s.Featured) > 0 {
		section("Featured Items", "")
		for _, item := range s.Featured {
			line(render.Row(st.Base.Render(render.Truncate(item.Name, width-10)), st.Accent.Render(item.Price), width))
		}
	}

	if len(s.Reviews) > 0 {
		section("Top Reviews", "See all "+humanize.Comma(int64(len(s.Reviews))))
		wrap := st.Muted.Width(width - 2).PaddingLeft(2)
		for _, r := range s.Reviews[:min(len(s.Reviews), topReviews)] {
			line(st.Base.Bold(true).Render(r.User) + " " + st.Warning.Render(Stars(r.Rating)))
			line(wrap.Render(r.Comment))
		}
	}

	section("About", "")
	line(Markdown(s.Description, width))
	line(st.Muted.Render("☎ " + s.Phone))
	line(st.Muted.Render("⌂ " + s.Website))

	return fit(strings.TrimRight(b.String(), "\n"), width)
}

// RenderDrinkLog lists drinks with their age relative to now.
func RenderDrinkLog(drinks []Drink, width int, now time.Time) string {
	width = max(width, 20)
	st := styles.T().S()

	var b strings.Builder
	b.WriteString(render.Row(st.Title.Render("Drink Log"), st.Muted.Render(humanize.Comma(int64(len(drinks)))+" logged"), width))
	b.WriteByte('\n')
	b.WriteString(st.Subtle.Render(render.Separator(width)))

	if len(drinks) == 0 {
		b.WriteString("\n" + st.Muted.Render("No drinks logged yet."))
		return b.String()
	}

	for _, d := range drinks {
		rating := st.Subtle.Render("unrated")
		if d.Rating > 0 {
			rating = st.Warning.Render(Stars(d.Rating))
		}
		b.WriteByte('\n')
		b.WriteString(render.Row(st.Base.Bold(true).Render(render.Truncate(d.Name, width-12)), st.Accent.Render(d.Price), width))
		b.WriteByte('\n')
		b.WriteString(render.Row(st.Muted.Render(render.Truncate(d.Shop, width-16)), rating, width))
		b.WriteByte('\n')
		b.WriteString(st.Subtle.Render(fmt.Sprintf("%s · sugar %s · ice %s · %s",
			d.Size, strings.ToLower(d.Sugar), strings.ToLower(d.Ice),
			humanize.RelTime(d.CreatedAt, now, "ago", "from now"))))
		b.WriteByte('\n')
	}
	return fit(strings.TrimRight(b.String(), "\n"), width)
}

// Distance formats metres for display, e.g. "200 m" or "1.2 km".
func Distance(metres float64) string {
	return humanize.SIWithDigits(metres, 1, "m")
}

// Stars renders a 1 to 5 rating as filled and empty stars.
func Stars(rating int) string {
	rating = min(max(rating, 0), 5)
	return strings.Repeat("★", rating) + strings.Repeat("☆", 5-rating)
}

// fit cuts every line to width cells.
func fit(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		if lipgloss.Width(l) > width {
			lines[i] = ansi.Truncate(l, width, "")
		}
	}
	return strings.Join(lines, "\n")
}
