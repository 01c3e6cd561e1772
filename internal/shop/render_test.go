package shop

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/drawer/internal/ui/testutil"
)

func TestCatalog_ClosestFirst(t *testing.T) {
	shops := Catalog()
	require.NotEmpty(t, shops)
	for i := 1; i < len(shops); i++ {
		assert.LessOrEqual(t, shops[i-1].DistanceMetres, shops[i].DistanceMetres)
	}
}

func TestRender_ShopSections(t *testing.T) {
	s := Catalog()[0]

	out := testutil.StripANSI(Render(s, 60))

	assert.Contains(t, out, "Ten Ren Tea")
	assert.Contains(t, out, "OPEN")
	assert.Contains(t, out, "(4 reviews)")
	assert.Contains(t, out, "200 m")
	assert.Contains(t, out, "Featured Items")
	assert.Contains(t, out, "HK$28")
	assert.Contains(t, out, "See all 4")
	assert.Contains(t, out, "Sarah Chen")
	assert.Contains(t, out, "Founded")
	assert.Contains(t, out, s.Phone)
	assert.Contains(t, out, s.Website)
	assert.NotContains(t, out, "Tom Lau", "only the top reviews are shown")
}

func TestRender_ClosedShop(t *testing.T) {
	out := testutil.StripANSI(Render(Catalog()[2], 50))
	assert.Contains(t, out, "CLOSED")
}

func TestRender_LinesFitWidth(t *testing.T) {
	for _, width := range []int{24, 40, 80} {
		for _, s := range Catalog() {
			for i, line := range strings.Split(Render(s, width), "\n") {
				assert.LessOrEqual(t, lipgloss.Width(line), width, "%s line %d at width %d", s.Name, i, width)
			}
		}
	}
}

func TestRenderDrinkLog(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	out := testutil.StripANSI(RenderDrinkLog(DrinkLog(now), 50, now))

	assert.Contains(t, out, "3 logged")
	assert.Contains(t, out, "Brown Sugar Boba")
	assert.Contains(t, out, "2 hours ago")
	assert.Contains(t, out, "1 day ago")
	assert.Contains(t, out, "unrated")
	for i, line := range strings.Split(RenderDrinkLog(DrinkLog(now), 50, now), "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 50, "line %d", i)
	}
}

func TestRenderDrinkLog_Empty(t *testing.T) {
	out := testutil.StripANSI(RenderDrinkLog(nil, 40, time.Now()))
	assert.Contains(t, out, "0 logged")
	assert.Contains(t, out, "No drinks logged yet.")
}

func TestDistance(t *testing.T) {
	assert.Equal(t, "200 m", Distance(200))
	assert.Equal(t, "1.2 km", Distance(1200))
}

func TestStars(t *testing.T) {
	assert.Equal(t, "★★★★☆", Stars(4))
	assert.Equal(t, "★★★★★", Stars(9))
	assert.Equal(t, "☆☆☆☆☆", Stars(-1))
}
