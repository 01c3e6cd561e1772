// internal/app/app_test.go
package app

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/drawer/internal/drawer"
	"github.com/llehouerou/drawer/internal/ui/testutil"
)

// testApp narrows Update to the concrete model for the harness.
type testApp struct{ Model }

func (a testApp) Update(msg tea.Msg) (testApp, tea.Cmd) {
	m, cmd := a.update(msg)
	return testApp{m}, cmd
}

func newTestApp(t *testing.T) *testutil.Harness[testApp] {
	t.Helper()
	m, err := New(drawer.Options{
		InitialState:   drawer.Half,
		SnapPoints:     drawer.SnapPoints{Half: drawer.Fraction(0.5), Full: 0.9},
		EnableGestures: true,
		EnableHaptics:  true,
	})
	require.NoError(t, err)
	h := testutil.NewHarness(testApp{m})
	h.Send(tea.WindowSizeMsg{Width: 60, Height: 40})
	h.Clear()
	return h
}

func isFrame(msg tea.Msg) bool {
	_, ok := msg.(drawer.FrameMsg)
	return ok
}

func closedMsgs(msgs []tea.Msg) []drawer.ClosedMsg {
	var out []drawer.ClosedMsg
	for _, msg := range msgs {
		if c, ok := msg.(drawer.ClosedMsg); ok {
			out = append(out, c)
		}
	}
	return out
}

func TestNew_StartsWithHiddenSheets(t *testing.T) {
	h := newTestApp(t)
	m := h.Model()

	assert.NotEmpty(t, m.Shops)
	assert.Equal(t, -1, m.Selected)
	assert.False(t, m.ShopSheet.Visible())
	assert.False(t, m.DrinkSheet.Visible())
	assert.Equal(t, drawer.Hidden, m.ShopSheet.State())
	assert.NotEqual(t, m.ShopSheet.ID(), m.DrinkSheet.ID())
}

func TestNew_RejectsInvalidSnapPoints(t *testing.T) {
	_, err := New(drawer.Options{SnapPoints: drawer.SnapPoints{Full: 1.5}})
	require.ErrorIs(t, err, drawer.ErrInvalidSnapPoints)
}

func TestEnter_OpensSelectedShopAtHalf(t *testing.T) {
	h := newTestApp(t)
	h.SendKey("j")

	msgs := h.SendSpecialKey(tea.KeyEnter)

	m := h.Model()
	assert.Equal(t, 1, m.Selected)
	assert.True(t, m.ShopSheet.Visible())
	assert.Equal(t, drawer.Half, m.ShopSheet.State())
	assert.Contains(t, msgs, drawer.StateChangedMsg{ID: m.ShopSheet.ID(), State: drawer.Half})
}

func TestSheetKeys_DoNotMoveList(t *testing.T) {
	h := newTestApp(t)
	h.SendSpecialKey(tea.KeyEnter)

	h.SendKey("k")

	m := h.Model()
	assert.Equal(t, drawer.Full, m.ShopSheet.State())
	assert.Equal(t, 0, m.Cursor.Pos())
}

func TestEsc_ClosesSheetAndOwnerHidesIt(t *testing.T) {
	h := newTestApp(t)
	h.SendSpecialKey(tea.KeyEnter)

	msgs := h.SendSpecialKey(tea.KeyEsc)
	closed := closedMsgs(msgs)
	require.Len(t, closed, 1)
	assert.Equal(t, h.Model().ShopSheet.ID(), closed[0].ID)
	assert.True(t, h.Model().ShopSheet.Visible(), "visibility is the owner's flag until it handles the close")

	h.Send(closed[0])

	assert.False(t, h.Model().ShopSheet.Visible())
	assert.Equal(t, drawer.Hidden, h.Model().ShopSheet.State())
}

func TestToggleDrinks_TwoStateSheet(t *testing.T) {
	h := newTestApp(t)

	h.SendKey("n")
	m := h.Model()
	require.True(t, m.DrinkSheet.Visible())
	assert.Equal(t, drawer.Full, m.DrinkSheet.State())
	assert.False(t, m.DrinkSheet.Table().HasHalf())

	// Collapsing a two-state sheet skips straight to hidden.
	msgs := h.SendKey("j")
	assert.Equal(t, drawer.Hidden, h.Model().DrinkSheet.State())
	require.Len(t, closedMsgs(msgs), 1)

	h.Send(closedMsgs(msgs)[0])
	assert.False(t, h.Model().DrinkSheet.Visible())
}

func TestToggleDrinks_SecondPressHides(t *testing.T) {
	h := newTestApp(t)
	h.SendKey("n")

	msgs := h.SendKey("n")

	assert.False(t, h.Model().DrinkSheet.Visible())
	assert.Len(t, closedMsgs(msgs), 1)
}

func TestListNavigation(t *testing.T) {
	h := newTestApp(t)

	h.SendKey("j")
	h.SendKey("j")
	assert.Equal(t, 2, h.Model().Cursor.Pos())

	h.SendKey("G")
	assert.Equal(t, len(h.Model().Shops)-1, h.Model().Cursor.Pos())

	h.SendKey("g")
	assert.Equal(t, 0, h.Model().Cursor.Pos())
}

func TestQuit(t *testing.T) {
	h := newTestApp(t)

	msgs := h.SendKey("q")

	assert.Contains(t, msgs, tea.QuitMsg{})
}

func TestHelp_ShowsAndCloses(t *testing.T) {
	h := newTestApp(t)

	h.SendKey("?")
	require.True(t, h.Model().ShowHelp)
	view := h.Model().View()
	assert.True(t, testutil.ContainsLine(view, "Keys"))
	assert.True(t, testutil.ContainsLine(view, "Expand sheet"))

	h.SendKey("x")
	assert.False(t, h.Model().ShowHelp)
}

func TestClickOnRow_OpensThatShop(t *testing.T) {
	h := newTestApp(t)

	h.Send(tea.MouseMsg{Y: 2 + 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	m := h.Model()
	assert.Equal(t, 3, m.Selected)
	assert.Equal(t, 3, m.Cursor.Pos())
	assert.True(t, m.ShopSheet.Visible())
}

func TestView_SheetOverList(t *testing.T) {
	h := newTestApp(t)
	assert.True(t, testutil.ContainsLine(h.Model().View(), "Tea shops nearby"))

	msgs := h.SendSpecialKey(tea.KeyEnter)
	h.Pump(msgs, isFrame, 600)

	m := h.Model()
	require.InDelta(t, m.ShopSheet.Table().Offset(drawer.Half), m.ShopSheet.Offset(), 0.001)

	require.Len(t, strings.Split(m.View(), "\n"), 40)
	assert.True(t, testutil.ContainsLine(m.View(), "Tea shops nearby"), "list stays visible above the sheet")
	assert.GreaterOrEqual(t, testutil.FindLine(m.View(), "Featured Items"), 20, "sheet content starts at the half snap point")
	assert.True(t, testutil.ContainsLine(m.View(), "OPEN"))
}

func TestOverlayTap_ClosesShopSheet(t *testing.T) {
	h := newTestApp(t)
	h.Pump(h.SendSpecialKey(tea.KeyEnter), isFrame, 600)

	msgs := h.Send(tea.MouseMsg{Y: 3, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})

	closed := closedMsgs(msgs)
	require.Len(t, closed, 1)
	h.Send(closed[0])
	assert.False(t, h.Model().ShopSheet.Visible())
	assert.Equal(t, 0, h.Model().Selected, "selection is kept for the next open")
}
