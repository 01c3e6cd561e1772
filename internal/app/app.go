// internal/app/app.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/llehouerou/drawer/internal/drawer"
	"github.com/llehouerou/drawer/internal/keymap"
	"github.com/llehouerou/drawer/internal/shop"
	"github.com/llehouerou/drawer/internal/ui"
	"github.com/llehouerou/drawer/internal/ui/cursor"
)

// drinkLogFull is the viewport fraction revealed by the drink log sheet.
const drinkLogFull = 0.6

// Model is the root application model: a shop list with a shop sheet and a
// drink log sheet drawn over it.
type Model struct {
	Shops      []shop.Shop
	Drinks     []shop.Drink
	Cursor     cursor.Cursor
	ShopSheet  drawer.Model
	DrinkSheet drawer.Model
	Selected   int // shop shown in ShopSheet, -1 before the first open
	ShowHelp   bool
	Width      int
	Height     int

	keys *keymap.Resolver
	now  func() time.Time
}

// New builds the application. opts configures the shop sheet; the drink log
// sheet shares its gesture, haptic and cell settings but is two-state.
func New(opts drawer.Options) (Model, error) {
	shopSheet, err := drawer.New(opts)
	if err != nil {
		return Model{}, errors.Wrap(err, "shop sheet")
	}

	drinkOpts := opts
	drinkOpts.InitialState = drawer.Full
	drinkOpts.SnapPoints = drawer.SnapPoints{Full: drinkLogFull}
	drinkSheet, err := drawer.New(drinkOpts)
	if err != nil {
		return Model{}, errors.Wrap(err, "drink log sheet")
	}

	now := time.Now

	return Model{
		Shops:      shop.Catalog(),
		Drinks:     shop.DrinkLog(now()),
		Cursor:     cursor.New(ui.ScrollMargin),
		ShopSheet:  shopSheet,
		DrinkSheet: drinkSheet,
		Selected:   -1,
		keys:       keymap.NewResolver(keymap.All, keymap.ContextGlobal, keymap.ContextList),
		now:        now,
	}, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) listHeight() int {
	return max(m.Height-ui.HeaderHeight-ui.FooterHeight, 0)
}

// activeSheet returns the topmost visible sheet, which receives input.
func (m *Model) activeSheet() *drawer.Model {
	switch {
	case m.DrinkSheet.Visible():
		return &m.DrinkSheet
	case m.ShopSheet.Visible():
		return &m.ShopSheet
	}
	return nil
}

// openShop shows shop i in the shop sheet. When the sheet is already up only
// its content changes.
func (m *Model) openShop(i int) tea.Cmd {
	if i < 0 || i >= len(m.Shops) {
		return nil
	}
	m.Selected = i
	m.ShopSheet.SetContent(shop.Render(m.Shops[i], m.ShopSheet.ContentWidth()))
	return m.ShopSheet.SetVisible(true)
}

func (m *Model) toggleDrinks() tea.Cmd {
	if m.DrinkSheet.Visible() {
		return m.DrinkSheet.SetVisible(false)
	}
	m.refreshDrinks()
	return m.DrinkSheet.SetVisible(true)
}

func (m *Model) refreshDrinks() {
	m.DrinkSheet.SetContent(shop.RenderDrinkLog(m.Drinks, m.DrinkSheet.ContentWidth(), m.now()))
}

// refreshContent re-renders sheet content after a width change.
func (m *Model) refreshContent() {
	if m.Selected >= 0 {
		m.ShopSheet.SetContent(shop.Render(m.Shops[m.Selected], m.ShopSheet.ContentWidth()))
	}
	m.refreshDrinks()
}
