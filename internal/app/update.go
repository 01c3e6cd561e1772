// internal/app/update.go
package app

import (
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/drawer"
	"github.com/llehouerou/drawer/internal/keymap"
	"github.com/llehouerou/drawer/internal/ui"
)

// Update handles messages and returns updated model and commands.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg)

	case drawer.FrameMsg:
		return m.updateSheets(msg)

	case drawer.StateChangedMsg:
		log.Printf("app: sheet %d is now %s", msg.ID, msg.State)
		return m, nil

	case drawer.ClosedMsg:
		return m.handleSheetClosed(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleWindowSize(msg tea.WindowSizeMsg) (Model, tea.Cmd) {
	m.Width = msg.Width
	m.Height = msg.Height
	m, cmd := m.updateSheets(msg)
	m.refreshContent()
	m.Cursor.EnsureVisible(len(m.Shops), m.listHeight())
	return m, cmd
}

// updateSheets forwards msg to both sheets; each ignores what is not its own.
func (m Model) updateSheets(msg tea.Msg) (Model, tea.Cmd) {
	var shopCmd, drinkCmd tea.Cmd
	m.ShopSheet, shopCmd = m.ShopSheet.Update(msg)
	m.DrinkSheet, drinkCmd = m.DrinkSheet.Update(msg)
	return m, tea.Batch(shopCmd, drinkCmd)
}

// handleSheetClosed drops the visibility flag of a sheet the user dismissed.
func (m Model) handleSheetClosed(msg drawer.ClosedMsg) (Model, tea.Cmd) {
	switch msg.ID {
	case m.ShopSheet.ID():
		return m, m.ShopSheet.SetVisible(false)
	case m.DrinkSheet.ID():
		return m, m.DrinkSheet.SetVisible(false)
	}
	return m, nil
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	if m.ShowHelp {
		return m, nil
	}
	if sheet := m.activeSheet(); sheet != nil {
		var cmd tea.Cmd
		*sheet, cmd = sheet.Update(msg)
		return m, cmd
	}

	switch {
	case msg.Button == tea.MouseButtonWheelDown:
		m.Cursor.Move(1, len(m.Shops), m.listHeight())
	case msg.Button == tea.MouseButtonWheelUp:
		m.Cursor.Move(-1, len(m.Shops), m.listHeight())
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionRelease:
		row := msg.Y - ui.HeaderHeight
		if row < 0 || row >= m.listHeight() {
			return m, nil
		}
		i := m.Cursor.Offset() + row
		if i >= len(m.Shops) {
			return m, nil
		}
		m.Cursor.Move(i-m.Cursor.Pos(), len(m.Shops), m.listHeight())
		return m, m.openShop(i)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.ShowHelp {
		switch m.keys.Resolve(msg.String()) {
		case keymap.ActionQuit:
			return m, tea.Quit
		default:
			m.ShowHelp = false
			return m, nil
		}
	}

	if sheet := m.activeSheet(); sheet != nil {
		s, cmd, handled := sheet.HandleKey(msg)
		*sheet = s
		if handled {
			return m, cmd
		}
	}

	action := m.keys.Resolve(msg.String())
	switch action {
	case keymap.ActionQuit:
		return m, tea.Quit
	case keymap.ActionHelp:
		m.ShowHelp = true
		return m, nil
	case keymap.ActionToggleDrinks:
		return m, m.toggleDrinks()
	case keymap.ActionSelect:
		if m.activeSheet() != nil {
			return m, nil
		}
		return m, m.openShop(m.Cursor.Pos())
	}

	if m.activeSheet() == nil {
		m.Cursor.HandleAction(action, len(m.Shops), m.listHeight())
	}
	return m, nil
}
