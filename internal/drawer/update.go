package drawer

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/drawer/internal/keymap"
)

// Update handles resize, mouse, key and frame messages. Key messages are
// only consumed while the sheet is open; callers route keys here first and
// fall back to their own handling when handled is false.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	m, cmd, _ := m.update(msg)
	return m, cmd
}

// HandleKey is Update for key messages, reporting whether the key was used.
func (m Model) HandleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	return m.update(msg)
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd, bool) {
	m, cmd, handled := m.dispatch(msg)
	m.viewport.Height = m.bodyRows()
	return m, cmd, handled
}

func (m Model) dispatch(msg tea.Msg) (Model, tea.Cmd, bool) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil, false

	case FrameMsg:
		if msg.id != m.id || msg.tag != m.tag {
			return m, nil, false
		}
		if m.driver.Step() {
			return m, m.tick(m.id, m.tag), true
		}
		return m, nil, true

	case tea.MouseMsg:
		cmd, handled := m.handleMouse(msg)
		return m, cmd, handled

	case tea.KeyMsg:
		cmd, handled := m.handleKey(msg)
		return m, cmd, handled
	}
	return m, nil, false
}

func (m *Model) handleMouse(msg tea.MouseMsg) (tea.Cmd, bool) {
	if !m.opts.EnableGestures {
		return nil, false
	}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown {
			return m.scroll(msg)
		}
		if msg.Button != tea.MouseButtonLeft || !m.onHandle(msg.Y) {
			return nil, m.overSheet(msg.Y)
		}
		s := Begin(m.driver.Offset(), m.driver.State())
		m.session = &s
		m.pressRow = msg.Y
		m.tracker.Reset()
		m.tracker.Add(m.now(), m.rowToPx(msg.Y))
		return nil, true

	case tea.MouseActionMotion:
		if m.session == nil {
			return nil, false
		}
		dy := m.rowToPx(msg.Y - m.pressRow)
		m.driver.Follow(Track(*m.session, m.driver.Table(), dy))
		m.tracker.Add(m.now(), m.rowToPx(msg.Y))
		return nil, true

	case tea.MouseActionRelease:
		if m.session != nil {
			dy := m.rowToPx(msg.Y - m.pressRow)
			m.tracker.Add(m.now(), m.rowToPx(msg.Y))
			target := Resolve(*m.session, m.driver.Table(), m.driver.Offset(), dy, m.tracker.Velocity())
			m.session = nil
			m.tracker.Reset()
			return m.animateTo(target, true), true
		}
		if m.driver.OverlayInteractive() && msg.Y < m.topRow() {
			return m.animateTo(Hidden, true), true
		}
		return nil, m.overSheet(msg.Y)
	}
	return nil, false
}

func (m *Model) scroll(msg tea.MouseMsg) (tea.Cmd, bool) {
	if !m.overSheet(msg.Y) {
		return nil, false
	}
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return cmd, true
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	if !m.Open() || !m.opts.EnableGestures {
		return nil, false
	}

	switch m.keys.Resolve(msg.String()) {
	case keymap.ActionSheetExpand:
		if m.driver.State() == Half {
			return m.animateTo(Full, true), true
		}
		return nil, true
	case keymap.ActionSheetCollapse:
		if m.driver.State() == Full && m.driver.Table().HasHalf() {
			return m.animateTo(Half, true), true
		}
		return m.animateTo(Hidden, true), true
	case keymap.ActionSheetClose:
		return m.animateTo(Hidden, true), true
	case keymap.ActionSheetPageUp, keymap.ActionSheetPageDown:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return cmd, true
	}
	return nil, false
}

// onHandle reports whether row y is the grab area: the top border carrying
// the handle and the row below it.
func (m Model) onHandle(y int) bool {
	if !m.driver.OverlayInteractive() {
		return false
	}
	top := m.topRow()
	return y == top || y == top+1
}

func (m Model) overSheet(y int) bool {
	return m.driver.OverlayInteractive() && y >= m.topRow() && y < m.height
}
