package drawer

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

var lastID int64

func nextID() int {
	return int(atomic.AddInt64(&lastID, 1))
}

// FrameMsg advances the spring of the drawer with the matching id. Frames
// carrying an old tag belong to a superseded animation and are dropped.
type FrameMsg struct {
	id  int
	tag int
}

// StateChangedMsg is sent whenever the sheet commits to a new state.
type StateChangedMsg struct {
	ID    int
	State State
}

// ClosedMsg is sent once per transition into Hidden. The owner is expected
// to clear its visibility flag in response.
type ClosedMsg struct {
	ID int
}

func frame(id, tag int) tea.Cmd {
	return tea.Tick(time.Second/FrameRate, func(time.Time) tea.Msg {
		return FrameMsg{id: id, tag: tag}
	})
}

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}
