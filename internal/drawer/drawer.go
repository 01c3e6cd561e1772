package drawer

import (
	"log"
	"math"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/llehouerou/drawer/internal/errmsg"
	"github.com/llehouerou/drawer/internal/haptic"
	"github.com/llehouerou/drawer/internal/keymap"
)

// DefaultCellHeight is the assumed pixel height of one terminal row.
const DefaultCellHeight = 16

// ErrInvalidInitialState is returned when the initial state is not Half or Full.
var ErrInvalidInitialState = errors.New("initial state must be half or full")

// Options configures a drawer.
type Options struct {
	// InitialState is the state opened into. Hidden means Half when the
	// table has one, else Full.
	InitialState   State
	SnapPoints     SnapPoints
	EnableGestures bool
	EnableHaptics  bool
	// CellHeight converts rows to pixels. Zero uses DefaultCellHeight.
	CellHeight float64
	// Pulser fires haptic pulses. Nil disables them.
	Pulser haptic.Pulser
}

// Model is a bottom sheet controlled by a visibility flag. It renders over a
// caller-supplied base view.
type Model struct {
	id   int
	tag  int
	opts Options

	driver   *Driver
	viewport viewport.Model
	keys     *keymap.Resolver

	width   int
	height  int
	visible bool

	session  *Session
	pressRow int
	tracker  VelocityTracker
	now      func() time.Time
	tick     func(id, tag int) tea.Cmd
}

// New validates opts and returns a hidden drawer.
func New(opts Options) (Model, error) {
	if opts.InitialState < Hidden || opts.InitialState > Full {
		return Model{}, errors.Wrapf(ErrInvalidInitialState, "got %d", opts.InitialState)
	}
	if opts.CellHeight <= 0 {
		opts.CellHeight = DefaultCellHeight
	}
	if opts.Pulser == nil {
		opts.Pulser = haptic.Nop{}
	}
	table, err := NewSnapTable(opts.CellHeight, opts.SnapPoints)
	if err != nil {
		return Model{}, err
	}

	vp := viewport.New(0, 0)
	vp.KeyMap = viewport.KeyMap{
		PageDown: key.NewBinding(key.WithKeys("pgdown")),
		PageUp:   key.NewBinding(key.WithKeys("pgup")),
	}

	return Model{
		id:       nextID(),
		opts:     opts,
		driver:   NewDriver(table),
		viewport: vp,
		keys:     keymap.ForContext(keymap.ContextSheet),
		height:   1,
		now:      time.Now,
		tick:     frame,
	}, nil
}

// ID identifies this drawer in emitted messages.
func (m Model) ID() int { return m.id }

// State returns the committed state.
func (m Model) State() State { return m.driver.State() }

// Offset returns the current offset of the sheet's top edge in pixels.
func (m Model) Offset() float64 { return m.driver.Offset() }

// Table returns the active snap table.
func (m Model) Table() SnapTable { return m.driver.Table() }

// Visible returns the last visibility flag set by the owner.
func (m Model) Visible() bool { return m.visible }

// Open reports whether the sheet is committed to a non-hidden state.
func (m Model) Open() bool { return m.driver.State() != Hidden }

// Dragging reports whether a drag session is active.
func (m Model) Dragging() bool { return m.session != nil }

// Opacity returns the overlay opacity.
func (m Model) Opacity() float64 { return m.driver.Opacity() }

// SetSize rebuilds the snap table for a terminal of the given size. A drag in
// progress is abandoned when the table changes.
func (m *Model) SetSize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	m.width = width
	m.height = height
	table, err := NewSnapTable(float64(height)*m.opts.CellHeight, m.opts.SnapPoints)
	if err != nil {
		// Snap points were validated in New; only the height can be off here.
		log.Printf("drawer: resize to %dx%d: %v", width, height, err)
		return
	}
	if table != m.driver.Table() {
		// A drag session is measured in the old table's pixels.
		m.session = nil
		m.tracker.Reset()
	}
	m.driver.SetTable(table)
	m.viewport.Width = m.ContentWidth()
}

// ContentWidth is the width available to child content.
func (m Model) ContentWidth() int {
	return max(m.width-sheetChromeWidth, 0)
}

// SetContent swaps the child content without touching animation state.
func (m *Model) SetContent(content string) {
	m.viewport.SetContent(content)
}

// SetVisible applies the owner's visibility flag. Showing opens into the
// initial state with haptics; hiding closes without them.
func (m *Model) SetVisible(visible bool) tea.Cmd {
	if visible == m.visible {
		return nil
	}
	m.visible = visible
	if visible {
		m.viewport.GotoTop()
		return m.animateTo(m.initialState(), true)
	}
	m.session = nil
	return m.animateTo(Hidden, false)
}

// Unmount discards any drag and in-flight animation. No ClosedMsg is sent.
func (m *Model) Unmount() {
	m.session = nil
	m.tracker.Reset()
	m.driver.Reset()
	m.tag++
}

func (m Model) initialState() State {
	if m.opts.InitialState == Hidden {
		return m.driver.Table().Normalize(Half)
	}
	return m.driver.Table().Normalize(m.opts.InitialState)
}

// animateTo starts a spring to target and returns the frame, haptic and
// notification commands it implies.
func (m *Model) animateTo(target State, withHaptic bool) tea.Cmd {
	tr := m.driver.AnimateTo(target, withHaptic && m.opts.EnableHaptics)

	m.tag++
	cmds := []tea.Cmd{m.tick(m.id, m.tag)}
	if tr.Haptic {
		cmds = append(cmds, m.pulse())
	}

	var notes []tea.Cmd
	if tr.Changed {
		notes = append(notes, emit(StateChangedMsg{ID: m.id, State: tr.State}))
	}
	if tr.Closed {
		notes = append(notes, emit(ClosedMsg{ID: m.id}))
	}
	if len(notes) > 0 {
		cmds = append(cmds, tea.Sequence(notes...))
	}
	return tea.Batch(cmds...)
}

func (m Model) pulse() tea.Cmd {
	p := m.opts.Pulser
	return func() tea.Msg {
		if err := p.Pulse(); err != nil {
			log.Print(errmsg.Format(errmsg.OpHapticPulse, err))
		}
		return nil
	}
}

func (m Model) rowToPx(row int) float64 {
	return float64(row) * m.opts.CellHeight
}

// topRow is the terminal row of the sheet's top edge.
func (m Model) topRow() int {
	return int(math.Round(m.driver.Offset() / m.opts.CellHeight))
}
