package drawer

import (
	"math"

	"github.com/charmbracelet/harmonica"
)

// Spring parameters for a unit mass: no overshoot, modal-sheet feel.
const (
	SpringStiffness = 90.0
	SpringDamping   = 20.0

	// FrameRate is the number of spring steps per second.
	FrameRate = 60

	settleOffset   = 0.5 // px
	settleVelocity = 5.0 // px/s
)

// Transition reports the side effects of AnimateTo.
type Transition struct {
	State   State
	Changed bool // recorded state differs from before
	Haptic  bool // a pulse should fire
	Closed  bool // the sheet just transitioned into Hidden
}

// Driver owns the animated offset and the recorded state. The state changes
// when an animation starts, not when it settles.
type Driver struct {
	table     SnapTable
	spring    harmonica.Spring
	offset    float64
	velocity  float64
	state     State
	animating bool
}

// NewDriver returns a driver resting at Hidden.
func NewDriver(table SnapTable) *Driver {
	omega := math.Sqrt(SpringStiffness)
	zeta := SpringDamping / (2 * math.Sqrt(SpringStiffness))
	return &Driver{
		table:  table,
		spring: harmonica.NewSpring(harmonica.FPS(FrameRate), omega, zeta),
		offset: table.Offset(Hidden),
		state:  Hidden,
	}
}

// Table returns the active snap table.
func (d *Driver) Table() SnapTable { return d.table }

// SetTable swaps the snap table after a resize or reconfiguration. A resting
// sheet jumps to its state's new offset; a moving one retargets.
func (d *Driver) SetTable(t SnapTable) {
	d.table = t
	d.state = t.Normalize(d.state)
	if !d.animating {
		d.offset = t.Offset(d.state)
		d.velocity = 0
		return
	}
	d.offset = t.Clamp(d.offset)
}

// Offset returns the current offset of the sheet's top edge.
func (d *Driver) Offset() float64 { return d.offset }

// State returns the recorded state.
func (d *Driver) State() State { return d.state }

// Animating reports whether the spring is still moving.
func (d *Driver) Animating() bool { return d.animating }

// Follow writes a gesture-tracked offset directly, stopping any spring.
func (d *Driver) Follow(offset float64) {
	d.offset = d.table.Clamp(offset)
	d.velocity = 0
	d.animating = false
}

// AnimateTo starts a spring toward target. Haptic is only reported when the
// recorded state changes and withHaptic is set.
func (d *Driver) AnimateTo(target State, withHaptic bool) Transition {
	target = d.table.Normalize(target)
	d.animating = true

	tr := Transition{State: target}
	if d.state != target {
		d.state = target
		tr.Changed = true
		tr.Haptic = withHaptic
		tr.Closed = target == Hidden
	}
	return tr
}

// Step advances the spring by one frame. It returns false once the sheet has
// settled on its target.
func (d *Driver) Step() bool {
	if !d.animating {
		return false
	}
	goal := d.table.Offset(d.state)
	d.offset, d.velocity = d.spring.Update(d.offset, d.velocity, goal)
	if math.Abs(d.offset-goal) < settleOffset && math.Abs(d.velocity) < settleVelocity {
		d.offset = goal
		d.velocity = 0
		d.animating = false
		return false
	}
	return true
}

// Reset stops the spring where it is.
func (d *Driver) Reset() {
	d.velocity = 0
	d.animating = false
}

// Opacity is 1 at Full and 0 at Hidden, linear in between.
func (d *Driver) Opacity() float64 {
	full, hidden := d.table.Offset(Full), d.table.Offset(Hidden)
	span := hidden - full
	if span <= 0 {
		return 0
	}
	o := 1 - (d.offset-full)/span
	return min(max(o, 0), 1)
}

// OverlayInteractive reports whether the overlay should receive taps.
func (d *Driver) OverlayInteractive() bool {
	return d.offset < d.table.Offset(Hidden)
}
