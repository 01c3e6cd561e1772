package drawer

import (
	"math"
	"time"
)

const (
	// VelocityThreshold is the release speed, in px/s, above which the flick
	// direction alone decides the target state.
	VelocityThreshold = 500

	// SnapThreshold is the drag distance, in px, above which the drag
	// direction overrides the nearest snap point.
	SnapThreshold = 100
)

// Session is the snapshot taken when a drag starts. It is read, never
// written, until the drag ends.
type Session struct {
	StartOffset float64
	StartState  State
}

// Begin opens a drag session at the current offset and state.
func Begin(offset float64, state State) Session {
	return Session{StartOffset: offset, StartState: state}
}

// Track returns the live offset for a cumulative translation dy, clamped to
// the table's range.
func Track(s Session, t SnapTable, dy float64) float64 {
	return t.Clamp(s.StartOffset + dy)
}

// Resolve picks the state to settle into when the drag ends at offset current
// after a cumulative translation dy with release velocity v (positive is
// downward).
func Resolve(s Session, t SnapTable, current, dy, v float64) State {
	if math.Abs(v) > VelocityThreshold {
		return resolveFlick(s, t, v)
	}

	target := nearest(t, current)

	// The drag direction wins over the nearest point once past the threshold.
	if math.Abs(dy) > SnapThreshold {
		switch {
		case dy > 0 && s.StartState == Full:
			target = Hidden
			if t.HasHalf() {
				target = Half
			}
		case dy > 0 && s.StartState == Half:
			target = Hidden
		case dy < 0 && s.StartState == Half:
			target = Full
		}
	}
	return t.Normalize(target)
}

func resolveFlick(s Session, t SnapTable, v float64) State {
	if v > 0 {
		if s.StartState == Full && t.HasHalf() {
			return Half
		}
		return Hidden
	}
	if s.StartState == Half || !t.HasHalf() {
		return Full
	}
	return Half
}

func nearest(t SnapTable, current float64) State {
	full, hidden := t.Offset(Full), t.Offset(Hidden)
	if !t.HasHalf() {
		if current < (full+hidden)/2 {
			return Full
		}
		return Hidden
	}
	half := t.Offset(Half)
	switch {
	case current < (full+half)/2:
		return Full
	case current < (half+hidden)/2:
		return Half
	default:
		return Hidden
	}
}

// velocityWindow bounds how far back release velocity looks.
const velocityWindow = 100 * time.Millisecond

type sample struct {
	at time.Time
	y  float64
}

// VelocityTracker estimates release velocity from timestamped positions.
// Terminal mouse events carry no velocity of their own.
type VelocityTracker struct {
	samples []sample
}

// Reset drops all samples.
func (v *VelocityTracker) Reset() {
	v.samples = v.samples[:0]
}

// Add records position y (px) at time at.
func (v *VelocityTracker) Add(at time.Time, y float64) {
	v.samples = append(v.samples, sample{at: at, y: y})
	cutoff := at.Add(-velocityWindow)
	i := 0
	for i < len(v.samples)-1 && v.samples[i].at.Before(cutoff) {
		i++
	}
	if i > 0 {
		v.samples = append(v.samples[:0], v.samples[i:]...)
	}
}

// Velocity returns px/s across the retained window, or 0 with fewer than two
// samples.
func (v *VelocityTracker) Velocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}
	first, last := v.samples[0], v.samples[len(v.samples)-1]
	dt := last.at.Sub(first.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.y - first.y) / dt
}
