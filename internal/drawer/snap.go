// Package drawer implements a gesture-driven bottom sheet with hidden, half and
// full snap points, spring animation and a dimming overlay.
package drawer

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidSnapPoints is returned for fractions outside (0,1] or a half
	// fraction that does not reveal less than the full one.
	ErrInvalidSnapPoints = errors.New("invalid snap points")

	// ErrInvalidHeight is returned for a non-positive viewport height.
	ErrInvalidHeight = errors.New("invalid viewport height")
)

// SnapPoints holds the fractions of the viewport revealed by each open state.
// A nil Half makes the sheet two-state.
type SnapPoints struct {
	Half *float64
	Full float64
}

// Fraction returns a pointer to f, for building SnapPoints literals.
func Fraction(f float64) *float64 {
	return &f
}

// Validate checks 0 < Half < Full <= 1.
func (p SnapPoints) Validate() error {
	if p.Full <= 0 || p.Full > 1 {
		return errors.Wrapf(ErrInvalidSnapPoints, "full fraction %.3f not in (0,1]", p.Full)
	}
	if p.Half == nil {
		return nil
	}
	h := *p.Half
	if h <= 0 || h > 1 {
		return errors.Wrapf(ErrInvalidSnapPoints, "half fraction %.3f not in (0,1]", h)
	}
	if h >= p.Full {
		return errors.Wrapf(ErrInvalidSnapPoints, "half fraction %.3f must be below full fraction %.3f", h, p.Full)
	}
	return nil
}

// SnapTable maps each State to the offset of the sheet's top edge from the
// top of the viewport. Full < Half < Hidden.
type SnapTable struct {
	hidden  float64
	half    float64
	full    float64
	hasHalf bool
}

// NewSnapTable computes the snap offsets for a viewport of the given height.
func NewSnapTable(height float64, points SnapPoints) (SnapTable, error) {
	if height <= 0 {
		return SnapTable{}, errors.Wrapf(ErrInvalidHeight, "height %.1f", height)
	}
	if err := points.Validate(); err != nil {
		return SnapTable{}, err
	}
	t := SnapTable{
		hidden: height,
		full:   height - points.Full*height,
	}
	if points.Half != nil {
		t.half = height - *points.Half*height
		t.hasHalf = true
	}
	return t, nil
}

// HasHalf reports whether the half state is available.
func (t SnapTable) HasHalf() bool {
	return t.hasHalf
}

// Offset returns the resting offset for s. Half falls back to Full on a
// two-state table.
func (t SnapTable) Offset(s State) float64 {
	switch s {
	case Full:
		return t.full
	case Half:
		if t.hasHalf {
			return t.half
		}
		return t.full
	default:
		return t.hidden
	}
}

// Clamp limits offset to [Full, Hidden].
func (t SnapTable) Clamp(offset float64) float64 {
	return min(max(offset, t.full), t.hidden)
}

// Normalize maps Half onto Full when the table has no half state.
func (t SnapTable) Normalize(s State) State {
	if s == Half && !t.hasHalf {
		return Full
	}
	return s
}
