package drawer

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSnapTable_Offsets(t *testing.T) {
	table, err := NewSnapTable(1000, SnapPoints{Half: Fraction(0.5), Full: 0.9})
	require.NoError(t, err)

	assert.True(t, table.HasHalf())
	assert.InDelta(t, 1000, table.Offset(Hidden), 1e-9)
	assert.InDelta(t, 500, table.Offset(Half), 1e-9)
	assert.InDelta(t, 100, table.Offset(Full), 1e-9)
}

func TestNewSnapTable_Ordering(t *testing.T) {
	heights := []float64{1, 16, 24 * 16, 900, 2160}
	fractions := []float64{0.05, 0.25, 0.5, 0.75, 0.9, 1}

	for _, h := range heights {
		for _, full := range fractions {
			for _, half := range fractions {
				if half >= full {
					continue
				}
				name := fmt.Sprintf("h=%v half=%v full=%v", h, half, full)
				t.Run(name, func(t *testing.T) {
					table, err := NewSnapTable(h, SnapPoints{Half: Fraction(half), Full: full})
					require.NoError(t, err)
					assert.LessOrEqual(t, table.Offset(Full), table.Offset(Half))
					assert.LessOrEqual(t, table.Offset(Half), table.Offset(Hidden))
					assert.InDelta(t, h, table.Offset(Hidden), 1e-9)
				})
			}
		}
	}
}

func TestNewSnapTable_TwoState(t *testing.T) {
	table, err := NewSnapTable(800, SnapPoints{Full: 0.6})
	require.NoError(t, err)

	assert.False(t, table.HasHalf())
	assert.Equal(t, table.Offset(Full), table.Offset(Half), "half falls back to full")
	assert.Equal(t, Full, table.Normalize(Half))
	assert.Equal(t, Hidden, table.Normalize(Hidden))
	assert.InDelta(t, 320, table.Offset(Full), 1e-9)
}

func TestNewSnapTable_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name   string
		height float64
		points SnapPoints
		want   error
	}{
		{"zero height", 0, SnapPoints{Full: 0.9}, ErrInvalidHeight},
		{"negative height", -10, SnapPoints{Full: 0.9}, ErrInvalidHeight},
		{"missing full", 800, SnapPoints{}, ErrInvalidSnapPoints},
		{"full above one", 800, SnapPoints{Full: 1.2}, ErrInvalidSnapPoints},
		{"negative full", 800, SnapPoints{Full: -0.5}, ErrInvalidSnapPoints},
		{"zero half", 800, SnapPoints{Half: Fraction(0), Full: 0.9}, ErrInvalidSnapPoints},
		{"half equals full", 800, SnapPoints{Half: Fraction(0.9), Full: 0.9}, ErrInvalidSnapPoints},
		{"half above full", 800, SnapPoints{Half: Fraction(0.95), Full: 0.5}, ErrInvalidSnapPoints},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSnapTable(tt.height, tt.points)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestSnapTable_Clamp(t *testing.T) {
	table, err := NewSnapTable(1000, SnapPoints{Half: Fraction(0.5), Full: 0.9})
	require.NoError(t, err)

	assert.InDelta(t, 100, table.Clamp(-500), 1e-9)
	assert.InDelta(t, 1000, table.Clamp(5000), 1e-9)
	assert.InDelta(t, 420, table.Clamp(420), 1e-9)
}

func TestParseState(t *testing.T) {
	for _, s := range []State{Hidden, Half, Full} {
		got, ok := ParseState(s.String())
		assert.True(t, ok)
		assert.Equal(t, s, got)
	}
	_, ok := ParseState("quarter")
	assert.False(t, ok)
}
