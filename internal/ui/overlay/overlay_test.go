package overlay

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDim_ZeroOpacityIsIdentity(t *testing.T) {
	base := "hello\nworld"
	assert.Equal(t, base, Dim(base, 0, 10, 2))
}

func TestDim_FaintOverlayKeepsBaseStyling(t *testing.T) {
	base := "\x1b[7mselected\x1b[0m\nplain"
	for _, opacity := range []float64{0.001, 0.02, MinOpacity / 2} {
		assert.Equal(t, base, Dim(base, opacity, 10, 2), "opacity %v", opacity)
	}
	assert.NotEqual(t, base, Dim(base, MinOpacity, 10, 2))
}

func TestDim_KeepsTextAndGeometry(t *testing.T) {
	base := "hello\nworld"
	out := Dim(base, 1, 8, 3)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "hello   ", ansi.Strip(lines[0]))
	assert.Equal(t, "world   ", ansi.Strip(lines[1]))
	assert.Equal(t, "        ", ansi.Strip(lines[2]))
}

func TestDim_TruncatesWideLines(t *testing.T) {
	out := Dim("abcdefghij", 0.5, 4, 1)
	assert.Equal(t, "abcd", ansi.Strip(out))
}

func TestPlace(t *testing.T) {
	tests := []struct {
		name   string
		base   string
		layer  string
		row    int
		height int
		want   string
	}{
		{
			name:   "middle rows replaced",
			base:   "a\nb\nc\nd",
			layer:  "X\nY",
			row:    1,
			height: 4,
			want:   "a\nX\nY\nd",
		},
		{
			name:   "layer clipped at bottom",
			base:   "a\nb\nc",
			layer:  "X\nY\nZ",
			row:    2,
			height: 3,
			want:   "a\nb\nX",
		},
		{
			name:   "negative row skips leading layer lines",
			base:   "a\nb",
			layer:  "X\nY",
			row:    -1,
			height: 2,
			want:   "Y\nb",
		},
		{
			name:   "short base padded to height",
			base:   "a",
			layer:  "X",
			row:    2,
			height: 3,
			want:   "a\n\nX",
		},
		{
			name:   "row past height leaves base",
			base:   "a\nb",
			layer:  "X",
			row:    5,
			height: 2,
			want:   "a\nb",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Place(tt.base, tt.layer, tt.row, tt.height))
		})
	}
}
