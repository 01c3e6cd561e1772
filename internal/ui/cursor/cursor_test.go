package cursor

import (
	"testing"

	"github.com/llehouerou/drawer/internal/keymap"
)

func TestMove(t *testing.T) {
	tests := []struct {
		name       string
		margin     int
		initial    int
		delta      int
		len        int
		height     int
		wantPos    int
		wantOffset int
	}{
		{"down within bounds", 2, 0, 1, 10, 5, 1, 0},
		{"down scrolls with margin", 2, 0, 3, 10, 5, 3, 1},
		{"up clamps to zero", 2, 2, -5, 10, 5, 0, 0},
		{"down clamps to last", 2, 5, 15, 10, 5, 9, 5},
		{"margin larger than half the height", 10, 0, 2, 10, 3, 2, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(tt.margin)
			c.pos = tt.initial
			c.Move(tt.delta, tt.len, tt.height)
			if c.Pos() != tt.wantPos {
				t.Errorf("pos = %d, want %d", c.Pos(), tt.wantPos)
			}
			if c.Offset() != tt.wantOffset {
				t.Errorf("offset = %d, want %d", c.Offset(), tt.wantOffset)
			}
		})
	}
}

func TestMoveEmptyList(t *testing.T) {
	c := New(2)
	c.Move(1, 0, 5)
	c.JumpEnd(0, 5)
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("empty list moved cursor to %d/%d", c.Pos(), c.Offset())
	}
}

func TestJumpStartAndEnd(t *testing.T) {
	c := New(1)
	c.JumpEnd(20, 6)
	if c.Pos() != 19 || c.Offset() != 14 {
		t.Errorf("JumpEnd = %d/%d, want 19/14", c.Pos(), c.Offset())
	}
	c.JumpStart()
	if c.Pos() != 0 || c.Offset() != 0 {
		t.Errorf("JumpStart = %d/%d, want 0/0", c.Pos(), c.Offset())
	}
}

func TestEnsureVisible_AfterShrink(t *testing.T) {
	c := New(0)
	c.JumpEnd(10, 2)
	c.EnsureVisible(10, 8)
	if c.Offset() != 2 {
		t.Errorf("offset = %d, want 2", c.Offset())
	}
}

func TestVisibleRange(t *testing.T) {
	c := New(0)
	c.Move(7, 10, 4)
	start, end := c.VisibleRange(10, 4)
	if start != 4 || end != 8 {
		t.Errorf("VisibleRange = [%d,%d), want [4,8)", start, end)
	}

	start, end = New(0).VisibleRange(3, 10)
	if start != 0 || end != 3 {
		t.Errorf("short list VisibleRange = [%d,%d), want [0,3)", start, end)
	}

	start, end = c.VisibleRange(0, 4)
	if start != 0 || end != 0 {
		t.Errorf("empty VisibleRange = [%d,%d)", start, end)
	}
}

func TestHandleAction(t *testing.T) {
	c := New(0)
	if !c.HandleAction(keymap.ActionMoveDown, 4, 4) || c.Pos() != 1 {
		t.Fatalf("move down: pos = %d", c.Pos())
	}
	if !c.HandleAction(keymap.ActionJumpEnd, 4, 4) || c.Pos() != 3 {
		t.Fatalf("jump end: pos = %d", c.Pos())
	}
	if !c.HandleAction(keymap.ActionMoveUp, 4, 4) || c.Pos() != 2 {
		t.Fatalf("move up: pos = %d", c.Pos())
	}
	if !c.HandleAction(keymap.ActionJumpStart, 4, 4) || c.Pos() != 0 {
		t.Fatalf("jump start: pos = %d", c.Pos())
	}
	if c.HandleAction(keymap.ActionSelect, 4, 4) {
		t.Error("select should not be a cursor action")
	}
}
