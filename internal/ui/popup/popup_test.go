package popup

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/drawer/internal/ui/testutil"
)

func TestDialog_RenderCentersBox(t *testing.T) {
	d := Dialog{Title: "Keys", Content: "q  quit\n?  help", Footer: "esc to close"}

	out := d.Render(40, 12)
	lines := strings.Split(out, "\n")

	if len(lines) != 12 {
		t.Fatalf("got %d lines, want 12", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 40 {
			t.Errorf("line %d width = %d, want 40", i, w)
		}
	}
	if !testutil.ContainsLine(out, "Keys") {
		t.Error("title missing")
	}
	if !testutil.ContainsLine(out, "q  quit") {
		t.Error("content missing")
	}
	if testutil.FindLine(out, "╭") <= 0 {
		t.Error("box should be vertically centred, not at the top")
	}
}

func TestDialog_TruncatesToTerminal(t *testing.T) {
	d := Dialog{Content: strings.Repeat("x", 80)}

	out := d.Render(30, 5)
	for i, line := range strings.Split(out, "\n") {
		if w := lipgloss.Width(line); w > 30 {
			t.Errorf("line %d width = %d, exceeds terminal", i, w)
		}
	}
	if !strings.Contains(testutil.StripANSI(out), "...") {
		t.Error("long content should be truncated")
	}
}
