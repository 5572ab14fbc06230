package render

import (
	"strings"
	"testing"

	"github.com/lixenwraith/vi-snake/engine"
)

// TestApplyCellWritesGlyph verifies single-cell and string writes
func TestApplyCellWritesGlyph(t *testing.T) {
	g := NewGrid()

	g.ApplyCell(engine.Position{Row: 10, Col: 20}, "*")
	if g.Rows()[10][20] != '*' {
		t.Error("Expected food glyph at (10,20)")
	}

	g.ApplyCell(engine.Position{Row: 0, Col: 2}, "Score : 0 ")
	line := string(g.Rows()[0])
	if !strings.Contains(line, "Score : 0") {
		t.Errorf("Expected score text in status row, got %q", line)
	}
}

// TestApplyCellClipsAtEdge verifies writes past the right edge are
// dropped instead of wrapping
func TestApplyCellClipsAtEdge(t *testing.T) {
	g := NewGrid()

	g.ApplyCell(engine.Position{Row: 5, Col: 57}, "abc")
	rows := g.Rows()
	if rows[5][57] != 'a' || rows[5][58] != 'b' {
		t.Error("Expected in-range part of the write to land")
	}
	if rows[6][0] != ' ' {
		t.Error("Expected clipped write not to wrap to the next row")
	}

	g.ApplyCell(engine.Position{Row: 19, Col: 0}, "x") // off-board row
	g.ApplyCell(engine.Position{Row: -1, Col: 0}, "x")
}

// TestSeedPaintsInitialBoard verifies the pre-loop board contents
func TestSeedPaintsInitialBoard(t *testing.T) {
	g := NewGrid()
	g.Seed(engine.NewGameState().Snapshot())

	rows := g.Rows()
	if rows[10][20] != '*' {
		t.Error("Expected initial food at (10,20)")
	}
	for _, col := range []int{10, 9, 8} {
		if rows[4][col] != '#' {
			t.Errorf("Expected snake segment at (4,%d)", col)
		}
	}
	status := string(rows[0])
	if !strings.Contains(status, "Score : 0") {
		t.Errorf("Expected score in status row, got %q", status)
	}
	if !strings.Contains(status, "PAUSE(space)") {
		t.Errorf("Expected help text in status row, got %q", status)
	}
}

// TestRenderGameOverShowsExactlyTwoLines verifies the end screen
// replaces the whole board with the summary
func TestRenderGameOverShowsExactlyTwoLines(t *testing.T) {
	g := NewGrid()
	g.Seed(engine.NewGameState().Snapshot())

	g.RenderGameOver(7)

	lines := g.Lines()
	if len(lines) != 2 {
		t.Fatalf("Expected exactly 2 visible lines, got %d: %q", len(lines), lines)
	}
	if lines[0] != "Score - 7" {
		t.Errorf("Expected score line %q, got %q", "Score - 7", lines[0])
	}
	if lines[1] != "http://bitemelater.in" {
		t.Errorf("Expected attribution line, got %q", lines[1])
	}
}
