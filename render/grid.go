package render

import (
	"strconv"
	"strings"
	"sync"

	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/parameter"
)

// Grid is the character surface the simulation writes into: BoardHeight
// rows by BoardWidth cells. It carries its own small lock so the engine
// mutex is never held while rendering; a slow paint cannot stall a tick.
type Grid struct {
	mu    sync.Mutex
	cells [parameter.BoardHeight][parameter.BoardWidth]rune
}

// NewGrid returns a blank grid
func NewGrid() *Grid {
	g := &Grid{}
	g.clearLocked()
	return g
}

func (g *Grid) clearLocked() {
	for row := range g.cells {
		for col := range g.cells[row] {
			g.cells[row][col] = ' '
		}
	}
}

// ApplyCell splices text into the grid starting at pos. Writes past
// the right edge are clipped; out-of-range rows are dropped.
func (g *Grid) ApplyCell(pos engine.Position, text string) {
	if pos.Row < 0 || pos.Row >= parameter.BoardHeight {
		return
	}
	g.mu.Lock()
	col := pos.Col
	for _, r := range text {
		if col < 0 || col >= parameter.BoardWidth {
			break
		}
		g.cells[pos.Row][col] = r
		col++
	}
	g.mu.Unlock()
}

// Seed paints the initial board from a state snapshot: the food cell,
// every snake segment and the status line. Called once before the loop
// starts; after that the loop's incremental updates keep the grid
// current.
func (g *Grid) Seed(snap engine.Snapshot) {
	g.ApplyCell(snap.Food, parameter.FoodGlyph)
	for _, seg := range snap.Snake {
		g.ApplyCell(seg, parameter.HeadGlyph)
	}
	g.ApplyCell(engine.Position{Row: 0, Col: parameter.StatusScoreCol},
		"Score : "+strconv.Itoa(snap.Score)+" ")
	g.ApplyCell(engine.Position{Row: 0, Col: parameter.StatusHelpCol},
		parameter.StatusHelpText)
}

// RenderGameOver replaces the board with the end-of-game summary:
// the final score and the attribution line.
func (g *Grid) RenderGameOver(score int) {
	g.mu.Lock()
	g.clearLocked()
	g.mu.Unlock()
	g.ApplyCell(engine.Position{Row: 0, Col: 0},
		parameter.GameOverScorePrefix+strconv.Itoa(score))
	g.ApplyCell(engine.Position{Row: 1, Col: 0}, parameter.GameOverAttribution)
}

// Lines returns the visible grid content: rows with trailing blanks
// trimmed, trailing empty rows dropped.
func (g *Grid) Lines() []string {
	g.mu.Lock()
	defer g.mu.Unlock()

	lines := make([]string, 0, parameter.BoardHeight)
	for row := range g.cells {
		lines = append(lines, strings.TrimRight(string(g.cells[row][:]), " "))
	}
	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}

// Rows returns a full copy of the cell matrix for painting
func (g *Grid) Rows() [][]rune {
	g.mu.Lock()
	defer g.mu.Unlock()

	rows := make([][]rune, parameter.BoardHeight)
	for row := range g.cells {
		line := make([]rune, parameter.BoardWidth)
		copy(line, g.cells[row][:])
		rows[row] = line
	}
	return rows
}
