package render

import (
	"github.com/gdamore/tcell/v2"
)

// DrawGrid paints the grid onto the terminal and flushes it. Rendering
// reads a copy of the cells, so the simulation keeps ticking while the
// terminal catches up.
func DrawGrid(screen tcell.Screen, g *Grid) {
	style := tcell.StyleDefault
	for row, line := range g.Rows() {
		for col, r := range line {
			screen.SetContent(col, row, r, nil, style)
		}
	}
	screen.Show()
}
