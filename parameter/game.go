package parameter

import "time"

// Board geometry
// Row 0 is reserved for the status line; rows 1..PlayRowMax and
// cols 1..PlayColMax are playable. Crossing a boundary wraps to the
// opposite edge (toroidal board).
const (
	BoardHeight = 19
	BoardWidth  = 59

	PlayRowMin = 1
	PlayRowMax = BoardHeight - 1 // 18
	PlayColMin = 1
	PlayColMax = BoardWidth - 1 // 58
)

// Initial layout
const (
	InitialSnakeRow = 4
	InitialSnakeCol = 10 // head; body extends left to col 8

	InitialFoodRow = 10
	InitialFoodCol = 20
)

// Speed curve
// Tick delay in milliseconds is TickBaseMs minus a length-derived term,
// using floor division before the modulo. The curve tightens as the
// snake grows and cyclically resets at length milestones.
const (
	TickBaseMs    = 150
	TickCurveDivA = 5
	TickCurveDivB = 10
	TickCurveMod  = 120
)

// PausePollInterval bounds how often the loop rechecks for resume or
// exit while paused. The lock is released for the full sleep.
const PausePollInterval = 50 * time.Millisecond

// Glyphs and status text
const (
	FoodGlyph  = "*"
	HeadGlyph  = "#"
	BlankGlyph = " "

	StatusScoreCol = 2
	StatusHelpCol  = 27
	StatusHelpText = " SNAKE / MOVEMENTs(hjkl) EXIT(i) PAUSE(space) "

	// Game-over screen contents
	GameOverScorePrefix = "Score - "
	GameOverAttribution = "http://bitemelater.in"
)
