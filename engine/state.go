package engine

import (
	"sync"

	"github.com/lixenwraith/vi-snake/parameter"
)

// Position is a board cell as (row, col). Row 0 is the status line.
type Position struct {
	Row, Col int
}

// Direction enumerates the four movement headings
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// Delta returns the per-tick row/col displacement for the heading
func (d Direction) Delta() (dr, dc int) {
	switch d {
	case DirUp:
		return -1, 0
	case DirDown:
		return 1, 0
	case DirLeft:
		return 0, -1
	case DirRight:
		return 0, 1
	}
	return 0, 0
}

// Token is the unit of control input the simulation consumes,
// decoupled from raw key codes
type Token int

const (
	TokenNone Token = iota
	TokenUp
	TokenDown
	TokenLeft
	TokenRight
	TokenPause
	TokenExit
)

// Direction returns the heading a directional token requests.
// ok is false for TokenNone, TokenPause and TokenExit.
func (t Token) Direction() (d Direction, ok bool) {
	switch t {
	case TokenUp:
		return DirUp, true
	case TokenDown:
		return DirDown, true
	case TokenLeft:
		return DirLeft, true
	case TokenRight:
		return DirRight, true
	}
	return 0, false
}

// Phase is the game-level lifecycle state
type Phase int

const (
	PhaseRunning Phase = iota
	PhasePaused
	PhaseEnded
)

// Snapshot is a read-only copy of the game state, safe to use after
// the lock is released. Rendering and tests work from snapshots only.
type Snapshot struct {
	Snake []Position
	Food  Position
	Score int
	Dir   Direction
	Phase Phase
}

// GameState centralizes the simulation state behind a single mutex.
// The loop is the only mutator of snake, food and score; the token
// mailbox shares the same mutex so a keypress and a tick can never
// interleave mid-step. The lock is never held across a sleep or a
// sink call.
type GameState struct {
	mu sync.Mutex

	snake   []Position // head at index 0
	food    Position
	score   int
	dir     Direction
	prevDir Direction // restored on resume after pause
	phase   Phase

	mailbox Mailbox
}

// NewGameState creates the fixed initial game: a three-segment snake
// heading right, one food cell, score zero.
func NewGameState() *GameState {
	gs := &GameState{
		snake: []Position{
			{parameter.InitialSnakeRow, parameter.InitialSnakeCol},
			{parameter.InitialSnakeRow, parameter.InitialSnakeCol - 1},
			{parameter.InitialSnakeRow, parameter.InitialSnakeCol - 2},
		},
		food:    Position{parameter.InitialFoodRow, parameter.InitialFoodCol},
		dir:     DirRight,
		prevDir: DirRight,
		phase:   PhaseRunning,
	}
	gs.mailbox = Mailbox{mu: &gs.mu}
	return gs
}

// Mailbox returns the input slot producers write tokens into
func (gs *GameState) Mailbox() *Mailbox {
	return &gs.mailbox
}

// Snapshot returns a consistent copy of the current state
func (gs *GameState) Snapshot() Snapshot {
	gs.mu.Lock()
	defer gs.mu.Unlock()

	snake := make([]Position, len(gs.snake))
	copy(snake, gs.snake)
	return Snapshot{
		Snake: snake,
		Food:  gs.food,
		Score: gs.score,
		Dir:   gs.dir,
		Phase: gs.phase,
	}
}
