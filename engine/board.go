package engine

import (
	"math/rand"
	"time"

	"github.com/lixenwraith/vi-snake/parameter"
)

// Pure board functions. Everything here operates on values copied out
// of the state; nothing touches the lock.

// NextHead returns the cell the head moves into, wrapping at the board
// edges: row 0 re-enters at 18, row 19 at 1, col 0 at 58, col 59 at 1.
func NextHead(head Position, d Direction) Position {
	dr, dc := d.Delta()
	p := Position{Row: head.Row + dr, Col: head.Col + dc}

	if p.Row == 0 {
		p.Row = parameter.PlayRowMax
	}
	if p.Row == parameter.BoardHeight {
		p.Row = parameter.PlayRowMin
	}
	if p.Col == 0 {
		p.Col = parameter.PlayColMax
	}
	if p.Col == parameter.BoardWidth {
		p.Col = parameter.PlayColMin
	}
	return p
}

// HitsBody reports whether head lands on any of the given segments.
// The collision check runs against the body as it stood before the
// tick's insert and pop, so moving into the current tail cell loses.
func HitsBody(head Position, body []Position) bool {
	for _, seg := range body {
		if seg == head {
			return true
		}
	}
	return false
}

// NextFood draws a uniformly random playable cell not occupied by the
// snake. Rejection sampling with no retry bound: the snake cannot fill
// the 18×58 board in any finite game, so a free cell always exists.
func NextFood(rng *rand.Rand, occupied []Position) Position {
	for {
		p := Position{
			Row: parameter.PlayRowMin + rng.Intn(parameter.PlayRowMax-parameter.PlayRowMin+1),
			Col: parameter.PlayColMin + rng.Intn(parameter.PlayColMax-parameter.PlayColMin+1),
		}
		if !HitsBody(p, occupied) {
			return p
		}
	}
}

// TickInterval maps snake length to the delay before the next tick:
// (150 - (len/5 + len/10) % 120) milliseconds. The floor divisions
// happen before the modulo; changing that order changes the speed
// curve and its cyclic reset at length milestones.
func TickInterval(length int) time.Duration {
	ms := parameter.TickBaseMs -
		(length/parameter.TickCurveDivA+length/parameter.TickCurveDivB)%parameter.TickCurveMod
	return time.Duration(ms) * time.Millisecond
}
