package main

import (
	"log"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/audio"
	"github.com/lixenwraith/vi-snake/engine"
	"github.com/lixenwraith/vi-snake/render"
)

// hostSink bridges the simulation to the terminal host: cell updates
// land in the grid, notifications wake the event loop for a repaint.
// The loop calls in with no engine lock held, so nothing here can
// stall a tick or a keypress.
type hostSink struct {
	screen tcell.Screen
	grid   *render.Grid
	state  *engine.GameState
	sounds *audio.SoundManager

	lastScore int // eat detection for the chirp
}

func (s *hostSink) ApplyCell(pos engine.Position, text string) {
	s.grid.ApplyCell(pos, text)
}

func (s *hostSink) Notify(sig engine.Signal) {
	switch sig {
	case engine.SignalUpdateScreen:
		if s.sounds != nil {
			if score := s.state.Snapshot().Score; score > s.lastScore {
				s.lastScore = score
				s.sounds.PlayEat()
			}
		}

	case engine.SignalEndGame:
		snap := s.state.Snapshot()
		log.Printf("game over, score %d", snap.Score)
		s.grid.RenderGameOver(snap.Score)
		if s.sounds != nil {
			s.sounds.PlayGameOver()
		}
	}

	// Wake the event loop; PollEvent is blocked on the main goroutine
	_ = s.screen.PostEvent(tcell.NewEventInterrupt(nil))
}
