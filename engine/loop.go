package engine

import (
	"math/rand"
	"strconv"
	"time"

	"github.com/lixenwraith/vi-snake/parameter"
)

// cellUpdate is one pending write to the sink, captured under the lock
// and emitted after it is released
type cellUpdate struct {
	pos  Position
	text string
}

// Loop drives the simulation: discrete ticks that read the pending
// token, move the snake, resolve food and self-collision, commit the
// result and notify the sink, then sleep for a length-dependent
// interval. It owns all mutation of snake, food and score.
type Loop struct {
	state *GameState
	sink  Sink
	rng   *rand.Rand

	// Timing seams, defaulted in NewLoop. Tests inject zero-delay
	// replacements to run ticks deterministically.
	tickInterval func(length int) time.Duration
	pausePoll    time.Duration
	sleep        func(time.Duration)

	done chan struct{}
}

// NewLoop wires a loop to its state, sink and random source
func NewLoop(state *GameState, sink Sink, rng *rand.Rand) *Loop {
	return &Loop{
		state:        state,
		sink:         sink,
		rng:          rng,
		tickInterval: TickInterval,
		pausePoll:    parameter.PausePollInterval,
		sleep:        time.Sleep,
		done:         make(chan struct{}),
	}
}

// Start runs the loop in its own goroutine
func (l *Loop) Start() {
	go l.Run()
}

// Done is closed once the loop has stopped
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Run executes steps until the game ends
func (l *Loop) Run() {
	defer close(l.done)
	for l.step() {
	}
}

// step performs one iteration: a normal tick, a full pause/resume
// cycle, or the transition to Ended. Returns false once the game is
// over. The lock is held from token read through state commit and
// released before any sink call or sleep.
func (l *Loop) step() bool {
	gs := l.state
	gs.mu.Lock()

	switch tok := gs.mailbox.take(); {
	case tok == TokenExit:
		gs.phase = PhaseEnded
		gs.mu.Unlock()
		l.sink.Notify(SignalEndGame)
		return false

	case tok == TokenPause:
		if !l.pauseWait() {
			l.sink.Notify(SignalEndGame)
			return false
		}
		// A pause/resume cycle consumes no tick
		return true

	default:
		if d, ok := tok.Direction(); ok {
			gs.dir = d
		}
	}

	head := NextHead(gs.snake[0], gs.dir)
	if HitsBody(head, gs.snake) {
		gs.phase = PhaseEnded
		gs.mu.Unlock()
		l.sink.Notify(SignalEndGame)
		return false
	}

	// Grow at the head; the tail pop below restores steady length on
	// non-food ticks
	gs.snake = append(gs.snake, Position{})
	copy(gs.snake[1:], gs.snake)
	gs.snake[0] = head

	var updates []cellUpdate
	if head == gs.food {
		gs.score++
		gs.food = NextFood(l.rng, gs.snake)
		updates = append(updates, cellUpdate{gs.food, parameter.FoodGlyph})
	} else {
		tail := gs.snake[len(gs.snake)-1]
		gs.snake = gs.snake[:len(gs.snake)-1]
		updates = append(updates, cellUpdate{tail, parameter.BlankGlyph})
	}
	updates = append(updates,
		cellUpdate{head, parameter.HeadGlyph},
		cellUpdate{Position{Row: 0, Col: parameter.StatusScoreCol}, "Score : " + strconv.Itoa(gs.score) + " "},
		cellUpdate{Position{Row: 0, Col: parameter.StatusHelpCol}, parameter.StatusHelpText},
	)

	gs.prevDir = gs.dir
	delay := l.tickInterval(len(gs.snake))
	gs.mu.Unlock()

	for _, u := range updates {
		l.sink.ApplyCell(u.pos, u.text)
	}
	l.sink.Notify(SignalUpdateScreen)
	l.sleep(delay)
	return true
}

// pauseWait parks the loop until a second pause token resumes it,
// restoring the pre-pause direction. Exit also breaks the wait. The
// lock is released for every poll sleep so producers are never
// starved. Entered with the lock held; returns with it released.
// Returns false if the game ended instead of resuming.
func (l *Loop) pauseWait() bool {
	gs := l.state
	gs.phase = PhasePaused
	for {
		switch gs.mailbox.take() {
		case TokenExit:
			gs.phase = PhaseEnded
			gs.mu.Unlock()
			return false
		case TokenPause:
			gs.dir = gs.prevDir
			gs.phase = PhaseRunning
			gs.mu.Unlock()
			return true
		}
		gs.mu.Unlock()
		l.sleep(l.pausePoll)
		gs.mu.Lock()
	}
}
