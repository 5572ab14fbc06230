package engine

// Signal identifies loop-to-host notifications
type Signal int

const (
	// SignalUpdateScreen asks the host to repaint after a tick
	SignalUpdateScreen Signal = iota

	// SignalEndGame reports the game is over, on both the exit and
	// the self-collision path
	SignalEndGame
)

// Sink is the rendering surface the loop drives. Implementations live
// outside the engine; every call is made with the engine lock already
// released, so a slow host can never stall a keypress.
type Sink interface {
	// ApplyCell writes text into the grid starting at pos
	ApplyCell(pos Position, text string)

	// Notify signals a repaint or the end of the game
	Notify(sig Signal)
}
