package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-snake/engine"
)

// KeyTable maps terminal key events to control tokens without
// function pointers; unbound keys translate to TokenNone and are
// silently dropped.
type KeyTable struct {
	// Special keys (arrows, Esc, Ctrl+*)
	SpecialKeys map[tcell.Key]engine.Token

	// Printable key bindings
	Runes map[rune]engine.Token
}

// DefaultKeyTable returns the default bindings: hjkl and arrows to
// steer, space to pause, i / Esc / Ctrl+C to exit.
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]engine.Token{
			tcell.KeyUp:     engine.TokenUp,
			tcell.KeyDown:   engine.TokenDown,
			tcell.KeyLeft:   engine.TokenLeft,
			tcell.KeyRight:  engine.TokenRight,
			tcell.KeyEscape: engine.TokenExit,
			tcell.KeyCtrlC:  engine.TokenExit,
		},
		Runes: map[rune]engine.Token{
			'h': engine.TokenLeft,
			'j': engine.TokenDown,
			'k': engine.TokenUp,
			'l': engine.TokenRight,
			' ': engine.TokenPause,
			'i': engine.TokenExit,
		},
	}
}

// Translate maps a key event to its token, TokenNone when unbound
func (kt *KeyTable) Translate(ev *tcell.EventKey) engine.Token {
	if ev.Key() == tcell.KeyRune {
		if tok, ok := kt.Runes[ev.Rune()]; ok {
			return tok
		}
		return engine.TokenNone
	}
	if tok, ok := kt.SpecialKeys[ev.Key()]; ok {
		return tok
	}
	return engine.TokenNone
}
