package engine

import "sync"

// Mailbox is a single-slot holder for the most recent control token.
// Last write wins: a burst of keypresses between two ticks collapses
// to the latest one. It shares the GameState mutex by design, so token
// reads inside a tick are atomic with the state commit.
type Mailbox struct {
	mu    *sync.Mutex
	token Token
}

// Send overwrites the slot with the latest token. It never blocks the
// caller beyond the lock hold time of one assignment.
func (m *Mailbox) Send(t Token) {
	m.mu.Lock()
	m.token = t
	m.mu.Unlock()
}

// take returns and clears the pending token. Callers must hold the
// shared lock.
func (m *Mailbox) take() Token {
	t := m.token
	m.token = TokenNone
	return t
}
