package session

import (
	"crypto/rand"
	"sync"

	"github.com/chess3official/chess3-multiplayer-server/game/rules"
)

// idAlphabet intentionally omits 0, O, 1, and I so codes survive being
// read aloud or copied by hand. 32 symbols keep the modulo draw unbiased.
const (
	idAlphabet = "ABCDEFGHJKLMNPQRSTUVWXYZ23456789"
	idLength   = 6
)

// Registry is the authoritative in-memory map of active games.
type Registry struct {
	mu    sync.RWMutex
	games map[string]*Session
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		games: make(map[string]*Session),
	}
}

// Create generates a fresh game ID, builds a session with the creator
// seated as white and black empty, and inserts it.
func (r *Registry) Create(game rules.Engine, creator Conn) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	id := newGameID()
	for r.games[id] != nil {
		id = newGameID()
	}

	s := newSession(id, game, creator)
	r.games[id] = s
	return s
}

// Get looks up a session. Absence is not an error at this layer.
func (r *Registry) Get(id string) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.games[id]
	return s, ok
}

// Delete removes a session. It is a no-op if the ID is absent.
func (r *Registry) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.games, id)
}

// List returns all active sessions.
func (r *Registry) List() []*Session {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result := make([]*Session, 0, len(r.games))
	for _, s := range r.games {
		result = append(result, s)
	}
	return result
}

// Count returns the number of active games.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

// newGameID draws idLength symbols from idAlphabet using crypto/rand.
func newGameID() string {
	b := make([]byte, idLength)
	rand.Read(b)
	for i, c := range b {
		b[i] = idAlphabet[int(c)%len(idAlphabet)]
	}
	return string(b)
}
