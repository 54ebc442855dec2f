package session

import (
	"time"

	"github.com/chess3official/chess3-multiplayer-server/game/rules"
)

// Conn is a transport-owned connection handle occupying a seat. Send is
// best-effort: a closed or saturated connection is silently skipped.
// Handles are compared by identity, so implementations must be pointer-like.
type Conn interface {
	Send(v interface{})
}

// Session is one game: the rules-engine state plus the two seat slots.
// A session always has at least one seat occupied; the registry deletes it
// the moment both slots are empty.
type Session struct {
	ID        string
	Game      rules.Engine
	CreatedAt time.Time

	seats map[rules.Color]Conn
}

func newSession(id string, game rules.Engine, creator Conn) *Session {
	return &Session{
		ID:        id,
		Game:      game,
		CreatedAt: time.Now(),
		seats: map[rules.Color]Conn{
			rules.White: creator,
		},
	}
}

// Occupant returns the connection holding the seat, or nil.
func (s *Session) Occupant(seat rules.Color) Conn {
	return s.seats[seat]
}

// Bind places conn in the seat, overwriting any prior occupant reference.
func (s *Session) Bind(seat rules.Color, conn Conn) {
	s.seats[seat] = conn
}

// Release clears the seat only if it still holds this exact connection.
// It reports whether the slot was cleared; a stale close event for a seat
// that has since been rebound leaves the newer occupant in place.
func (s *Session) Release(seat rules.Color, conn Conn) bool {
	if s.seats[seat] != conn {
		return false
	}
	delete(s.seats, seat)
	return true
}

// Empty reports whether both seats are vacant.
func (s *Session) Empty() bool {
	return s.seats[rules.White] == nil && s.seats[rules.Black] == nil
}
