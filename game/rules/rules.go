// Package rules defines the rules-engine boundary for the multiplayer
// server and provides the chess implementation backed by notnil/chess.
//
// The server core never inspects game state directly. It holds an Engine,
// asks whose turn it is, applies candidate moves, and reads the canonical
// position encoding (FEN) to relay to players. Any implementation of Engine
// can be swapped in, which is also how the coordinator tests drive the
// state machine without a real chess game.
package rules

import "errors"

// ErrIllegalMove is returned by TryMove when the candidate move is not
// legal in the current position. Any other non-nil error from TryMove is
// treated as an engine fault by callers.
var ErrIllegalMove = errors.New("illegal move")

// Color identifies a side. White moves first.
type Color string

const (
	White Color = "white"
	Black Color = "black"
)

// Other returns the opposing side.
func (c Color) Other() Color {
	if c == White {
		return Black
	}
	return White
}

// Move is a candidate move in coordinate form. Promotion is a single
// lowercase piece letter ("q", "r", "b", "n") and is ignored for moves
// that do not promote.
type Move struct {
	From      string
	To        string
	Promotion string
}

// Engine owns game state and legality. All methods are pure with respect
// to callers except TryMove, which advances the position on success and
// leaves it untouched on failure.
type Engine interface {
	// TryMove applies the move or returns ErrIllegalMove. Other errors
	// indicate an engine fault.
	TryMove(m Move) error

	// Turn reports which side moves next.
	Turn() Color

	// FEN returns the canonical encoding of the current position.
	FEN() string

	IsGameOver() bool
	IsCheckmate() bool
	IsDraw() bool
}
