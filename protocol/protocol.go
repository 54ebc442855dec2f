// Package protocol defines the JSON wire messages exchanged between the
// server and connected players. Every message carries a "type" discriminant.
package protocol

// Inbound message types.
const (
	TypeCreateGame = "create_game"
	TypeJoinGame   = "join_game"
	TypeMakeMove   = "make_move"
)

// Outbound message types.
const (
	TypeConnected      = "connected"
	TypeGameCreated    = "game_created"
	TypeGameJoined     = "game_joined"
	TypeOpponentJoined = "opponent_joined"
	TypeMoveMade       = "move_made"
	TypeError          = "error"
)

// ClientMessage is the envelope for everything a player sends. Fields beyond
// Type are populated depending on the message kind.
type ClientMessage struct {
	Type      string `json:"type"`
	GameID    string `json:"gameId,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// Connected is sent once, immediately after the connection is established.
type Connected struct {
	Type string `json:"type"`
}

// GameCreated confirms game creation to the creator.
type GameCreated struct {
	Type   string `json:"type"`
	GameID string `json:"gameId"`
	Seat   string `json:"seat"`
	State  string `json:"state"`
}

// GameJoined confirms a join to the joining player.
type GameJoined struct {
	Type   string `json:"type"`
	GameID string `json:"gameId"`
	Seat   string `json:"seat"`
	State  string `json:"state"`
}

// OpponentJoined notifies the already-seated player that the other seat
// was just taken.
type OpponentJoined struct {
	Type         string `json:"type"`
	GameID       string `json:"gameId"`
	OpponentSeat string `json:"opponentSeat"`
}

// MoveInfo echoes the move that was just applied.
type MoveInfo struct {
	From      string `json:"from"`
	To        string `json:"to"`
	Promotion string `json:"promotion,omitempty"`
}

// MoveMade is broadcast to both seats after a legal move. State is the
// engine's canonical position encoding (FEN for the chess engine).
type MoveMade struct {
	Type        string   `json:"type"`
	GameID      string   `json:"gameId"`
	State       string   `json:"state"`
	LastMove    MoveInfo `json:"lastMove"`
	Turn        string   `json:"turn"`
	IsGameOver  bool     `json:"isGameOver"`
	IsCheckmate bool     `json:"isCheckmate"`
	IsDraw      bool     `json:"isDraw"`
}

// Error is sent only to the player whose request failed. It never closes
// the connection.
type Error struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

// NewError builds an error reply.
func NewError(message string) Error {
	return Error{Type: TypeError, Message: message}
}
