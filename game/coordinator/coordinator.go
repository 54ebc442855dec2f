package coordinator

import (
	"encoding/json"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/chess3official/chess3-multiplayer-server/game/rules"
	"github.com/chess3official/chess3-multiplayer-server/game/session"
	"github.com/chess3official/chess3-multiplayer-server/protocol"
)

// GameFactory produces a fresh rules-engine state for each new game.
type GameFactory func() rules.Engine

// roleBinding records which seat in which game a connection occupies.
type roleBinding struct {
	gameID string
	seat   rules.Color
}

// Coordinator dispatches inbound messages against the registry and computes
// the outbound replies and broadcasts.
type Coordinator struct {
	mu       sync.Mutex
	registry *session.Registry
	newGame  GameFactory
	bindings map[session.Conn]roleBinding
}

// New creates a coordinator over the given registry.
func New(registry *session.Registry, newGame GameFactory) *Coordinator {
	return &Coordinator{
		registry: registry,
		newGame:  newGame,
		bindings: make(map[session.Conn]roleBinding),
	}
}

// HandleConnect greets a freshly established connection.
func (c *Coordinator) HandleConnect(conn session.Conn) {
	conn.Send(protocol.Connected{Type: protocol.TypeConnected})
}

// HandleMessage decodes and dispatches one inbound message. A malformed
// payload or unknown type yields an error reply to the sender only, with
// no state mutation.
func (c *Coordinator) HandleMessage(conn session.Conn, raw []byte) {
	var msg protocol.ClientMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		conn.Send(protocol.NewError("Invalid message"))
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	switch msg.Type {
	case protocol.TypeCreateGame:
		c.createGame(conn)
	case protocol.TypeJoinGame:
		c.joinGame(conn, msg.GameID)
	case protocol.TypeMakeMove:
		c.makeMove(conn, msg)
	default:
		conn.Send(protocol.NewError("Unknown message type"))
	}
}

// HandleDisconnect reconciles a closed connection. Connections that never
// created or joined a game require no cleanup, and repeated close events
// for the same connection are no-ops.
func (c *Coordinator) HandleDisconnect(conn session.Conn) {
	c.mu.Lock()
	defer c.mu.Unlock()

	b, ok := c.bindings[conn]
	if !ok {
		return
	}
	delete(c.bindings, conn)

	s, ok := c.registry.Get(b.gameID)
	if !ok {
		return
	}

	// Release compares the exact handle, so a close event that raced a
	// seat takeover leaves the newer occupant in place.
	if s.Release(b.seat, conn) && s.Empty() {
		c.registry.Delete(b.gameID)
		log.Printf("game %s deleted (both seats vacated)", b.gameID)
	}
}

// GameSummary describes one active game for the introspection API.
type GameSummary struct {
	ID          string    `json:"id"`
	CreatedAt   time.Time `json:"created_at"`
	WhiteSeated bool      `json:"white_seated"`
	BlackSeated bool      `json:"black_seated"`
	Turn        string    `json:"turn"`
	GameOver    bool      `json:"game_over"`
}

// ListGames snapshots all active games.
func (c *Coordinator) ListGames() []GameSummary {
	c.mu.Lock()
	defer c.mu.Unlock()

	sessions := c.registry.List()
	result := make([]GameSummary, 0, len(sessions))
	for _, s := range sessions {
		result = append(result, GameSummary{
			ID:          s.ID,
			CreatedAt:   s.CreatedAt,
			WhiteSeated: s.Occupant(rules.White) != nil,
			BlackSeated: s.Occupant(rules.Black) != nil,
			Turn:        string(s.Game.Turn()),
			GameOver:    s.Game.IsGameOver(),
		})
	}
	return result
}

// GameCount returns the number of active games.
func (c *Coordinator) GameCount() int {
	return c.registry.Count()
}

func (c *Coordinator) createGame(conn session.Conn) {
	s := c.registry.Create(c.newGame(), conn)
	c.bindings[conn] = roleBinding{gameID: s.ID, seat: rules.White}

	conn.Send(protocol.GameCreated{
		Type:   protocol.TypeGameCreated,
		GameID: s.ID,
		Seat:   string(rules.White),
		State:  s.Game.FEN(),
	})

	log.Printf("game %s created", s.ID)
}

func (c *Coordinator) joinGame(conn session.Conn, gameID string) {
	s, ok := c.registry.Get(gameID)
	if !ok {
		conn.Send(protocol.NewError("Game not found"))
		return
	}

	// Fill the black seat first; fall back to a vacated white seat.
	var seat rules.Color
	switch {
	case s.Occupant(rules.Black) == nil:
		seat = rules.Black
	case s.Occupant(rules.White) == nil:
		seat = rules.White
	default:
		conn.Send(protocol.NewError("Game already has two players"))
		return
	}

	s.Bind(seat, conn)
	c.bindings[conn] = roleBinding{gameID: gameID, seat: seat}

	conn.Send(protocol.GameJoined{
		Type:   protocol.TypeGameJoined,
		GameID: gameID,
		Seat:   string(seat),
		State:  s.Game.FEN(),
	})

	if opponent := s.Occupant(seat.Other()); opponent != nil {
		opponent.Send(protocol.OpponentJoined{
			Type:         protocol.TypeOpponentJoined,
			GameID:       gameID,
			OpponentSeat: string(seat),
		})
	}

	log.Printf("game %s: %s seat taken", gameID, seat)
}

func (c *Coordinator) makeMove(conn session.Conn, msg protocol.ClientMessage) {
	s, ok := c.registry.Get(msg.GameID)
	if !ok {
		conn.Send(protocol.NewError("Game not found"))
		return
	}

	b, ok := c.bindings[conn]
	if !ok || b.gameID != msg.GameID {
		conn.Send(protocol.NewError("You are not part of this game"))
		return
	}

	if s.Game.Turn() != b.seat {
		conn.Send(protocol.NewError("Not your turn"))
		return
	}

	promotion := msg.Promotion
	if promotion == "" {
		promotion = "q"
	}

	err := s.Game.TryMove(rules.Move{From: msg.From, To: msg.To, Promotion: promotion})
	if err != nil {
		if errors.Is(err, rules.ErrIllegalMove) {
			conn.Send(protocol.NewError("Illegal move"))
		} else {
			log.Printf("game %s: engine fault on %s%s: %v", msg.GameID, msg.From, msg.To, err)
			conn.Send(protocol.NewError("Move error"))
		}
		return
	}

	update := protocol.MoveMade{
		Type:   protocol.TypeMoveMade,
		GameID: msg.GameID,
		State:  s.Game.FEN(),
		LastMove: protocol.MoveInfo{
			From:      msg.From,
			To:        msg.To,
			Promotion: msg.Promotion,
		},
		Turn:        string(s.Game.Turn()),
		IsGameOver:  s.Game.IsGameOver(),
		IsCheckmate: s.Game.IsCheckmate(),
		IsDraw:      s.Game.IsDraw(),
	}

	// A seat without a live connection is silently skipped.
	for _, seat := range []rules.Color{rules.White, rules.Black} {
		if occupant := s.Occupant(seat); occupant != nil {
			occupant.Send(update)
		}
	}
}
