package rules

import (
	"fmt"

	"github.com/notnil/chess"
)

// Game is the chess Engine used in production, wrapping notnil/chess.
type Game struct {
	inner *chess.Game
}

// NewGame returns a Game at the standard starting position.
func NewGame() *Game {
	return &Game{inner: chess.NewGame()}
}

// NewGameFromFEN returns a Game starting from an arbitrary position.
func NewGameFromFEN(fen string) (*Game, error) {
	opt, err := chess.FEN(fen)
	if err != nil {
		return nil, fmt.Errorf("invalid FEN %q: %w", fen, err)
	}
	return &Game{inner: chess.NewGame(opt)}, nil
}

// TryMove resolves the candidate against the legal moves of the current
// position. For promotion moves the promotion letter selects among the
// four promotion choices; for everything else it is ignored.
func (g *Game) TryMove(m Move) error {
	promo := promoPiece(m.Promotion)
	for _, mv := range g.inner.ValidMoves() {
		if mv.S1().String() != m.From || mv.S2().String() != m.To {
			continue
		}
		if mv.Promo() != chess.NoPieceType && mv.Promo() != promo {
			continue
		}
		if err := g.inner.Move(mv); err != nil {
			return fmt.Errorf("apply %s%s: %w", m.From, m.To, err)
		}
		return nil
	}
	return ErrIllegalMove
}

// Turn reports which side moves next.
func (g *Game) Turn() Color {
	if g.inner.Position().Turn() == chess.White {
		return White
	}
	return Black
}

// FEN returns the current position in Forsyth-Edwards notation.
func (g *Game) FEN() string {
	return g.inner.FEN()
}

// IsGameOver reports whether the game has reached any terminal outcome.
func (g *Game) IsGameOver() bool {
	return g.inner.Outcome() != chess.NoOutcome
}

// IsCheckmate reports whether the game ended by checkmate.
func (g *Game) IsCheckmate() bool {
	return g.inner.Method() == chess.Checkmate
}

// IsDraw reports whether the game ended in a draw.
func (g *Game) IsDraw() bool {
	return g.inner.Outcome() == chess.Draw
}

func promoPiece(letter string) chess.PieceType {
	switch letter {
	case "q":
		return chess.Queen
	case "r":
		return chess.Rook
	case "b":
		return chess.Bishop
	case "n":
		return chess.Knight
	default:
		return chess.NoPieceType
	}
}
