package rules

import (
	"errors"
	"strings"
	"testing"
)

func TestNewGameInitialPosition(t *testing.T) {
	g := NewGame()

	if g.Turn() != White {
		t.Errorf("Expected white to move first, got %s", g.Turn())
	}

	if !strings.HasPrefix(g.FEN(), "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w") {
		t.Errorf("Unexpected initial FEN: %s", g.FEN())
	}

	if g.IsGameOver() || g.IsCheckmate() || g.IsDraw() {
		t.Error("Fresh game should not be over")
	}
}

func TestTryMoveLegal(t *testing.T) {
	g := NewGame()

	if err := g.TryMove(Move{From: "e2", To: "e4"}); err != nil {
		t.Fatalf("Expected e2e4 to be legal, got %v", err)
	}

	if g.Turn() != Black {
		t.Errorf("Expected black to move after e2e4, got %s", g.Turn())
	}

	if !strings.Contains(g.FEN(), "4P3") {
		t.Errorf("Board should show pawn on e4, FEN: %s", g.FEN())
	}
}

func TestTryMoveIllegal(t *testing.T) {
	tests := []struct {
		name string
		move Move
	}{
		{"pawn three squares", Move{From: "e2", To: "e5"}},
		{"empty square", Move{From: "e5", To: "e6"}},
		{"opponent piece", Move{From: "e7", To: "e5"}},
		{"malformed squares", Move{From: "z9", To: "q0"}},
		{"missing fields", Move{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewGame()
			before := g.FEN()

			err := g.TryMove(tt.move)
			if !errors.Is(err, ErrIllegalMove) {
				t.Fatalf("Expected ErrIllegalMove, got %v", err)
			}

			if g.FEN() != before {
				t.Error("Rejected move must not change the position")
			}
		})
	}
}

func TestCheckmate(t *testing.T) {
	g := NewGame()

	// Fool's mate.
	moves := []Move{
		{From: "f2", To: "f3"},
		{From: "e7", To: "e5"},
		{From: "g2", To: "g4"},
		{From: "d8", To: "h4"},
	}
	for _, m := range moves {
		if err := g.TryMove(m); err != nil {
			t.Fatalf("Move %s%s failed: %v", m.From, m.To, err)
		}
	}

	if !g.IsGameOver() {
		t.Error("Game should be over after fool's mate")
	}
	if !g.IsCheckmate() {
		t.Error("Fool's mate should be checkmate")
	}
	if g.IsDraw() {
		t.Error("Checkmate is not a draw")
	}
}

func TestStalemateIsDraw(t *testing.T) {
	g, err := NewGameFromFEN("7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	if err != nil {
		t.Fatalf("Failed to load position: %v", err)
	}

	if !g.IsGameOver() {
		t.Error("Stalemate position should be game over")
	}
	if !g.IsDraw() {
		t.Error("Stalemate should be a draw")
	}
	if g.IsCheckmate() {
		t.Error("Stalemate is not checkmate")
	}
}

func TestPromotion(t *testing.T) {
	g, err := NewGameFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to load position: %v", err)
	}

	if err := g.TryMove(Move{From: "a7", To: "a8", Promotion: "q"}); err != nil {
		t.Fatalf("Expected promotion to be legal, got %v", err)
	}

	if !strings.HasPrefix(g.FEN(), "Q7/") {
		t.Errorf("Expected a queen on a8, FEN: %s", g.FEN())
	}
}

func TestPromotionUnderpromotion(t *testing.T) {
	g, err := NewGameFromFEN("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	if err != nil {
		t.Fatalf("Failed to load position: %v", err)
	}

	if err := g.TryMove(Move{From: "a7", To: "a8", Promotion: "n"}); err != nil {
		t.Fatalf("Expected knight underpromotion to be legal, got %v", err)
	}

	if !strings.HasPrefix(g.FEN(), "N7/") {
		t.Errorf("Expected a knight on a8, FEN: %s", g.FEN())
	}
}

func TestPromotionIgnoredForNormalMove(t *testing.T) {
	g := NewGame()

	// The coordinator always supplies a default promotion letter; it must
	// not interfere with a non-promoting move.
	if err := g.TryMove(Move{From: "e2", To: "e4", Promotion: "q"}); err != nil {
		t.Fatalf("Expected e2e4 with promotion letter to be legal, got %v", err)
	}
}

func TestColorOther(t *testing.T) {
	if White.Other() != Black {
		t.Error("White's opponent should be Black")
	}
	if Black.Other() != White {
		t.Error("Black's opponent should be White")
	}
}

func TestNewGameFromFENInvalid(t *testing.T) {
	if _, err := NewGameFromFEN("not a fen"); err == nil {
		t.Error("Expected error for invalid FEN")
	}
}
