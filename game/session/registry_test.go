package session

import (
	"strings"
	"testing"

	"github.com/chess3official/chess3-multiplayer-server/game/rules"
)

type stubConn struct{ sent []interface{} }

func (c *stubConn) Send(v interface{}) { c.sent = append(c.sent, v) }

type stubEngine struct{ turn rules.Color }

func (e *stubEngine) TryMove(m rules.Move) error { return nil }
func (e *stubEngine) Turn() rules.Color          { return e.turn }
func (e *stubEngine) FEN() string                { return "stub" }
func (e *stubEngine) IsGameOver() bool           { return false }
func (e *stubEngine) IsCheckmate() bool          { return false }
func (e *stubEngine) IsDraw() bool               { return false }

func TestNewGameID(t *testing.T) {
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		id := newGameID()

		if len(id) != idLength {
			t.Fatalf("Expected %d-character ID, got %q", idLength, id)
		}

		for _, c := range id {
			if !strings.ContainsRune(idAlphabet, c) {
				t.Fatalf("ID %q contains %q, not in alphabet", id, c)
			}
		}

		seen[id] = true
	}

	// 1000 draws from a ~10^9 space colliding down to a handful would
	// mean the generator is broken.
	if len(seen) < 990 {
		t.Errorf("Expected ~1000 distinct IDs, got %d", len(seen))
	}
}

func TestIDAlphabetExcludesConfusables(t *testing.T) {
	for _, c := range "0O1I" {
		if strings.ContainsRune(idAlphabet, c) {
			t.Errorf("Alphabet must not contain %q", c)
		}
	}
	if len(idAlphabet) != 32 {
		t.Errorf("Expected 32-symbol alphabet, got %d", len(idAlphabet))
	}
}

func TestRegistryCreate(t *testing.T) {
	r := NewRegistry()
	creator := &stubConn{}

	s := r.Create(&stubEngine{turn: rules.White}, creator)

	if s.ID == "" {
		t.Fatal("Create should assign an ID")
	}
	if s.Occupant(rules.White) != Conn(creator) {
		t.Error("Creator should be seated as white")
	}
	if s.Occupant(rules.Black) != nil {
		t.Error("Black seat should be empty at creation")
	}
	if s.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	got, ok := r.Get(s.ID)
	if !ok || got != s {
		t.Error("Created session should be retrievable by ID")
	}
}

func TestRegistryGetAbsent(t *testing.T) {
	r := NewRegistry()

	if _, ok := r.Get("ABCDEF"); ok {
		t.Error("Get on empty registry should report absence")
	}
}

func TestRegistryDeleteIdempotent(t *testing.T) {
	r := NewRegistry()
	s := r.Create(&stubEngine{}, &stubConn{})

	r.Delete(s.ID)
	if _, ok := r.Get(s.ID); ok {
		t.Error("Deleted session should be absent")
	}

	// Second delete must be a no-op.
	r.Delete(s.ID)
	if r.Count() != 0 {
		t.Errorf("Expected empty registry, got %d", r.Count())
	}
}

func TestRegistryListAndCount(t *testing.T) {
	r := NewRegistry()

	for i := 0; i < 3; i++ {
		r.Create(&stubEngine{}, &stubConn{})
	}

	if r.Count() != 3 {
		t.Errorf("Expected 3 games, got %d", r.Count())
	}
	if len(r.List()) != 3 {
		t.Errorf("Expected 3 sessions listed, got %d", len(r.List()))
	}
}

func TestSessionBindAndRelease(t *testing.T) {
	r := NewRegistry()
	creator := &stubConn{}
	joiner := &stubConn{}

	s := r.Create(&stubEngine{}, creator)
	s.Bind(rules.Black, joiner)

	if s.Occupant(rules.Black) != Conn(joiner) {
		t.Fatal("Joiner should occupy black")
	}
	if s.Empty() {
		t.Error("Session with two occupants is not empty")
	}

	if !s.Release(rules.White, creator) {
		t.Error("Release with the exact handle should clear the seat")
	}
	if s.Occupant(rules.White) != nil {
		t.Error("White seat should be empty after release")
	}

	if !s.Release(rules.Black, joiner) {
		t.Error("Release of black should clear the seat")
	}
	if !s.Empty() {
		t.Error("Session should be empty after both releases")
	}
}

func TestSessionReleaseGuardsAgainstStaleHandle(t *testing.T) {
	r := NewRegistry()
	old := &stubConn{}
	replacement := &stubConn{}

	s := r.Create(&stubEngine{}, old)
	s.Bind(rules.White, replacement)

	if s.Release(rules.White, old) {
		t.Error("Release with a stale handle must not clear a rebound seat")
	}
	if s.Occupant(rules.White) != Conn(replacement) {
		t.Error("Replacement occupant should keep the seat")
	}
}
