// Package session provides game session storage for the multiplayer server.
//
// The session package implements:
//   - Thread-safe game registry keyed by game ID
//   - Unique, shareable game ID generation
//   - Per-seat connection bindings inside a session
//
// Core Types:
//
// Registry is the authoritative map of active games. Session represents one
// in-progress or pending game: its rules-engine state, one optional
// connection handle per seat, and a creation timestamp.
//
// Game Identifiers:
//
// Game IDs are 6-character codes meant to be read aloud or typed by a
// human. They are drawn with cryptographic randomness from a 32-symbol
// alphabet that excludes the visually confusable 0/O/1/I, and are re-rolled
// on the (negligible) chance of colliding with a live game.
//
// Seats and Connections:
//
// A session has exactly two seats, white and black. A seat slot either is
// empty or holds a connection handle. Handles are weak references: the
// session observes connection identity but never manages connection
// lifecycle. Clearing a seat on disconnect compares the exact handle so a
// stale close event cannot evict a newer occupant.
//
// Concurrency:
//
// The Registry guards its map internally and is safe for concurrent use.
// Seat bindings and the rules-engine state of a Session are not
// self-locking; the coordinator serializes every mutation of them under a
// single lock (see game/coordinator).
package session
