// Package coordinator implements the protocol handler that binds ephemeral
// connections to game seats and relays moves between them.
//
// The coordinator interprets the three inbound message kinds (create_game,
// join_game, make_move) against the registry, owns the side table mapping
// each connection to its (game, seat) role binding, and reconciles abrupt
// disconnects without corrupting shared state.
//
// Seat assignment on join deliberately fills the black seat first and then
// the white seat, and binding an empty slot always lets the newest joiner
// win. This lets a creator's vacated seat be taken over, and is preserved
// behavior rather than an accident of this implementation.
//
// Concurrency:
//
// A single mutex serializes every inbound message and every close event,
// so check-turn -> apply-move -> broadcast and check-occupancy -> bind ->
// notify are atomic. Outbound sends inside the lock are non-blocking
// channel pushes, so a dead connection can never stall the game.
package coordinator
