// Package websocket provides the WebSocket transport for the multiplayer
// server.
//
// The websocket package implements:
//   - Real-time bidirectional communication
//   - Per-connection read and write pumps with ping/pong keepalive
//   - Non-blocking outbound delivery that skips dead or slow peers
//   - Connection lifecycle events delivered to a Handler
//
// Architecture:
//
// The package uses a hub-and-spoke model where a central Hub tracks all
// live connections. Each client connection is served by a dedicated read
// goroutine and write goroutine. The hub itself is protocol-agnostic: it
// hands raw inbound payloads and connect/disconnect events to a Handler
// (the game coordinator) and exposes each connection to the handler as a
// session.Conn it can send typed messages through.
//
// Connection Lifecycle:
//
//  1. Client connects to /ws and is upgraded
//  2. Connection registered with the hub, Handler.HandleConnect fires
//  3. Inbound frames are passed to Handler.HandleMessage
//  4. Read failure or close triggers unregistration and
//     Handler.HandleDisconnect, exactly once per connection
//
// Outbound Delivery:
//
// Send marshals the payload and pushes it into the connection's buffered
// channel without blocking. A connection that is closed, or whose buffer
// is full because the peer stopped reading, is silently skipped; broken
// peers never stall a game in progress.
package websocket
