// Package api provides the HTTP surface of the multiplayer server.
//
// The api package implements:
//   - WebSocket upgrade handling at /ws
//   - Health and active-game introspection endpoints
//   - Static file serving for the browser client
//
// Endpoints:
//
//   - GET /ws          - upgrade to the game WebSocket protocol
//   - GET /api/health  - liveness probe
//   - GET /api/games   - list active games (id, seats, turn, created_at)
//   - GET /            - static files
//
// Gameplay itself never flows through HTTP; every game message travels on
// the WebSocket connection. The REST endpoints exist for operators and for
// the client bootstrap.
package api
