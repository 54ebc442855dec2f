package api

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/chess3official/chess3-multiplayer-server/game/coordinator"
	"github.com/chess3official/chess3-multiplayer-server/transport/websocket"
)

// Server is the HTTP front of the multiplayer server.
type Server struct {
	coordinator *coordinator.Coordinator
	hub         *websocket.Hub
	router      *mux.Router
}

// NewServer creates the HTTP server over the coordinator and hub.
func NewServer(coord *coordinator.Coordinator, hub *websocket.Hub) *Server {
	s := &Server{
		coordinator: coord,
		hub:         hub,
		router:      mux.NewRouter(),
	}

	s.setupRoutes()
	return s
}

// setupRoutes configures all routes.
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/health", s.handleHealth).Methods("GET")
	api.HandleFunc("/games", s.handleListGames).Methods("GET")

	// WebSocket
	s.router.HandleFunc("/ws", s.handleWebSocket)

	// Static files for the browser client
	s.router.PathPrefix("/").Handler(http.FileServer(http.Dir("./static/")))
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Response helpers
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "healthy",
	})
}

func (s *Server) handleListGames(w http.ResponseWriter, r *http.Request) {
	games := s.coordinator.ListGames()

	respondJSON(w, http.StatusOK, map[string]interface{}{
		"count": len(games),
		"games": games,
	})
}

func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	s.hub.ServeWS(w, r)
}
