package websocket

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/chess3official/chess3-multiplayer-server/game/session"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		// Players connect from arbitrary origins (shared game codes).
		return true
	},
}

// Handler receives connection lifecycle events and inbound payloads.
// The game coordinator implements it.
type Handler interface {
	HandleConnect(conn session.Conn)
	HandleMessage(conn session.Conn, raw []byte)
	HandleDisconnect(conn session.Conn)
}

// Client is one WebSocket connection. It implements session.Conn.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	id   string
	send chan []byte

	done      chan struct{}
	closeOnce sync.Once
}

// ID returns the connection's identifier, used for logging.
func (c *Client) ID() string {
	return c.id
}

// Send marshals v and queues it for delivery. It never blocks: if the
// connection is closed or its buffer is full, the message is dropped.
func (c *Client) Send(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		log.Printf("client %s: failed to marshal outbound message: %v", c.id, err)
		return
	}

	select {
	case <-c.done:
	case c.send <- data:
	default:
		log.Printf("client %s: send buffer full, dropping message", c.id)
	}
}

// Hub maintains the set of active clients and routes their events to the
// protocol handler.
type Hub struct {
	handler Handler

	// Registered clients
	clients map[*Client]bool

	// Register requests from clients
	register chan *Client

	// Unregister requests from clients
	unregister chan *Client
}

// NewHub creates a hub delivering events to handler.
func NewHub(handler Handler) *Hub {
	return &Hub{
		handler:    handler,
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
	}
}

// Run starts the hub's event loop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.registerClient(client)

		case client := <-h.unregister:
			h.unregisterClient(client)
		}
	}
}

// ClientCount returns how many connections the hub believes are live.
// It is approximate: registration happens on the hub goroutine.
func (h *Hub) ClientCount() int {
	// Only read from tests and logs; the map is owned by Run.
	return len(h.clients)
}

// ServeWS upgrades an HTTP request and starts serving the connection.
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	client := &Client{
		hub:  h,
		conn: conn,
		id:   uuid.NewString(),
		send: make(chan []byte, 256),
		done: make(chan struct{}),
	}

	h.register <- client

	// Greet before the read pump starts so "connected" is always the
	// first message the peer observes.
	h.handler.HandleConnect(client)

	go client.writePump()
	go client.readPump()
}

func (h *Hub) registerClient(client *Client) {
	h.clients[client] = true
	log.Printf("client %s connected (total clients: %d)", client.id, len(h.clients))
}

func (h *Hub) unregisterClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	client.closeOnce.Do(func() { close(client.done) })

	h.handler.HandleDisconnect(client)

	log.Printf("client %s disconnected (remaining clients: %d)", client.id, len(h.clients))
}

// readPump pumps messages from the WebSocket connection to the handler.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("client %s: WebSocket error: %v", c.id, err)
			}
			break
		}

		c.hub.handler.HandleMessage(c, data)
	}
}

// writePump pumps queued messages to the WebSocket connection.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))

			w, err := c.conn.NextWriter(websocket.TextMessage)
			if err != nil {
				return
			}
			w.Write(message)
			if err := w.Close(); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
