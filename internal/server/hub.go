package server

import (
	"context"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Client is one player's socket connection to one game.
type Client struct {
	hub  *Hub
	conn *websocket.Conn
	send chan []byte

	username    string
	gameID      string
	playerIndex int
}

// Hub tracks all connected clients and fans state pushes out to them.
// Unlike a chat hub, pushes here are personalized: every player of a game
// gets the state censored for their own eyes.
type Hub struct {
	mu      sync.RWMutex
	clients map[*Client]bool

	register   chan *Client
	unregister chan *Client

	log *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log,
	}
}

// Run owns the client registry. It blocks until the context is cancelled.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.mu.Lock()
			for c := range h.clients {
				close(c.send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()
			h.log.Debug("client connected",
				zap.String("username", c.username),
				zap.String("gameId", c.gameID))
		case c := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[c]; ok {
				delete(h.clients, c)
				close(c.send)
			}
			h.mu.Unlock()
			h.log.Debug("client disconnected",
				zap.String("username", c.username),
				zap.String("gameId", c.gameID))
		}
	}
}

// PushGame sends each connected player of a game their own view. build is
// called once per client with the client's seat index.
func (h *Hub) PushGame(gameID string, build func(playerIndex int) ([]byte, error)) {
	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		if c.gameID != gameID {
			continue
		}
		msg, err := build(c.playerIndex)
		if err != nil {
			h.log.Error("state push build failed",
				zap.String("gameId", gameID), zap.Error(err))
			continue
		}
		select {
		case c.send <- msg:
		default:
			// Slow consumer; drop the connection rather than the game.
			close(c.send)
			delete(h.clients, c)
		}
	}
}

// newUpgrader builds a websocket upgrader restricted to the configured
// origins. A single "*" entry allows any origin.
func newUpgrader(allowedOrigins []string) websocket.Upgrader {
	allowAll := false
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, o := range allowedOrigins {
		if o == "*" {
			allowAll = true
		}
		allowed[o] = true
	}
	return websocket.Upgrader{
		ReadBufferSize:  4096,
		WriteBufferSize: 4096,
		CheckOrigin: func(r *http.Request) bool {
			if allowAll {
				return true
			}
			return allowed[r.Header.Get("Origin")]
		},
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			return
		}
	}
}
