package ws

import (
	"encoding/json"
	"sync"
)

// Message is the envelope for every frame sent to a client.
type Message struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

// ClientMessage is the envelope for every frame received from a client.
type ClientMessage struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data"`
}

// Hub tracks the live connections by connection id and routes outbound frames.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*Client
}

// NewHub creates an empty hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[string]*Client)}
}

// Register adds a connection to the hub.
func (h *Hub) Register(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c.id] = c
}

// Unregister removes a connection and closes its send channel. Safe to call
// more than once for the same client.
func (h *Hub) Unregister(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c.id]; !ok {
		return
	}
	delete(h.clients, c.id)
	close(c.send)
}

// SendToConn delivers a frame to one connection without blocking. A full send
// buffer means the client is too slow and the frame is dropped.
func (h *Hub) SendToConn(connID string, msg *Message) bool {
	data, err := json.Marshal(msg)
	if err != nil {
		return false
	}

	// Hold the read lock across the send: Unregister closes the channel under
	// the write lock, so the channel cannot close while a send is in flight.
	h.mu.RLock()
	defer h.mu.RUnlock()

	client, ok := h.clients[connID]
	if !ok {
		return false
	}

	select {
	case client.send <- data:
		return true
	default:
		return false
	}
}
