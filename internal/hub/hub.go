package hub

import (
	"encoding/json"
	"sync"
)

// Event represents a real-time event to be sent to clients.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client represents a single storefront connection. It's essentially a
// channel that the SSE handler will listen to.
type Client chan []byte

// Hub fans play events out to every connected storefront, so the leaderboard
// widget can update without polling. Broadcasting happens inside the request
// that recorded the play; there is no background goroutine.
type Hub struct {
	clients map[Client]bool
	mu      sync.RWMutex
}

// NewHub creates a new Hub.
func NewHub() *Hub {
	return &Hub{clients: make(map[Client]bool)}
}

// Subscribe adds a new client. The returned buffer keeps one slow reader from
// stalling writers.
func (h *Hub) Subscribe() Client {
	client := make(Client, 8)
	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[client] = true
	return client
}

// Unsubscribe removes a client and closes its channel to signal the SSE
// handler to stop.
func (h *Hub) Unsubscribe(client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client)
	}
}

// Broadcast sends an event to all connected clients. Delivery is best-effort:
// the send never blocks, and a full client buffer simply drops the event.
func (h *Hub) Broadcast(event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	messageBytes, err := json.Marshal(event)
	if err != nil {
		return
	}

	for client := range h.clients {
		// Use a non-blocking send to prevent a slow client from blocking the hub.
		select {
		case client <- messageBytes:
		default:
			// Client channel is full, maybe they are disconnected or slow.
		}
	}
}
