// handlers/websocket.go - Real-Time Broadcast Hub
package handlers

import (
	"log"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
)

const sendBufferSize = 64

// Event is the wire shape for real-time notifications. Delivery is
// best-effort, at-most-once: slow clients drop events rather than block
// the sender.
type Event struct {
	Type      string `json:"type"`
	Data      any    `json:"data"`
	Timestamp int64  `json:"timestamp"`
	UserID    *uint  `json:"userId,omitempty"`
}

type wsClient struct {
	conn     *websocket.Conn
	send     chan Event
	userID   *uint
	username string
	isGuest  bool
}

// Hub fans events out to every connected client.
type Hub struct {
	clients map[*wsClient]bool
	mu      sync.RWMutex
}

var hub = &Hub{clients: make(map[*wsClient]bool)}

// GetHub returns the process-wide broadcast hub.
func GetHub() *Hub {
	return hub
}

// Broadcast sends an event to all connected clients. Never blocks; a
// client with a full buffer misses the event.
func (h *Hub) Broadcast(eventType string, data any) {
	event := Event{
		Type:      eventType,
		Data:      data,
		Timestamp: time.Now().UnixMilli(),
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		select {
		case client.send <- event:
		default:
		}
	}
}

func (h *Hub) register(client *wsClient) {
	h.mu.Lock()
	h.clients[client] = true
	h.mu.Unlock()
}

func (h *Hub) unregister(client *wsClient) {
	h.mu.Lock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.send)
	}
	h.mu.Unlock()
}

// relay forwards a client-originated event to every other client.
func (h *Hub) relay(from *wsClient, event Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for client := range h.clients {
		if client == from {
			continue
		}
		select {
		case client.send <- event:
		default:
		}
	}
}

// WebSocketUpgrade gates /ws to real upgrade requests.
func WebSocketUpgrade(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// WebSocketHandler serves one client connection. Identity comes from the
// optional auth middleware; guests may connect.
var WebSocketHandler = websocket.New(func(conn *websocket.Conn) {
	var userID *uint
	if raw, ok := conn.Locals("userId").(float64); ok {
		id := uint(raw)
		userID = &id
	}
	username, _ := conn.Locals("username").(string)
	isGuest, _ := conn.Locals("isGuest").(bool)

	client := &wsClient{
		conn:     conn,
		send:     make(chan Event, sendBufferSize),
		userID:   userID,
		username: username,
		isGuest:  isGuest,
	}

	hub.register(client)
	log.Printf("🔌 WebSocket client connected: %s (guest: %v)", username, isGuest)

	done := make(chan struct{})
	go client.writePump(done)
	client.readPump()

	hub.unregister(client)
	close(done)
	conn.Close()
	log.Printf("🔌 WebSocket client disconnected: %s", username)
})

func (c *wsClient) writePump(done chan struct{}) {
	for {
		select {
		case event, ok := <-c.send:
			if !ok {
				return
			}
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteJSON(event); err != nil {
				return
			}
		case <-done:
			return
		}
	}
}

func (c *wsClient) readPump() {
	for {
		var event Event
		if err := c.conn.ReadJSON(&event); err != nil {
			return
		}

		switch event.Type {
		case "ping":
			// Heartbeat goes straight back, not through the hub
			select {
			case c.send <- Event{Type: "pong", Timestamp: time.Now().UnixMilli()}:
			default:
			}
		default:
			event.UserID = c.userID
			event.Timestamp = time.Now().UnixMilli()
			hub.relay(c, event)
		}
	}
}
