package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
)

// Event is the envelope pushed to connected clients
type Event struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
	User interface{} `json:"user,omitempty"`
}

// Hub fans catalog events out to connected websocket clients.
// A single Run goroutine owns the channels; the client map is
// mutex-guarded because writes happen from the broadcast path.
type Hub struct {
	clients    map[*websocket.Conn]struct{}
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	broadcast  chan []byte
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*websocket.Conn]struct{}),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
		broadcast:  make(chan []byte, 16),
	}
}

// Attach registers a client connection
func (h *Hub) Attach(conn *websocket.Conn) {
	h.register <- conn
}

// Detach removes and closes a client connection
func (h *Hub) Detach(conn *websocket.Conn) {
	h.unregister <- conn
}

// Publish marshals and broadcasts an event to all clients.
// Marshal errors are logged and dropped; a push feed has no caller
// that could act on them.
func (h *Hub) Publish(event Event) {
	msg, err := json.Marshal(event)
	if err != nil {
		log.Printf("ws: failed to marshal %s event: %v", event.Type, err)
		return
	}
	h.broadcast <- msg
}

func (h *Hub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = struct{}{}
			h.mu.Unlock()
			log.Println("New WS client connected")

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}
