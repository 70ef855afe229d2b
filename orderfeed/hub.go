package orderfeed

import (
	"encoding/json"
	"log"
	"sync"
	"time"
)

// Event is one entry on the admin live feed.
type Event struct {
	Type      string  `json:"type"` // "order_created" or "status_changed"
	OrderID   string  `json:"orderId"`
	Status    string  `json:"status"`
	Total     float64 `json:"total,omitempty"`
	Timestamp int64   `json:"timestamp"`
}

type Client struct {
	Send chan []byte
}

// Hub fans order events out to every connected admin dashboard.
type Hub struct {
	clients    map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			h.clients[c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if h.clients[c] {
				delete(h.clients, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case data := <-h.broadcast:
			h.mu.Lock()
			for c := range h.clients {
				select {
				case c.Send <- data:
				default:
					close(c.Send)
					delete(h.clients, c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for c := range h.clients {
				close(c.Send)
				delete(h.clients, c)
			}
			h.mu.Unlock()
			return
		}
	}
}

func (h *Hub) Stop() {
	close(h.done)
}

// add registers a client. It reports false when the hub has already
// stopped, so connection goroutines never block on a dead hub.
func (h *Hub) add(c *Client) bool {
	select {
	case h.register <- c:
		return true
	case <-h.done:
		return false
	}
}

// remove unregisters a client; a no-op after Stop.
func (h *Hub) remove(c *Client) {
	select {
	case h.unregister <- c:
	case <-h.done:
	}
}

// Broadcast queues an event for every connected client. Safe to call
// from request handlers; a stopped hub drops the event.
func (h *Hub) Broadcast(event Event) {
	event.Timestamp = time.Now().Unix()
	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("orderfeed marshal error: %v", err)
		return
	}
	select {
	case h.broadcast <- data:
	case <-h.done:
	}
}
