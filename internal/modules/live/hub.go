package live

import (
	"sync"

	"github.com/gorilla/websocket"
)

// client pairs a connection with the date it watches and a write lock.
// gorilla/websocket allows at most one concurrent writer per connection,
// and broadcasts arrive from arbitrary request goroutines.
type client struct {
	conn  *websocket.Conn
	date  string
	write sync.Mutex
}

// Hub tracks connected clients and the date each one is watching.
// Broadcasts go only to clients watching the event's date; a client with
// no watch set receives nothing until it sends one.
type Hub struct {
	clients map[*websocket.Conn]*client
	mutex   sync.RWMutex
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
	}
}

func (h *Hub) Register(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	h.clients[conn] = &client{conn: conn}
}

func (h *Hub) Unregister(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if _, exists := h.clients[conn]; exists {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

func (h *Hub) Watch(conn *websocket.Conn, date string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if c, exists := h.clients[conn]; exists {
		c.date = date
	}
}

func (h *Hub) WatcherCount() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	return len(h.clients)
}

// Broadcast sends the event to every client watching its date. Each
// client's write lock is held across WriteJSON so concurrent broadcasts
// never interleave frames on one connection. Write failures drop the
// client.
func (h *Hub) Broadcast(event Event) {
	h.mutex.RLock()
	targets := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		if c.date == event.Date {
			targets = append(targets, c)
		}
	}
	h.mutex.RUnlock()

	for _, c := range targets {
		c.write.Lock()
		err := c.conn.WriteJSON(event)
		c.write.Unlock()
		if err != nil {
			h.Unregister(c.conn)
		}
	}
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}
