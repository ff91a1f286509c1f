package realtime

import (
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub fans change notifications out to every connected client. The payload
// names only the collection that changed; clients are expected to re-fetch,
// so multiple terminals and kiosk tabs stay consistent without diffing.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]*wsConn
}

func NewHub() *Hub {
	return &Hub{clients: make(map[string]*wsConn)}
}

// wsConn wraps a websocket connection with a write mutex to serialize writes.
type wsConn struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

// Register adds a client connection, closing any previous one with the same id.
func (h *Hub) Register(clientID string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if old, ok := h.clients[clientID]; ok {
		old.conn.Close()
	}
	h.clients[clientID] = &wsConn{conn: conn}
}

// Unregister closes and removes a client connection.
func (h *Hub) Unregister(clientID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if c, ok := h.clients[clientID]; ok {
		c.conn.Close()
		delete(h.clients, clientID)
	}
}

// ChangePayload tells clients which collection changed. It carries no row
// data on purpose.
type ChangePayload struct {
	Table string `json:"table"`
}

// NotifyChanged broadcasts a change notification for one collection. Clients
// whose writes fail are dropped.
func (h *Hub) NotifyChanged(table string) {
	h.mu.RLock()
	conns := make(map[string]*wsConn, len(h.clients))
	for id, c := range h.clients {
		conns[id] = c
	}
	h.mu.RUnlock()

	msg := map[string]any{"event": "changed", "data": ChangePayload{Table: table}}
	for id, wc := range conns {
		wc.mu.Lock()
		err := wc.conn.WriteJSON(msg)
		wc.mu.Unlock()
		if err != nil {
			log.Printf("ws: write to client %s failed for table %s: %v", id, table, err)
			h.Unregister(id)
		}
	}
}
