// cmd/credlens/ws.go
package main

import (
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// wsHub broadcasts pipeline progress events to connected dashboard
// clients. Slow or dead clients are dropped, never waited on.
type wsHub struct {
	upgrader websocket.Upgrader
	mutex    sync.Mutex
	clients  map[*websocket.Conn]bool
}

func newWSHub() *wsHub {
	return &wsHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		clients: make(map[*websocket.Conn]bool),
	}
}

// Handle upgrades the connection and registers the client.
func (h *wsHub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		Logger().Warning("Websocket upgrade failed: %v", err)
		return
	}

	h.mutex.Lock()
	h.clients[conn] = true
	h.mutex.Unlock()

	// Reader loop only exists to notice the close.
	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// Broadcast sends a progress event to every connected client.
func (h *wsHub) Broadcast(event string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	payload := map[string]string{
		"event": event,
		"time":  time.Now().Format(time.RFC3339),
	}
	for conn := range h.clients {
		conn.SetWriteDeadline(time.Now().Add(2 * time.Second))
		if err := conn.WriteJSON(payload); err != nil {
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *wsHub) drop(conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	conn.Close()
	delete(h.clients, conn)
}
