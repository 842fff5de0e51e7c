// Package monitor broadcasts terminal delivery outcomes to connected
// admin dashboards over WebSocket.
package monitor

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
	"github.com/sirupsen/logrus"

	"github.com/noshahi-devs/notification-service/internal/engine"
)

const maxConnections = 32

// Hub tracks subscribed WebSocket connections and fans outcomes out to
// all of them.
type Hub struct {
	mu     sync.Mutex
	conns  map[*websocket.Conn]bool
	logger *logrus.Logger
}

func NewHub(logger *logrus.Logger) *Hub {
	return &Hub{
		conns:  make(map[*websocket.Conn]bool),
		logger: logger,
	}
}

// Add registers a connection. Connections beyond the cap are refused.
func (h *Hub) Add(conn *websocket.Conn) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if len(h.conns) >= maxConnections {
		h.logger.Warnf("Monitor connection limit reached, refusing subscriber")
		return false
	}
	h.conns[conn] = true
	h.logger.Infof("Monitor subscriber added (total: %d)", len(h.conns))
	return true
}

// Remove unregisters a connection.
func (h *Hub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
	h.logger.Infof("Monitor subscriber removed (remaining: %d)", len(h.conns))
}

// Publish sends one outcome to every subscriber, dropping connections
// that fail to accept the write.
func (h *Hub) Publish(outcome engine.Outcome) {
	payload, err := json.Marshal(outcome)
	if err != nil {
		h.logger.Errorf("Failed to marshal outcome: %v", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
			h.logger.Errorf("Failed to push outcome to monitor subscriber: %v", err)
			_ = conn.Close()
			delete(h.conns, conn)
		}
	}
}
