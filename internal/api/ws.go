package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(*http.Request) bool { return true },
}

// MonitorSocket upgrades the connection and subscribes it to terminal
// delivery outcomes. The read loop exists only to detect the peer
// closing; subscribers never send payloads.
func (h *Handler) MonitorSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.logger.Errorf("Monitor upgrade failed: %v", err)
		return
	}

	if !h.hub.Add(conn) {
		_ = conn.Close()
		return
	}

	go func() {
		defer func() {
			h.hub.Remove(conn)
			_ = conn.Close()
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
