package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/elitephnrepair2-cpu/crm-app/realtime"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// WSHandler lets clients subscribe to the change feed.
type WSHandler struct {
	hub *realtime.Hub
}

func NewWSHandler(hub *realtime.Hub) *WSHandler { return &WSHandler{hub: hub} }

// Subscribe upgrades to WS and registers the connection. The read loop only
// watches for disconnects; clients send nothing we act on.
func (h *WSHandler) Subscribe() gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			return
		}
		clientID := uuid.NewString()
		h.hub.Register(clientID, conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.hub.Unregister(clientID)
				break
			}
		}
	}
}
