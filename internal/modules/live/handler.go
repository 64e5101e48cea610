package live

import (
	"log"
	"net/http"

	"fieldbook/internal/slot"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type Handler struct {
	hub      *Hub
	upgrader websocket.Upgrader
}

func NewHandler(hub *Hub) *Handler {
	return &Handler{
		hub: hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Browser origin filtering happens in the CORS layer; the
			// socket itself is behind JWT auth.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", h.Serve)
}

// Serve upgrades the connection and reads watch requests until the
// client goes away. Writes happen from the hub on booking events.
func (h *Handler) Serve(c *gin.Context) {
	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws_upgrade_failed client_ip=%s error=%q", c.ClientIP(), err.Error())
		return
	}

	h.hub.Register(conn)
	defer h.hub.Unregister(conn)

	for {
		var req WatchRequest
		if err := conn.ReadJSON(&req); err != nil {
			return
		}
		if slot.ValidDate(req.Date) {
			h.hub.Watch(conn, req.Date)
		}
	}
}
