package handlers

import (
	"log"
	"net/http"
	"strconv"

	"lingua-exam-backend/internal/services"
	"lingua-exam-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

type WSHandler struct {
	hub            *ws.Hub
	sessionService *services.SessionService
}

func NewWSHandler(hub *ws.Hub, sessionService *services.SessionService) *WSHandler {
	return &WSHandler{hub: hub, sessionService: sessionService}
}

// HandleSessionWebSocket streams scoring lifecycle events for one session.
func (h *WSHandler) HandleSessionWebSocket(c *gin.Context) {
	sessionID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session id"})
		return
	}
	if _, err := h.sessionService.GetSession(uint(sessionID)); err != nil {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("websocket upgrade error: %v", err)
		return
	}

	h.hub.AddConnection(uint(sessionID), conn)
	defer h.hub.RemoveConnection(uint(sessionID), conn)

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			break
		}
	}
}
