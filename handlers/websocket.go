package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"bank-portal/middleware"
	"bank-portal/services"
	"bank-portal/ws"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// incomingMessage is what a browser may send over the notification socket.
type incomingMessage struct {
	Type string `json:"type"` // dismiss | clear | heartbeat
	ID   string `json:"id,omitempty"`
}

// WSHandler groups dependencies for websocket flows
type WSHandler struct {
	mgr      *ws.Manager
	notifier *services.Notifier
}

func NewWSHandler(mgr *ws.Manager, notifier *services.Notifier) *WSHandler {
	return &WSHandler{mgr: mgr, notifier: notifier}
}

// The default CheckOrigin only accepts same-origin upgrades; the socket is
// keyed on the visitor cookie so cross-site pages must not open it.
var upgrader = websocket.Upgrader{}

// HandleNotificationsWS upgrades to websocket and streams toast events to the visitor
// GET /ws/notifications
func (h *WSHandler) HandleNotificationsWS(c *gin.Context) {
	visitorID := middleware.VisitorID(c)
	if visitorID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing visitor"})
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.Warn("websocket upgrade failed", "visitor", visitorID, "error", err)
		return
	}
	registered := h.mgr.Register(visitorID, conn)
	slog.Debug("notification socket opened", "visitor", visitorID)

	defer func() {
		h.mgr.Unregister(visitorID, registered)
		slog.Debug("notification socket closed", "visitor", visitorID)
	}()

	for {
		mt, message, err := conn.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				slog.Debug("notification socket read error", "visitor", visitorID, "error", err)
			}
			return
		}
		if mt != websocket.TextMessage {
			continue
		}

		var msg incomingMessage
		if err := json.Unmarshal(message, &msg); err != nil {
			slog.Debug("invalid json on notification socket", "visitor", visitorID, "error", err)
			continue
		}

		switch msg.Type {
		case "dismiss":
			if msg.ID != "" {
				h.notifier.Remove(visitorID, msg.ID)
			}
		case "clear":
			h.notifier.Clear(visitorID)
		case "heartbeat":
			// Keeps proxies from idling the connection out.
		default:
			slog.Debug("unknown message type on notification socket", "visitor", visitorID, "type", msg.Type)
		}
	}
}

// GetConnectedVisitors GET /api/v1/notifications/connected
func (h *WSHandler) GetConnectedVisitors(c *gin.Context) {
	visitors := h.mgr.List()
	c.JSON(http.StatusOK, gin.H{"visitors": visitors, "count": len(visitors)})
}
