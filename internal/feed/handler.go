package feed

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	ws "github.com/ringsidehq/boxing-platform/pkg/http/ws"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// The feed is read-only and carries no credentials.
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// Handler upgrades feed subscribers onto the hub.
type Handler struct {
	hub    *ws.Hub
	logger zerolog.Logger
}

// NewHandler constructs the fight feed WebSocket handler.
func NewHandler(hub *ws.Hub, logger zerolog.Logger) *Handler {
	return &Handler{
		hub:    hub,
		logger: logger.With().Str("component", "fight_feed_ws").Logger(),
	}
}

// Subscribe handles GET /api/ws/fights.
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}

	id := uuid.New()
	wsConn := ws.NewConnection(conn, h.logger)
	h.hub.Register(id, wsConn)

	go wsConn.WritePump()
	go func() {
		wsConn.ReadPump()
		h.hub.Unregister(id)
	}()
}
