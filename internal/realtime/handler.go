package realtime

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"broadcast-srv/internal/broadcast"
	"broadcast-srv/internal/model"
	pkgLog "broadcast-srv/pkg/log"
	"broadcast-srv/pkg/scope"
)

// Handler upgrades HTTP requests to WebSocket sessions.
type Handler struct {
	hub        *Hub
	scopeMgr   scope.Manager
	authz      broadcast.Authorizer
	l          pkgLog.Logger
	cfg        HandlerConfig
	upgrader   websocket.Upgrader
	cookieName string
}

// HandlerConfig holds the WebSocket endpoint configuration.
type HandlerConfig struct {
	ConnConfig
	ReadBufferSize  int
	WriteBufferSize int
	CookieName      string
}

// NewHandler creates the WebSocket handler.
func NewHandler(hub *Hub, scopeMgr scope.Manager, authz broadcast.Authorizer, l pkgLog.Logger, cfg HandlerConfig) *Handler {
	return &Handler{
		hub:      hub,
		scopeMgr: scopeMgr,
		authz:    authz,
		l:        l,
		cfg:      cfg,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  cfg.ReadBufferSize,
			WriteBufferSize: cfg.WriteBufferSize,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
		cookieName: cfg.CookieName,
	}
}

// HandleWebSocket authenticates the request, upgrades it, and registers the
// connection with the hub. The session token comes from the token query
// parameter or the auth cookie.
//
//	@Summary		Open a realtime connection
//	@Description	Upgrades to WebSocket; subscriptions are per-channel client commands
//	@Tags			realtime
//	@Param			token	query	string	false	"Session token (falls back to auth cookie)"
//	@Success		101
//	@Failure		401	{object}	response.Resp	"Missing or invalid token"
//	@Router			/ws [get]
func (h *Handler) HandleWebSocket(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		if cookie, err := c.Cookie(h.cookieName); err == nil {
			token = cookie
		}
	}
	if token == "" {
		h.l.Warn(context.Background(), "WebSocket connection rejected: missing token")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	payload, err := h.scopeMgr.Verify(token)
	if err != nil {
		h.l.Warnf(context.Background(), "WebSocket connection rejected: invalid token - %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired token"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		h.l.Errorf(context.Background(), "Failed to upgrade connection: %v", err)
		return
	}

	sc := model.Scope{
		UserID: payload.UserID,
		Name:   payload.Name,
		JTI:    payload.JTI,
	}

	connection := NewConnection(h.hub, conn, sc, h.authz, h.cfg.ConnConfig, h.l)

	h.hub.register <- connection
	connection.Start()

	h.l.Infof(context.Background(), "WebSocket connection established for user %d", sc.UserID)
}

// RegisterRoutes mounts the WebSocket endpoint.
func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/ws", h.HandleWebSocket)
}
