package realtime

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"broadcast-srv/internal/broadcast"
	"broadcast-srv/internal/model"
	pkgLog "broadcast-srv/pkg/log"

	"github.com/gorilla/websocket"
)

// Connection is one WebSocket session for an authenticated principal.
type Connection struct {
	hub *Hub

	conn *websocket.Conn

	// Principal resolved from the session token at upgrade time.
	scope model.Scope

	authz broadcast.Authorizer

	// Buffered channel of outbound frames.
	send chan []byte

	pongWait       time.Duration
	pingPeriod     time.Duration
	writeWait      time.Duration
	maxMessageSize int64

	l pkgLog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewConnection creates a connection bound to a hub and principal.
func NewConnection(
	hub *Hub,
	conn *websocket.Conn,
	sc model.Scope,
	authz broadcast.Authorizer,
	cfg ConnConfig,
	l pkgLog.Logger,
) *Connection {
	return &Connection{
		hub:            hub,
		conn:           conn,
		scope:          sc,
		authz:          authz,
		send:           make(chan []byte, 256),
		pongWait:       cfg.PongWait,
		pingPeriod:     cfg.PingPeriod,
		writeWait:      cfg.WriteWait,
		maxMessageSize: cfg.MaxMessageSize,
		l:              l,
		done:           make(chan struct{}),
	}
}

// ConnConfig holds per-connection timing limits.
type ConnConfig struct {
	PongWait       time.Duration
	PingPeriod     time.Duration
	WriteWait      time.Duration
	MaxMessageSize int64
}

// Start starts the connection's read and write pumps.
func (c *Connection) Start() {
	go c.writePump()
	go c.readPump()
}

// Close closes the connection. The hub, the upgrade handler and the read
// pump can all reach it; only the first call does anything.
func (c *Connection) Close() {
	c.closeOnce.Do(func() {
		close(c.done)
		if c.conn != nil {
			c.conn.Close()
		}
	})
}

// readPump reads subscription commands from the client. It is the
// connection's only reader; it also keeps the pong deadline alive so
// disconnections are detected.
func (c *Connection) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(c.pongWait))
		return nil
	})
	c.conn.SetReadLimit(c.maxMessageSize)

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				c.l.Errorf(context.Background(), "WebSocket read error for user %d: %v", c.scope.UserID, err)
			}
			break
		}

		c.handleCommand(message)
	}
}

// handleCommand runs one client command. Authorization runs here, in the
// connection's own goroutine, so a slow ownership lookup never stalls the
// hub loop.
func (c *Connection) handleCommand(message []byte) {
	ctx := context.Background()

	var cmd Command
	if err := json.Unmarshal(message, &cmd); err != nil {
		c.l.Debugf(ctx, "Malformed command from user %d: %v", c.scope.UserID, err)
		c.sendError("", "malformed command")
		return
	}
	if err := cmd.Validate(); err != nil {
		c.sendError(cmd.Channel, "invalid command")
		return
	}

	ch := broadcast.ParseWire(cmd.Channel)

	if cmd.Action == ActionUnsubscribe {
		c.hub.unsubscribe <- &unsubscription{conn: c, wire: ch.Wire()}
		return
	}

	decision, err := c.authz.Authorize(ctx, &c.scope, ch.Name)
	if err != nil {
		c.l.Errorf(ctx, "internal.realtime.handleCommand: %v", err)
		c.sendError(cmd.Channel, "authorization failed")
		return
	}
	if !decision.Allowed {
		c.sendError(cmd.Channel, "forbidden")
		return
	}

	c.hub.subscribe <- &subscription{conn: c, channel: ch, member: decision.Member}
}

func (c *Connection) sendError(channel, reason string) {
	frame, err := NewFrame(EventSubscriptionError, channel, map[string]any{
		"message": reason,
	})
	if err != nil {
		return
	}
	raw, err := frame.ToJSON()
	if err != nil {
		return
	}

	select {
	case c.send <- raw:
	default:
	}
}

// writePump writes frames and pings to the socket. It is the connection's
// only writer.
func (c *Connection) writePump() {
	ticker := time.NewTicker(c.pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}

		case <-c.done:
			c.conn.SetWriteDeadline(time.Now().Add(c.writeWait))
			c.conn.WriteMessage(websocket.CloseMessage, []byte{})
			return
		}
	}
}
