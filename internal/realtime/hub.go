package realtime

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"broadcast-srv/internal/broadcast"
	pkgLog "broadcast-srv/pkg/log"
)

// subscription is a hub-internal request to attach a connection to a
// channel. Authorization already happened in the connection's read pump;
// member is non-nil for presence subscriptions.
type subscription struct {
	conn    *Connection
	channel broadcast.Channel
	member  *broadcast.PresenceMember
}

type unsubscription struct {
	conn *Connection
	wire string
}

// channelMessage fans a frame out to every subscriber of a wire channel.
type channelMessage struct {
	wire  string
	frame *Frame
}

// userMessage delivers a frame to every connection of one principal.
type userMessage struct {
	userID int64
	frame  *Frame
}

// Hub maintains the set of active connections, their channel subscriptions
// and presence membership, and fans frames out to them.
type Hub struct {
	// Registered connections (userID -> []*Connection for multiple tabs)
	connections map[int64][]*Connection
	// Channel subscriptions (wire channel -> subscribed connections)
	subscribers map[string]map[*Connection]struct{}
	// Presence membership (wire channel -> connection -> member data)
	presence map[string]map[*Connection]broadcast.PresenceMember
	mu       sync.RWMutex

	register    chan *Connection
	unregister  chan *Connection
	subscribe   chan *subscription
	unsubscribe chan *unsubscription
	broadcast   chan *channelMessage
	direct      chan *userMessage

	totalMessagesSent   atomic.Int64
	totalMessagesFailed atomic.Int64

	maxConnections int

	l pkgLog.Logger

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewHub creates a hub. Run must be called before connections register.
func NewHub(l pkgLog.Logger, maxConnections int) *Hub {
	ctx, cancel := context.WithCancel(context.Background())

	return &Hub{
		connections:    make(map[int64][]*Connection),
		subscribers:    make(map[string]map[*Connection]struct{}),
		presence:       make(map[string]map[*Connection]broadcast.PresenceMember),
		register:       make(chan *Connection, 100),
		unregister:     make(chan *Connection, 100),
		subscribe:      make(chan *subscription, 100),
		unsubscribe:    make(chan *unsubscription, 100),
		broadcast:      make(chan *channelMessage, 1000),
		direct:         make(chan *userMessage, 1000),
		maxConnections: maxConnections,
		l:              l,
		ctx:            ctx,
		cancel:         cancel,
		done:           make(chan struct{}),
	}
}

// Run starts the hub's main loop.
func (h *Hub) Run() {
	defer close(h.done)

	for {
		select {
		case <-h.ctx.Done():
			h.l.Info(context.Background(), "Hub shutting down")
			h.closeAllConnections()
			return

		case conn := <-h.register:
			h.registerConnection(conn)

		case conn := <-h.unregister:
			h.unregisterConnection(conn)

		case sub := <-h.subscribe:
			h.subscribeConnection(sub)

		case unsub := <-h.unsubscribe:
			h.unsubscribeConnection(unsub.conn, unsub.wire, true)

		case msg := <-h.broadcast:
			h.broadcastToChannel(msg)

		case msg := <-h.direct:
			h.sendToUser(msg)
		}
	}
}

// Broadcast fans a frame out to the wire channel's subscribers.
func (h *Hub) Broadcast(wire string, frame *Frame) {
	select {
	case h.broadcast <- &channelMessage{wire: wire, frame: frame}:
	case <-time.After(time.Second):
		h.l.Warnf(context.Background(), "Timeout broadcasting to channel %s", wire)
		h.totalMessagesFailed.Add(1)
	}
}

// SendToUser delivers a frame to every connection of one principal; a
// principal with no connections is skipped silently.
func (h *Hub) SendToUser(userID int64, frame *Frame) {
	select {
	case h.direct <- &userMessage{userID: userID, frame: frame}:
	case <-time.After(time.Second):
		h.l.Warnf(context.Background(), "Timeout sending to user %d", userID)
		h.totalMessagesFailed.Add(1)
	}
}

func (h *Hub) registerConnection(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.totalConnectionsLocked() >= h.maxConnections {
		h.l.Warnf(context.Background(), "Max connections reached, rejecting user %d", conn.scope.UserID)
		go conn.Close()
		return
	}

	h.connections[conn.scope.UserID] = append(h.connections[conn.scope.UserID], conn)

	h.l.Infof(context.Background(), "User %d connected (total connections: %d)",
		conn.scope.UserID, h.totalConnectionsLocked())
}

func (h *Hub) unregisterConnection(conn *Connection) {
	h.mu.Lock()
	defer h.mu.Unlock()

	conns, ok := h.connections[conn.scope.UserID]
	if !ok {
		return
	}

	for i, c := range conns {
		if c == conn {
			h.connections[conn.scope.UserID] = append(conns[:i], conns[i+1:]...)
			if len(h.connections[conn.scope.UserID]) == 0 {
				delete(h.connections, conn.scope.UserID)
			}

			h.dropSubscriptionsLocked(conn)
			// Closing done (not send) ends the write pump; commands for
			// this connection still queued in the hub become no-ops.
			conn.Close()

			h.l.Infof(context.Background(), "User %d disconnected (total connections: %d)",
				conn.scope.UserID, h.totalConnectionsLocked())
			break
		}
	}
}

func (h *Hub) subscribeConnection(sub *subscription) {
	h.mu.Lock()
	defer h.mu.Unlock()

	// A subscribe can be queued behind the same connection's unregister;
	// attaching it would leave a dead subscriber in the channel maps.
	if !h.isRegisteredLocked(sub.conn) {
		return
	}

	wire := sub.channel.Wire()
	if h.subscribers[wire] == nil {
		h.subscribers[wire] = make(map[*Connection]struct{})
	}
	h.subscribers[wire][sub.conn] = struct{}{}

	if sub.channel.Kind == broadcast.KindPresence && sub.member != nil {
		if h.presence[wire] == nil {
			h.presence[wire] = make(map[*Connection]broadcast.PresenceMember)
		}

		// Snapshot current members before adding, so the joiner's ack
		// lists who was already here.
		members := h.presenceMembersLocked(wire)
		h.presence[wire][sub.conn] = *sub.member

		h.ackSubscriptionLocked(sub.conn, wire, map[string]any{
			"channel": wire,
			"members": append(members, *sub.member),
		})
		h.fanoutEventLocked(wire, EventPresenceJoined, map[string]any{
			"member": *sub.member,
		}, sub.conn)
		return
	}

	h.ackSubscriptionLocked(sub.conn, wire, map[string]any{
		"channel": wire,
	})
}

// unsubscribeConnection detaches one channel. lock is false when the
// caller already holds the mutex.
func (h *Hub) unsubscribeConnection(conn *Connection, wire string, lock bool) {
	if lock {
		h.mu.Lock()
		defer h.mu.Unlock()
	}

	subs, ok := h.subscribers[wire]
	if !ok {
		return
	}
	if _, ok := subs[conn]; !ok {
		return
	}

	delete(subs, conn)
	if len(subs) == 0 {
		delete(h.subscribers, wire)
	}

	if members, ok := h.presence[wire]; ok {
		if member, joined := members[conn]; joined {
			delete(members, conn)
			if len(members) == 0 {
				delete(h.presence, wire)
			}
			h.fanoutEventLocked(wire, EventPresenceLeft, map[string]any{
				"member": member,
			}, conn)
		}
	}
}

func (h *Hub) dropSubscriptionsLocked(conn *Connection) {
	for wire := range h.subscribers {
		h.unsubscribeConnection(conn, wire, false)
	}
}

func (h *Hub) broadcastToChannel(msg *channelMessage) {
	h.mu.RLock()
	conns := make([]*Connection, 0, len(h.subscribers[msg.wire]))
	for conn := range h.subscribers[msg.wire] {
		conns = append(conns, conn)
	}
	h.mu.RUnlock()

	if len(conns) == 0 {
		return
	}

	data, err := msg.frame.ToJSON()
	if err != nil {
		h.l.Errorf(context.Background(), "Failed to marshal frame: %v", err)
		h.totalMessagesFailed.Add(1)
		return
	}

	for _, conn := range conns {
		h.deliver(conn, data)
	}
}

func (h *Hub) sendToUser(msg *userMessage) {
	h.mu.RLock()
	conns := append([]*Connection(nil), h.connections[msg.userID]...)
	h.mu.RUnlock()

	if len(conns) == 0 {
		return
	}

	data, err := msg.frame.ToJSON()
	if err != nil {
		h.l.Errorf(context.Background(), "Failed to marshal frame: %v", err)
		h.totalMessagesFailed.Add(1)
		return
	}

	for _, conn := range conns {
		h.deliver(conn, data)
	}
}

func (h *Hub) deliver(conn *Connection, data []byte) {
	select {
	case <-conn.done:
		h.totalMessagesFailed.Add(1)
		return
	default:
	}

	select {
	case conn.send <- data:
		h.totalMessagesSent.Add(1)
	default:
		h.l.Warnf(context.Background(), "Send buffer full for user %d, dropping frame", conn.scope.UserID)
		h.totalMessagesFailed.Add(1)
	}
}

func (h *Hub) ackSubscriptionLocked(conn *Connection, wire string, data map[string]any) {
	frame, err := NewFrame(EventSubscriptionSucceeded, wire, data)
	if err != nil {
		h.l.Errorf(context.Background(), "Failed to build subscription ack: %v", err)
		return
	}
	raw, err := frame.ToJSON()
	if err != nil {
		h.l.Errorf(context.Background(), "Failed to marshal subscription ack: %v", err)
		return
	}
	h.deliver(conn, raw)
}

// fanoutEventLocked pushes an event to every subscriber of wire except skip.
func (h *Hub) fanoutEventLocked(wire, event string, data map[string]any, skip *Connection) {
	frame, err := NewFrame(event, wire, data)
	if err != nil {
		h.l.Errorf(context.Background(), "Failed to build %s frame: %v", event, err)
		return
	}
	raw, err := frame.ToJSON()
	if err != nil {
		h.l.Errorf(context.Background(), "Failed to marshal %s frame: %v", event, err)
		return
	}

	for conn := range h.subscribers[wire] {
		if conn == skip {
			continue
		}
		h.deliver(conn, raw)
	}
}

func (h *Hub) presenceMembersLocked(wire string) []broadcast.PresenceMember {
	members := make([]broadcast.PresenceMember, 0, len(h.presence[wire]))
	for _, m := range h.presence[wire] {
		members = append(members, m)
	}
	return members
}

func (h *Hub) closeAllConnections() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, conns := range h.connections {
		for _, conn := range conns {
			conn.Close()
		}
	}

	h.connections = make(map[int64][]*Connection)
	h.subscribers = make(map[string]map[*Connection]struct{})
	h.presence = make(map[string]map[*Connection]broadcast.PresenceMember)
}

func (h *Hub) isRegisteredLocked(conn *Connection) bool {
	for _, c := range h.connections[conn.scope.UserID] {
		if c == conn {
			return true
		}
	}
	return false
}

func (h *Hub) totalConnectionsLocked() int {
	total := 0
	for _, conns := range h.connections {
		total += len(conns)
	}
	return total
}

// Stats returns a snapshot of hub counters.
func (h *Hub) Stats() HubStats {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return HubStats{
		ActiveConnections:   h.totalConnectionsLocked(),
		UniqueUsers:         len(h.connections),
		ActiveChannels:      len(h.subscribers),
		TotalMessagesSent:   h.totalMessagesSent.Load(),
		TotalMessagesFailed: h.totalMessagesFailed.Load(),
	}
}

// Shutdown gracefully stops the hub.
func (h *Hub) Shutdown(ctx context.Context) error {
	h.cancel()

	select {
	case <-h.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// HubStats is a snapshot of hub counters.
type HubStats struct {
	ActiveConnections   int   `json:"active_connections"`
	UniqueUsers         int   `json:"unique_users"`
	ActiveChannels      int   `json:"active_channels"`
	TotalMessagesSent   int64 `json:"total_messages_sent"`
	TotalMessagesFailed int64 `json:"total_messages_failed"`
}
