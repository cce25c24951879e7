package realtime

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"broadcast-srv/internal/broadcast"
	"broadcast-srv/internal/model"
)

type mockAuthorizer struct {
	mock.Mock
}

func (m *mockAuthorizer) Authorize(ctx context.Context, principal *model.Scope, channel string) (broadcast.Decision, error) {
	args := m.Called(ctx, principal, channel)
	return args.Get(0).(broadcast.Decision), args.Error(1)
}

// commandConn builds a connection wired for handleCommand without a socket.
func commandConn(hub *Hub, authz broadcast.Authorizer) *Connection {
	conn := testConn(1, "Alice")
	conn.hub = hub
	conn.authz = authz
	conn.l = noopLogger{}
	return conn
}

func TestHandleCommandDeniedSubscription(t *testing.T) {
	hub := NewHub(noopLogger{}, 100)
	authz := &mockAuthorizer{}
	authz.On("Authorize", mock.Anything, mock.Anything, "orders.2").
		Return(broadcast.Deny(), nil)

	conn := commandConn(hub, authz)
	conn.handleCommand([]byte(`{"action":"subscribe","channel":"private-orders.2"}`))

	frame := recvFrame(t, conn)
	assert.Equal(t, EventSubscriptionError, frame.Event)
	assert.Equal(t, "private-orders.2", frame.Channel)
	assert.JSONEq(t, `{"message":"forbidden"}`, string(frame.Data))

	// A denied command never reaches the hub.
	assert.Empty(t, hub.subscribe)
	authz.AssertExpectations(t)
}

func TestHandleCommandAllowedSubscriptionReachesHub(t *testing.T) {
	hub := NewHub(noopLogger{}, 100)
	authz := &mockAuthorizer{}
	authz.On("Authorize", mock.Anything, mock.Anything, "chat-room").
		Return(broadcast.AllowWithPresence(broadcast.PresenceMember{ID: 1, Name: "Alice"}), nil)

	conn := commandConn(hub, authz)
	conn.handleCommand([]byte(`{"action":"subscribe","channel":"presence-chat-room"}`))

	select {
	case sub := <-hub.subscribe:
		assert.Same(t, conn, sub.conn)
		assert.Equal(t, broadcast.KindPresence, sub.channel.Kind)
		require.NotNil(t, sub.member)
		assert.Equal(t, broadcast.PresenceMember{ID: 1, Name: "Alice"}, *sub.member)
	default:
		t.Fatal("subscription not queued for the hub")
	}
	assert.Empty(t, conn.send)
}

func TestHandleCommandMalformed(t *testing.T) {
	authz := &mockAuthorizer{}
	conn := commandConn(NewHub(noopLogger{}, 100), authz)

	conn.handleCommand([]byte(`not json`))

	frame := recvFrame(t, conn)
	assert.Equal(t, EventSubscriptionError, frame.Event)
	authz.AssertNotCalled(t, "Authorize", mock.Anything, mock.Anything, mock.Anything)
}

func TestConnectionCloseIsIdempotent(t *testing.T) {
	conn := testConn(1, "Alice")

	require.NotPanics(t, func() {
		conn.Close()
		conn.Close()
	})

	select {
	case <-conn.done:
	default:
		t.Fatal("done not closed")
	}
}
