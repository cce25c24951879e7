package broadcast

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var stamp = time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)

func TestNewPublicAnnouncement(t *testing.T) {
	evt := NewPublicAnnouncement("hello", stamp)

	assert.Equal(t, KindPublicAnnouncement, evt.Kind())
	assert.Equal(t, Announcements(), evt.Channel())
	assert.Equal(t, map[string]any{
		"message":   "hello",
		"timestamp": "2024-06-01T12:30:00Z",
	}, evt.Payload())
}

func TestNewOrderStatusUpdate(t *testing.T) {
	evt := NewOrderStatusUpdate(5, "Shipped", stamp)

	assert.Equal(t, KindOrderStatusUpdate, evt.Kind())
	assert.Equal(t, Orders(5), evt.Channel())
	assert.Equal(t, map[string]any{
		"orderId":   int64(5),
		"status":    "Shipped",
		"timestamp": "2024-06-01T12:30:00Z",
	}, evt.Payload())
}

func TestNewChatMessage(t *testing.T) {
	evt := NewChatMessage("Alice", "Hello everyone!", stamp)

	assert.Equal(t, KindChatMessage, evt.Kind())
	assert.Equal(t, ChatRoom(), evt.Channel())
	assert.Equal(t, map[string]any{
		"userName":  "Alice",
		"message":   "Hello everyone!",
		"timestamp": "2024-06-01T12:30:00Z",
	}, evt.Payload())
}

func TestNewPostUpdated(t *testing.T) {
	evt := NewPostUpdated(3, "Updated at 12:30:00", "body", stamp)

	assert.Equal(t, KindPostUpdated, evt.Kind())
	assert.Equal(t, PostChannel(3), evt.Channel())
	assert.Equal(t, map[string]any{
		"id":        int64(3),
		"title":     "Updated at 12:30:00",
		"body":      "body",
		"timestamp": "2024-06-01T12:30:00Z",
	}, evt.Payload())
}

// The payload is fixed at construction; repeated calls must not drift even
// as wall time moves on.
func TestEventPayloadIsDeterministic(t *testing.T) {
	evt := NewOrderStatusUpdate(1, "Processing", stamp)

	first := evt.Payload()
	time.Sleep(5 * time.Millisecond)
	second := evt.Payload()

	assert.Equal(t, first, second)
}

func TestNewNotification(t *testing.T) {
	n := NewNotification("New Notification", "body text", stamp)

	assert.Equal(t, map[string]any{
		"title":     "New Notification",
		"body":      "body text",
		"timestamp": "2024-06-01T12:30:00Z",
	}, n.Payload())
}
