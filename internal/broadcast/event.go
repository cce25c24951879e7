package broadcast

import "time"

// Event kind tags carried on the wire.
const (
	KindPublicAnnouncement = "PublicAnnouncement"
	KindOrderStatusUpdate  = "OrderStatusUpdate"
	KindChatMessage        = "ChatMessage"
	KindPostUpdated        = "PostUpdated"
)

// Event is an immutable broadcastable occurrence bound to exactly one
// channel. The payload is fully determined at construction time and the
// timestamp is captured then, not at dispatch.
type Event interface {
	Kind() string
	Channel() Channel
	Payload() map[string]any
}

// PublicAnnouncement is a server-wide message on the public announcements
// channel.
type PublicAnnouncement struct {
	Message   string
	Timestamp string
}

// NewPublicAnnouncement constructs a PublicAnnouncement stamped at.
func NewPublicAnnouncement(message string, at time.Time) PublicAnnouncement {
	return PublicAnnouncement{
		Message:   message,
		Timestamp: at.Format(time.RFC3339),
	}
}

func (e PublicAnnouncement) Kind() string     { return KindPublicAnnouncement }
func (e PublicAnnouncement) Channel() Channel { return Announcements() }
func (e PublicAnnouncement) Payload() map[string]any {
	return map[string]any{
		"message":   e.Message,
		"timestamp": e.Timestamp,
	}
}

// OrderStatusUpdate reports an order status change on the owning principal's
// private orders channel.
type OrderStatusUpdate struct {
	OrderID   int64
	Status    string
	Timestamp string
}

// NewOrderStatusUpdate constructs an OrderStatusUpdate stamped at.
func NewOrderStatusUpdate(orderID int64, status string, at time.Time) OrderStatusUpdate {
	return OrderStatusUpdate{
		OrderID:   orderID,
		Status:    status,
		Timestamp: at.Format(time.RFC3339),
	}
}

func (e OrderStatusUpdate) Kind() string     { return KindOrderStatusUpdate }
func (e OrderStatusUpdate) Channel() Channel { return Orders(e.OrderID) }
func (e OrderStatusUpdate) Payload() map[string]any {
	return map[string]any{
		"orderId":   e.OrderID,
		"status":    e.Status,
		"timestamp": e.Timestamp,
	}
}

// ChatMessage is a message on the chat-room presence channel.
type ChatMessage struct {
	UserName  string
	Message   string
	Timestamp string
}

// NewChatMessage constructs a ChatMessage stamped at.
func NewChatMessage(userName, message string, at time.Time) ChatMessage {
	return ChatMessage{
		UserName:  userName,
		Message:   message,
		Timestamp: at.Format(time.RFC3339),
	}
}

func (e ChatMessage) Kind() string     { return KindChatMessage }
func (e ChatMessage) Channel() Channel { return ChatRoom() }
func (e ChatMessage) Payload() map[string]any {
	return map[string]any{
		"userName":  e.UserName,
		"message":   e.Message,
		"timestamp": e.Timestamp,
	}
}

// PostUpdated is the model-change event published on the post's private
// channel after a successful update.
type PostUpdated struct {
	PostID    int64
	Title     string
	Body      string
	Timestamp string
}

// NewPostUpdated constructs a PostUpdated stamped at.
func NewPostUpdated(postID int64, title, body string, at time.Time) PostUpdated {
	return PostUpdated{
		PostID:    postID,
		Title:     title,
		Body:      body,
		Timestamp: at.Format(time.RFC3339),
	}
}

func (e PostUpdated) Kind() string     { return KindPostUpdated }
func (e PostUpdated) Channel() Channel { return PostChannel(e.PostID) }
func (e PostUpdated) Payload() map[string]any {
	return map[string]any{
		"id":        e.PostID,
		"title":     e.Title,
		"body":      e.Body,
		"timestamp": e.Timestamp,
	}
}
