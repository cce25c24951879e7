package realtime

import "encoding/json"

// Server-to-client frame events. Broadcast frames carry the originating
// event kind instead (PublicAnnouncement, OrderStatusUpdate, ...).
const (
	EventSubscriptionSucceeded = "subscription_succeeded"
	EventSubscriptionError     = "subscription_error"
	EventPresenceJoined        = "presence_joined"
	EventPresenceLeft          = "presence_left"
	EventNotification          = "notification"
)

// Client-to-server command actions.
const (
	ActionSubscribe   = "subscribe"
	ActionUnsubscribe = "unsubscribe"
)

// Frame is a message sent to a WebSocket client. Channel is the wire-level
// channel name and is empty for direct notifications.
type Frame struct {
	Event   string          `json:"event"`
	Channel string          `json:"channel,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
}

// NewFrame builds a frame with a JSON-encoded data payload.
func NewFrame(event, channel string, data any) (*Frame, error) {
	body, err := json.Marshal(data)
	if err != nil {
		return nil, err
	}

	return &Frame{
		Event:   event,
		Channel: channel,
		Data:    body,
	}, nil
}

// ToJSON encodes the frame for the wire.
func (f *Frame) ToJSON() ([]byte, error) {
	return json.Marshal(f)
}

// Command is a client subscription request.
type Command struct {
	Action  string `json:"action"`
	Channel string `json:"channel"`
}

// Validate checks the command shape.
func (c Command) Validate() error {
	if c.Action != ActionSubscribe && c.Action != ActionUnsubscribe {
		return ErrInvalidCommand
	}
	if c.Channel == "" {
		return ErrInvalidCommand
	}
	return nil
}
