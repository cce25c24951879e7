package broadcast

import "time"

// NotificationKind is the kind tag for direct-to-user notifications.
const NotificationKind = "DemoNotification"

// Notification is an immutable direct-to-user payload delivered over the
// broadcast transport. The target principal is resolved by the caller.
type Notification struct {
	Title     string
	Body      string
	Timestamp string
}

// NewNotification constructs a Notification stamped at.
func NewNotification(title, body string, at time.Time) Notification {
	return Notification{
		Title:     title,
		Body:      body,
		Timestamp: at.Format(time.RFC3339),
	}
}

// Payload returns the broadcast payload map.
func (n Notification) Payload() map[string]any {
	return map[string]any{
		"title":     n.Title,
		"body":      n.Body,
		"timestamp": n.Timestamp,
	}
}
