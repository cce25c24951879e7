package demo

import "broadcast-srv/internal/model"

// Session is an issued login-as session.
type Session struct {
	Token string
	User  model.User
}

// IndexOutput is the demo index data bag. Presentation is external; the
// handler serializes this as-is.
type IndexOutput struct {
	Current model.User
	Users   []model.User
	Post    model.Post
}

// Fixed demo content. The strings are part of the demo's observable
// behavior and must not drift.
const (
	PublicMessage     = "Hello from the server! This is a public announcement."
	NotificationTitle = "New Notification"
)

// OrderStatuses is the pool the private-event trigger picks from.
var OrderStatuses = []string{"Processing", "Shipped", "Delivered", "Cancelled"}

// ChatMessages is the pool the presence-event trigger picks from.
var ChatMessages = []string{
	"Hello everyone!",
	"How is it going?",
	"Great to be here!",
	"Broadcasting is awesome!",
}
