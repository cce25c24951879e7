package broadcast

import (
	"fmt"
	"strings"
)

// Kind classifies a channel by its subscription semantics.
type Kind int

const (
	// KindPublic channels require no authorization.
	KindPublic Kind = iota
	// KindPrivate channels require per-subscription authorization.
	KindPrivate
	// KindPresence channels require authorization and track their members.
	KindPresence
)

// Wire-level prefixes marking private and presence subscriptions.
const (
	privatePrefix  = "private-"
	presencePrefix = "presence-"
)

// Channel names used by the demo. The grammar is wire compatible:
// announcements, orders.<principalId>, chat-room, User.<id>, Post.<id>.
const (
	AnnouncementsName = "announcements"
	ChatRoomName      = "chat-room"

	ordersFormat = "orders.%d"
	userFormat   = "User.%d"
	postFormat   = "Post.%d"
)

// Channel is a named broadcast topic. Name carries no wire prefix.
type Channel struct {
	Name string
	Kind Kind
}

// Announcements is the public announcement channel.
func Announcements() Channel {
	return Channel{Name: AnnouncementsName, Kind: KindPublic}
}

// Orders is the private channel for one principal's order updates.
func Orders(principalID int64) Channel {
	return Channel{Name: fmt.Sprintf(ordersFormat, principalID), Kind: KindPrivate}
}

// ChatRoom is the presence channel for the demo chat.
func ChatRoom() Channel {
	return Channel{Name: ChatRoomName, Kind: KindPresence}
}

// UserChannel is the private per-user model channel.
func UserChannel(userID int64) Channel {
	return Channel{Name: fmt.Sprintf(userFormat, userID), Kind: KindPrivate}
}

// PostChannel is the private per-post model channel.
func PostChannel(postID int64) Channel {
	return Channel{Name: fmt.Sprintf(postFormat, postID), Kind: KindPrivate}
}

// Wire returns the channel name as it appears in subscription requests,
// including the private-/presence- prefix.
func (c Channel) Wire() string {
	switch c.Kind {
	case KindPrivate:
		return privatePrefix + c.Name
	case KindPresence:
		return presencePrefix + c.Name
	default:
		return c.Name
	}
}

// ParseWire maps a wire-level subscription name back to a Channel, stripping
// the private-/presence- prefix. Unprefixed names are public.
func ParseWire(wire string) Channel {
	if name, ok := strings.CutPrefix(wire, presencePrefix); ok {
		return Channel{Name: name, Kind: KindPresence}
	}
	if name, ok := strings.CutPrefix(wire, privatePrefix); ok {
		return Channel{Name: name, Kind: KindPrivate}
	}
	return Channel{Name: wire, Kind: KindPublic}
}
