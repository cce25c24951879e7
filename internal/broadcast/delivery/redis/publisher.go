package redis

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"broadcast-srv/internal/broadcast"

	"github.com/google/uuid"
)

// Bus channel prefixes. Broadcast messages carry the wire channel name so
// subscriber replicas can route without re-parsing the grammar.
const (
	BroadcastChannelPrefix = "broadcast:"
	NotifyChannelPrefix    = "notify:"
)

// Envelope is the bus message format shared with the realtime subscriber.
type Envelope struct {
	ID      string          `json:"id"`
	Channel string          `json:"channel,omitempty"`
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload"`
	SentAt  time.Time       `json:"sent_at"`
}

// Publish sends an event envelope to the channel's bus topic. The publish
// completes synchronously before the triggering request is acknowledged;
// past this point delivery is the transport's problem.
func (s *Sink) Publish(ctx context.Context, channel broadcast.Channel, kind string, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		s.l.Errorf(ctx, "internal.broadcast.delivery.redis.Publish.Marshal: %v", err)
		return err
	}

	env := Envelope{
		ID:      uuid.New().String(),
		Channel: channel.Wire(),
		Event:   kind,
		Payload: body,
		SentAt:  time.Now(),
	}
	data, err := json.Marshal(env)
	if err != nil {
		s.l.Errorf(ctx, "internal.broadcast.delivery.redis.Publish.MarshalEnvelope: %v", err)
		return err
	}

	if err := s.client.Publish(ctx, BroadcastChannelPrefix+channel.Wire(), data); err != nil {
		s.l.Errorf(ctx, "internal.broadcast.delivery.redis.Publish: %v", err)
		return err
	}
	return nil
}

// Notify sends a direct notification envelope to one principal's bus topic.
func (s *Sink) Notify(ctx context.Context, principalID int64, payload map[string]any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		s.l.Errorf(ctx, "internal.broadcast.delivery.redis.Notify.Marshal: %v", err)
		return err
	}

	env := Envelope{
		ID:      uuid.New().String(),
		Event:   broadcast.NotificationKind,
		Payload: body,
		SentAt:  time.Now(),
	}
	data, err := json.Marshal(env)
	if err != nil {
		s.l.Errorf(ctx, "internal.broadcast.delivery.redis.Notify.MarshalEnvelope: %v", err)
		return err
	}

	topic := NotifyChannelPrefix + strconv.FormatInt(principalID, 10)
	if err := s.client.Publish(ctx, topic, data); err != nil {
		s.l.Errorf(ctx, "internal.broadcast.delivery.redis.Notify: %v", err)
		return err
	}
	return nil
}
