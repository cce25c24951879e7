package realtime

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	goredis "github.com/redis/go-redis/v9"

	deliveryRedis "broadcast-srv/internal/broadcast/delivery/redis"
	pkgLog "broadcast-srv/pkg/log"
	pkgRedis "broadcast-srv/pkg/redis"
)

// Subscriber bridges the Redis bus to the hub. It pattern-subscribes to
// the broadcast and notify topics so every replica sees every envelope.
type Subscriber struct {
	client *pkgRedis.Client
	hub    *Hub
	l      pkgLog.Logger

	pubsub   *goredis.PubSub
	patterns []string

	ctx    context.Context
	cancel context.CancelFunc
	done   chan struct{}

	maxRetries int
	retryDelay time.Duration

	mu            sync.RWMutex
	lastMessageAt time.Time
	isActive      atomic.Bool
}

// NewSubscriber creates a Redis bus subscriber feeding the hub.
func NewSubscriber(client *pkgRedis.Client, hub *Hub, l pkgLog.Logger) *Subscriber {
	ctx, cancel := context.WithCancel(context.Background())

	return &Subscriber{
		client: client,
		hub:    hub,
		l:      l,
		patterns: []string{
			deliveryRedis.BroadcastChannelPrefix + "*",
			deliveryRedis.NotifyChannelPrefix + "*",
		},
		ctx:        ctx,
		cancel:     cancel,
		done:       make(chan struct{}),
		maxRetries: 10,
		retryDelay: 5 * time.Second,
	}
}

// Start begins listening on the bus patterns.
func (s *Subscriber) Start() error {
	s.pubsub = s.client.PSubscribe(s.ctx, s.patterns...)
	s.isActive.Store(true)

	s.l.Infof(s.ctx, "Redis subscriber started, listening on patterns: %v", s.patterns)

	go s.listen()

	return nil
}

func (s *Subscriber) listen() {
	defer close(s.done)

	ch := s.pubsub.Channel()

	for {
		select {
		case <-s.ctx.Done():
			s.l.Info(context.Background(), "Redis subscriber shutting down")
			return

		case msg, ok := <-ch:
			if !ok {
				s.l.Error(s.ctx, "Redis pub/sub channel closed, attempting to reconnect")
				if err := s.reconnect(); err != nil {
					s.l.Errorf(s.ctx, "Failed to reconnect to Redis: %v", err)
					return
				}
				ch = s.pubsub.Channel()
				continue
			}

			s.handleMessage(msg.Channel, msg.Payload)
		}
	}
}

func (s *Subscriber) handleMessage(topic, payload string) {
	s.mu.Lock()
	s.lastMessageAt = time.Now()
	s.mu.Unlock()

	var env deliveryRedis.Envelope
	if err := json.Unmarshal([]byte(payload), &env); err != nil {
		s.l.Errorf(s.ctx, "Failed to unmarshal bus envelope on %s: %v", topic, err)
		return
	}

	switch {
	case strings.HasPrefix(topic, deliveryRedis.BroadcastChannelPrefix):
		s.hub.Broadcast(env.Channel, &Frame{
			Event:   env.Event,
			Channel: env.Channel,
			Data:    env.Payload,
		})

	case strings.HasPrefix(topic, deliveryRedis.NotifyChannelPrefix):
		userID, err := strconv.ParseInt(strings.TrimPrefix(topic, deliveryRedis.NotifyChannelPrefix), 10, 64)
		if err != nil {
			s.l.Warnf(s.ctx, "Invalid notify topic: %s", topic)
			return
		}
		s.hub.SendToUser(userID, &Frame{
			Event: EventNotification,
			Data:  env.Payload,
		})

	default:
		s.l.Warnf(s.ctx, "Unexpected bus topic: %s", topic)
	}
}

func (s *Subscriber) reconnect() error {
	for i := 0; i < s.maxRetries; i++ {
		s.l.Infof(s.ctx, "Reconnecting to Redis (attempt %d/%d)", i+1, s.maxRetries)

		if s.pubsub != nil {
			s.pubsub.Close()
		}

		s.pubsub = s.client.PSubscribe(s.ctx, s.patterns...)

		if _, err := s.pubsub.Receive(s.ctx); err == nil {
			s.l.Info(s.ctx, "Successfully reconnected to Redis")
			return nil
		}

		time.Sleep(s.retryDelay)
	}

	return fmt.Errorf("failed to reconnect to Redis after %d attempts", s.maxRetries)
}

// HealthInfo reports whether the subscriber is active and when it last saw
// a message.
func (s *Subscriber) HealthInfo() (active bool, lastMessageAt time.Time) {
	s.mu.RLock()
	lastMsg := s.lastMessageAt
	s.mu.RUnlock()

	return s.isActive.Load(), lastMsg
}

// Shutdown gracefully stops the subscriber.
func (s *Subscriber) Shutdown(ctx context.Context) error {
	s.isActive.Store(false)
	s.cancel()

	if s.pubsub != nil {
		if err := s.pubsub.Close(); err != nil {
			s.l.Errorf(context.Background(), "Error closing pub/sub: %v", err)
		}
	}

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
