package redis

import (
	"broadcast-srv/internal/broadcast"
	pkgLog "broadcast-srv/pkg/log"
	pkgRedis "broadcast-srv/pkg/redis"
)

// Sink publishes broadcast envelopes onto the Redis Pub/Sub bus. The
// realtime subscriber on the other side fans them out to hub subscribers,
// so every replica of the service sees every event.
type Sink struct {
	l      pkgLog.Logger
	client *pkgRedis.Client
}

var _ broadcast.Sink = &Sink{}

func NewSink(l pkgLog.Logger, client *pkgRedis.Client) *Sink {
	return &Sink{
		l:      l,
		client: client,
	}
}
