package redis

import (
	"context"
	"fmt"

	"broadcast-srv/config"
	pkgRedis "broadcast-srv/pkg/redis"
)

// Connect initializes and returns a Redis client.
func Connect(ctx context.Context, cfg config.RedisConfig) (*pkgRedis.Client, error) {
	client, err := pkgRedis.NewClient(pkgRedis.Config{
		Host:            cfg.Host,
		Password:        cfg.Password,
		DB:              cfg.DB,
		MaxRetries:      cfg.MaxRetries,
		MinIdleConns:    cfg.MinIdleConns,
		PoolSize:        cfg.PoolSize,
		PoolTimeout:     cfg.PoolTimeout,
		ConnMaxIdleTime: cfg.ConnMaxIdleTime,
		ConnMaxLifetime: cfg.ConnMaxLifetime,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	return client, nil
}

// Disconnect closes the Redis connection.
func Disconnect(client *pkgRedis.Client) error {
	if client != nil {
		return client.Close()
	}
	return nil
}
