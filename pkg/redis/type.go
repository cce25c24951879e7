package redis

import "time"

// Config holds Redis connection settings.
type Config struct {
	Host     string
	Password string
	DB       int

	// Connection pool settings
	MaxRetries      int
	MinIdleConns    int
	PoolSize        int
	PoolTimeout     time.Duration
	ConnMaxIdleTime time.Duration
	ConnMaxLifetime time.Duration
}
