package redis

import "errors"

var (
	ErrHostRequired = errors.New("redis host is required")
)
