package ratelimit

import (
	"github.com/redis/go-redis/v9"
)

// New returns a Redis-backed limiter when client is non-nil, otherwise an
// in-memory one. name namespaces the Redis keys per route group.
func New(client *redis.Client, name string, opts Options) (Limiter, error) {
	if client != nil {
		return NewRedisLimiter(client, "ratelimit:"+name, opts)
	}
	return NewMemoryLimiter(opts)
}
