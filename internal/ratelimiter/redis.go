package ratelimiter

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// Atomic increment with a TTL set on the first hit of each window.
// KEYS[1] = counter key, ARGV[1] = TTL in seconds.
// Returns [current_count, ttl_remaining].
const admitScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// Redis is a fixed-window counter backed by a shared Redis instance, for
// deployments where one process-local counter per instance is not enough.
// Counter semantics match Memory except that the count keeps incrementing
// past the limit; the TTL caps how long that can go on.
type Redis struct {
	client    *goredis.Client
	limit     int
	window    time.Duration
	keyPrefix string
}

// RedisConfig configures the Redis-backed store.
type RedisConfig struct {
	Client    *goredis.Client
	Limit     int
	Window    time.Duration
	KeyPrefix string // default "rl:contact:"
}

// NewRedis creates a Redis-backed store. The client is owned by the caller.
func NewRedis(cfg RedisConfig) *Redis {
	if cfg.Limit <= 0 {
		cfg.Limit = DefaultLimit
	}
	if cfg.Window <= 0 {
		cfg.Window = DefaultWindow
	}
	if cfg.KeyPrefix == "" {
		cfg.KeyPrefix = "rl:contact:"
	}
	return &Redis{
		client:    cfg.Client,
		limit:     cfg.Limit,
		window:    cfg.Window,
		keyPrefix: cfg.KeyPrefix,
	}
}

// Admit runs the counter script and maps the result onto a Decision.
// Store failures surface as errors so the caller can fall back.
func (r *Redis) Admit(ctx context.Context, clientID string) (Decision, error) {
	key := r.keyPrefix + clientID
	ttlSeconds := int(r.window.Seconds())

	result, err := r.client.Eval(ctx, admitScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return Decision{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return Decision{}, fmt.Errorf("redis rate limit: unexpected result format")
	}
	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	remaining := r.limit - int(count)
	if remaining < 0 {
		remaining = 0
	}
	return Decision{
		Allowed:   int(count) <= r.limit,
		Limit:     r.limit,
		Remaining: remaining,
		ResetAt:   time.Now().Add(time.Duration(ttl) * time.Second),
	}, nil
}
