package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// slidingWindowScript ทำงานแบบ atomic: ลบ hit ที่หลุด window, นับ, แล้วค่อยบันทึก
var slidingWindowScript = redis.NewScript(`
local key = KEYS[1]
local now = tonumber(ARGV[1])
local window = tonumber(ARGV[2])
local limit = tonumber(ARGV[3])
local member = ARGV[4]

redis.call('ZREMRANGEBYSCORE', key, '-inf', now - window)
local count = redis.call('ZCARD', key)
if count >= limit then
	local oldest = redis.call('ZRANGE', key, 0, 0, 'WITHSCORES')
	return {0, count, tonumber(oldest[2])}
end
redis.call('ZADD', key, now, member)
redis.call('PEXPIRE', key, window)
return {1, count + 1, now}
`)

// RedisLimiter shares windows between instances through Redis sorted sets.
type RedisLimiter struct {
	client redis.Scripter
	opts   Options
	prefix string
	now    func() time.Time
}

func NewRedisLimiter(client redis.Scripter, prefix string, opts Options) (*RedisLimiter, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = "ratelimit"
	}
	return &RedisLimiter{client: client, opts: opts, prefix: prefix, now: time.Now}, nil
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (Result, error) {
	now := l.now().UnixMilli()
	window := l.opts.Interval.Milliseconds()

	raw, err := slidingWindowScript.Run(ctx, l.client,
		[]string{l.prefix + ":" + key},
		now, window, l.opts.Limit, uuid.NewString(),
	).Int64Slice()
	if err != nil {
		return Result{}, fmt.Errorf("ratelimit: redis script: %w", err)
	}
	if len(raw) != 3 {
		return Result{}, fmt.Errorf("ratelimit: unexpected script reply %v", raw)
	}

	res := Result{Limit: l.opts.Limit}
	if raw[0] == 1 {
		res.Allowed = true
		res.Remaining = l.opts.Limit - int(raw[1])
		return res, nil
	}
	retry := time.Duration(raw[2]+window-now) * time.Millisecond
	if retry < 0 {
		retry = 0
	}
	res.RetryAfter = retry
	return res, nil
}
