package content

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// cache tags ที่ revalidate ได้
const (
	TagPosts    = "posts"
	TagProjects = "projects"
	TagPages    = "pages"
)

var KnownTags = []string{TagPosts, TagProjects, TagPages}

type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, tag, key string, val []byte, ttl time.Duration) error
	InvalidateTag(ctx context.Context, tag string) error
}

// --------- memory ---------

type memItem struct {
	val     []byte
	tag     string
	expires time.Time
}

// MemoryCache ใช้ตอนไม่มี Redis (dev / instance เดียว)
type MemoryCache struct {
	mu    sync.RWMutex
	items map[string]memItem
	now   func() time.Time
}

func NewMemoryCache() *MemoryCache {
	return &MemoryCache{items: make(map[string]memItem), now: time.Now}
}

func (m *MemoryCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	m.mu.RLock()
	it, ok := m.items[key]
	m.mu.RUnlock()
	if !ok {
		return nil, false, nil
	}
	if !m.now().Before(it.expires) {
		m.mu.Lock()
		delete(m.items, key)
		m.mu.Unlock()
		return nil, false, nil
	}
	return it.val, true, nil
}

func (m *MemoryCache) Set(_ context.Context, tag, key string, val []byte, ttl time.Duration) error {
	m.mu.Lock()
	m.items[key] = memItem{val: val, tag: tag, expires: m.now().Add(ttl)}
	m.mu.Unlock()
	return nil
}

func (m *MemoryCache) InvalidateTag(_ context.Context, tag string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, it := range m.items {
		if it.tag == tag {
			delete(m.items, k)
		}
	}
	return nil
}

// --------- redis ---------

// RedisCache เก็บ key ของแต่ละ tag ไว้ใน set เพื่อลบทั้งกลุ่มได้
type RedisCache struct {
	client *redis.Client
	prefix string
}

func NewRedisCache(client *redis.Client) *RedisCache {
	return &RedisCache{client: client, prefix: "content"}
}

func (r *RedisCache) key(k string) string    { return r.prefix + ":" + k }
func (r *RedisCache) tagKey(t string) string { return r.prefix + ":tag:" + t }

func (r *RedisCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	val, err := r.client.Get(ctx, r.key(key)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("content cache get: %w", err)
	}
	return val, true, nil
}

func (r *RedisCache) Set(ctx context.Context, tag, key string, val []byte, ttl time.Duration) error {
	pipe := r.client.TxPipeline()
	pipe.Set(ctx, r.key(key), val, ttl)
	pipe.SAdd(ctx, r.tagKey(tag), key)
	pipe.Expire(ctx, r.tagKey(tag), ttl*2)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("content cache set: %w", err)
	}
	return nil
}

func (r *RedisCache) InvalidateTag(ctx context.Context, tag string) error {
	keys, err := r.client.SMembers(ctx, r.tagKey(tag)).Result()
	if err != nil {
		return fmt.Errorf("content cache members: %w", err)
	}
	full := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		full = append(full, r.key(k))
	}
	full = append(full, r.tagKey(tag))
	if err := r.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("content cache del: %w", err)
	}
	return nil
}
