// Package ratelimit implements sliding-window request limiting for the
// public write endpoints (tracking, analytics, congratulations, forms).
//
// Each identifier keeps the timestamps of its accepted requests. A request is
// admitted while fewer than Limit timestamps fall inside the trailing Interval;
// rejected requests are not recorded, so a client hammering the endpoint does
// not extend its own lockout.
package ratelimit

import (
	"container/list"
	"context"
	"errors"
	"sync"
	"time"
)

var ErrInvalidOptions = errors.New("ratelimit: limit and interval must be positive")

// Result describes the outcome of a single Allow call.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	RetryAfter time.Duration
}

// Limiter is satisfied by both the in-process and the Redis-backed limiter.
type Limiter interface {
	Allow(ctx context.Context, key string) (Result, error)
}

type Options struct {
	Limit    int
	Interval time.Duration
	// MaxKeys caps the number of identifiers tracked in memory. Zero means
	// no cap. Ignored by the Redis limiter, where keys expire on their own.
	MaxKeys int
}

func (o Options) validate() error {
	if o.Limit <= 0 || o.Interval <= 0 {
		return ErrInvalidOptions
	}
	return nil
}

type entry struct {
	key  string
	hits []time.Time
}

// MemoryLimiter keeps windows in process memory. Safe for concurrent use.
type MemoryLimiter struct {
	opts Options
	now  func() time.Time

	mu    sync.Mutex
	order *list.List // insertion order, front = oldest
	index map[string]*list.Element
}

func NewMemoryLimiter(opts Options) (*MemoryLimiter, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	return &MemoryLimiter{
		opts:  opts,
		now:   time.Now,
		order: list.New(),
		index: make(map[string]*list.Element),
	}, nil
}

// WithClock swaps the time source; used by tests.
func (l *MemoryLimiter) WithClock(now func() time.Time) *MemoryLimiter {
	l.now = now
	return l
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	el, ok := l.index[key]
	if !ok {
		el = l.order.PushBack(&entry{key: key})
		l.index[key] = el
		l.evictLocked()
	}
	e := el.Value.(*entry)
	e.hits = prune(e.hits, now.Add(-l.opts.Interval))

	res := Result{Limit: l.opts.Limit}
	if len(e.hits) >= l.opts.Limit {
		res.RetryAfter = e.hits[0].Add(l.opts.Interval).Sub(now)
		return res, nil
	}

	e.hits = append(e.hits, now)
	res.Allowed = true
	res.Remaining = l.opts.Limit - len(e.hits)
	return res, nil
}

// Len reports how many identifiers are currently tracked.
func (l *MemoryLimiter) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.index)
}

// Tracked reports whether key currently has a window.
func (l *MemoryLimiter) Tracked(key string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.index[key]
	return ok
}

// Sweep drops identifiers whose window is empty and returns how many went.
func (l *MemoryLimiter) Sweep() int {
	cutoff := l.now().Add(-l.opts.Interval)

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for el := l.order.Front(); el != nil; {
		next := el.Next()
		e := el.Value.(*entry)
		e.hits = prune(e.hits, cutoff)
		if len(e.hits) == 0 {
			l.order.Remove(el)
			delete(l.index, e.key)
			removed++
		}
		el = next
	}
	return removed
}

// RunSweeper sweeps every interval until ctx is cancelled.
func (l *MemoryLimiter) RunSweeper(ctx context.Context, every time.Duration) {
	t := time.NewTicker(every)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.Sweep()
		}
	}
}

func (l *MemoryLimiter) evictLocked() {
	if l.opts.MaxKeys <= 0 {
		return
	}
	for len(l.index) > l.opts.MaxKeys {
		front := l.order.Front()
		if front == nil {
			return
		}
		l.order.Remove(front)
		delete(l.index, front.Value.(*entry).key)
	}
}

// prune drops timestamps at or before cutoff. hits is ordered oldest first.
func prune(hits []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(hits) && !hits[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return hits
	}
	return append(hits[:0], hits[i:]...)
}
