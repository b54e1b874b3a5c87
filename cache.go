package folio

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"github.com/eringen/folio/content"
)

// Store keeps encoded query results for a limited time.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, val []byte, ttl time.Duration) error
	Ping(ctx context.Context) error
	Close() error
}

// MemoryStore is a process-local Store.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
	now     func() time.Time
}

type memoryEntry struct {
	val     []byte
	expires time.Time
}

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{entries: make(map[string]memoryEntry), now: time.Now}
}

func (s *MemoryStore) Get(_ context.Context, key string) ([]byte, bool, error) {
	s.mu.RLock()
	e, ok := s.entries[key]
	s.mu.RUnlock()
	if !ok || !s.now().Before(e.expires) {
		return nil, false, nil
	}
	return e.val, true, nil
}

func (s *MemoryStore) Set(_ context.Context, key string, val []byte, ttl time.Duration) error {
	now := s.now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for k, e := range s.entries {
		if !now.Before(e.expires) {
			delete(s.entries, k)
		}
	}
	s.entries[key] = memoryEntry{val: val, expires: now.Add(ttl)}
	return nil
}

func (s *MemoryStore) Ping(context.Context) error { return nil }

func (s *MemoryStore) Close() error { return nil }

// RedisStore shares cached results between instances.
type RedisStore struct {
	client *redis.Client
	prefix string
}

// NewRedisStore connects to the redis server at rawURL, e.g.
// "redis://localhost:6379/0".
func NewRedisStore(rawURL string) (*RedisStore, error) {
	opt, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("folio: parse redis url: %w", err)
	}
	return &RedisStore{client: redis.NewClient(opt), prefix: "folio:content:"}, nil
}

func (s *RedisStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := s.client.Get(ctx, s.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

func (s *RedisStore) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return s.client.Set(ctx, s.prefix+key, val, ttl).Err()
}

func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}

// ContentCache is a content.Source that keeps successful query results for
// a TTL. Concurrent misses for the same query share one fetch. Failures are
// never stored, so a retry always reaches the content store.
type ContentCache struct {
	src     content.Source
	store   Store
	ttl     time.Duration
	timeout time.Duration
	group   singleflight.Group
	metrics *Metrics
	log     *zap.Logger
}

// NewContentCache wraps src. A zero ttl disables storing results; fetches
// still run under timeout and identical concurrent ones are collapsed.
func NewContentCache(src content.Source, store Store, ttl, timeout time.Duration, m *Metrics, log *zap.Logger) *ContentCache {
	return &ContentCache{
		src:     src,
		store:   store,
		ttl:     ttl,
		timeout: timeout,
		metrics: m,
		log:     log,
	}
}

// Posts returns the posts for q.
func (c *ContentCache) Posts(ctx context.Context, q content.PostQuery) ([]content.Post, error) {
	return cached(ctx, c, content.PostsQuery(q).Key(), "posts", func(ctx context.Context) ([]content.Post, error) {
		return c.src.Posts(ctx, q)
	})
}

// Post returns the post with slug.
func (c *ContentCache) Post(ctx context.Context, slug string) (content.Post, error) {
	return cached(ctx, c, content.PostQueryBySlug(slug).Key(), "post", func(ctx context.Context) (content.Post, error) {
		return c.src.Post(ctx, slug)
	})
}

// Ping checks the backing store.
func (c *ContentCache) Ping(ctx context.Context) error {
	return c.store.Ping(ctx)
}

// Close releases the backing store.
func (c *ContentCache) Close() error {
	return c.store.Close()
}

func cached[T any](ctx context.Context, c *ContentCache, key, name string, fetch func(context.Context) (T, error)) (T, error) {
	var zero T
	if c.ttl > 0 {
		if v, ok := c.lookup(ctx, key); ok {
			var out T
			if err := json.Unmarshal(v, &out); err == nil {
				c.metrics.CacheResults.WithLabelValues("hit").Inc()
				return out, nil
			}
		}
		c.metrics.CacheResults.WithLabelValues("miss").Inc()
	}

	// The shared fetch outlives any single caller so a visitor leaving does
	// not fail the others waiting on it.
	ch := c.group.DoChan(key, func() (any, error) {
		fctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
		defer cancel()
		start := time.Now()
		v, err := fetch(fctx)
		c.metrics.ObserveFetch(name, err, time.Since(start))
		if err != nil {
			return nil, err
		}
		if c.ttl > 0 {
			c.save(fctx, key, v)
		}
		return v, nil
	})

	select {
	case <-ctx.Done():
		return zero, ctx.Err()
	case r := <-ch:
		if r.Err != nil {
			return zero, r.Err
		}
		return r.Val.(T), nil
	}
}

func (c *ContentCache) lookup(ctx context.Context, key string) ([]byte, bool) {
	v, ok, err := c.store.Get(ctx, key)
	if err != nil {
		c.metrics.CacheResults.WithLabelValues("error").Inc()
		c.log.Warn("content cache read failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return v, ok
}

func (c *ContentCache) save(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		c.log.Warn("content cache encode failed", zap.String("key", key), zap.Error(err))
		return
	}
	if err := c.store.Set(ctx, key, b, c.ttl); err != nil {
		c.metrics.CacheResults.WithLabelValues("error").Inc()
		c.log.Warn("content cache write failed", zap.String("key", key), zap.Error(err))
	}
}
