package probe

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
)

// RedisCache is a Redis-backed probe cache shared across orchestrator runs
// (and across concurrent incremental invocations), so a rebuild against an
// unchanged release never re-invokes the archive extractor for it.
type RedisCache struct {
	client *redis.Client
	prefix string
	ttl    time.Duration
}

// NewRedisCache builds a RedisCache against addr, namespacing keys under
// prefix with the given TTL.
func NewRedisCache(addr, prefix string, ttl time.Duration) *RedisCache {
	return &RedisCache{
		client: redis.NewClient(&redis.Options{Addr: addr}),
		prefix: prefix,
		ttl:    ttl,
	}
}

// Get returns the cached PropertyMap for url, if present and still valid.
func (r *RedisCache) Get(ctx context.Context, url string) (PropertyMap, bool) {
	data, err := r.client.Get(ctx, r.key(url)).Bytes()
	if err != nil {
		return nil, false
	}
	var props PropertyMap
	if err := json.Unmarshal(data, &props); err != nil {
		return nil, false
	}
	return props, true
}

// Set stores props under url with the configured TTL.
func (r *RedisCache) Set(ctx context.Context, url string, props PropertyMap) {
	data, err := json.Marshal(props)
	if err != nil {
		return
	}
	r.client.Set(ctx, r.key(url), data, r.ttl)
}

// Close releases the underlying Redis connection pool.
func (r *RedisCache) Close() error {
	return r.client.Close()
}

func (r *RedisCache) key(url string) string {
	return r.prefix + ":" + url
}
