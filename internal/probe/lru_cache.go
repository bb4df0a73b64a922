package probe

import (
	"context"

	lru "github.com/hashicorp/golang-lru/v2"
)

// LRUCache is a bounded in-process LRU probe cache, scoped to a single
// orchestrator run.
type LRUCache struct {
	cache *lru.Cache[string, PropertyMap]
}

// NewLRUCache builds an LRUCache holding up to size entries.
func NewLRUCache(size int) (*LRUCache, error) {
	if size < 1 {
		size = 1
	}
	c, err := lru.New[string, PropertyMap](size)
	if err != nil {
		return nil, err
	}
	return &LRUCache{cache: c}, nil
}

// Get returns the cached PropertyMap for url, if present.
func (l *LRUCache) Get(ctx context.Context, url string) (PropertyMap, bool) {
	return l.cache.Get(url)
}

// Set stores props under url.
func (l *LRUCache) Set(ctx context.Context, url string, props PropertyMap) {
	l.cache.Add(url, props)
}
