package probe

import "context"

// Cache memoizes PropertyMap extraction results keyed by download URL. It
// caches parsed metadata only, never the archive's raw bytes.
//
// Two implementations exist: an in-process LRU for single-process runs,
// and a Redis-backed cache shared across incremental rebuilds.
type Cache interface {
	Get(ctx context.Context, url string) (PropertyMap, bool)
	Set(ctx context.Context, url string, props PropertyMap)
}

// NopCache never caches anything; every probe re-extracts.
type NopCache struct{}

// Get always reports a miss.
func (NopCache) Get(ctx context.Context, url string) (PropertyMap, bool) { return nil, false }

// Set is a no-op.
func (NopCache) Set(ctx context.Context, url string, props PropertyMap) {}
