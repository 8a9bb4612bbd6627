package network

import (
	"sync/atomic"

	"github.com/dgraph-io/ristretto/v2"
)

// DefaultCacheCapacity is the number of entries the edge-to-edge shortest
// path cache admits before the TinyLFU eviction policy starts turning away
// the least valuable keys.
const DefaultCacheCapacity = 10_000

// pathCacheValue is what gets stored per (fromEdgeID, toEdgeID) pair: the
// shortest path distance between the edges' connecting nodes, plus the
// length of the "from" edge needed to reconstruct a full route distance
// without a second network lookup.
type pathCacheValue struct {
	pathDistance   float64
	fromEdgeLength float64
}

// pathCache wraps a bounded, concurrent, TinyLFU-evicting cache with hit/miss
// counters, mirroring the CacheStats the matching layer reports through the
// external API.
type pathCache struct {
	cache  *ristretto.Cache[string, pathCacheValue]
	hits   atomic.Uint64
	misses atomic.Uint64
}

func newPathCache(capacity int64) (*pathCache, error) {
	c, err := ristretto.NewCache(&ristretto.Config[string, pathCacheValue]{
		NumCounters: capacity * 10,
		MaxCost:     capacity,
		BufferItems: 64,
		Metrics:     true,
	})
	if err != nil {
		return nil, err
	}
	return &pathCache{cache: c}, nil
}

func (c *pathCache) get(key string) (pathCacheValue, bool) {
	v, ok := c.cache.Get(key)
	if ok {
		c.hits.Add(1)
	} else {
		c.misses.Add(1)
	}
	return v, ok
}

func (c *pathCache) set(key string, v pathCacheValue) {
	c.cache.Set(key, v, 1)
}

func (c *pathCache) clear() {
	c.cache.Clear()
	c.hits.Store(0)
	c.misses.Store(0)
}

// hitRate returns the fraction of get calls that were cache hits, or 0 if
// the cache has never been queried.
func (c *pathCache) hitRate() float64 {
	hits := c.hits.Load()
	misses := c.misses.Load()
	total := hits + misses
	if total == 0 {
		return 0
	}
	return float64(hits) / float64(total)
}

func (c *pathCache) size() int64 {
	return int64(c.cache.Metrics.KeysAdded()) - int64(c.cache.Metrics.KeysEvicted())
}
