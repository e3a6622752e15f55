package profile

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/Shardlands_Go/internal/domain"
	"github.com/osse101/Shardlands_Go/internal/logger"
	"github.com/osse101/Shardlands_Go/internal/metrics"
	"github.com/osse101/Shardlands_Go/internal/repository"
)

// CacheSchemaVersion is the current version of the cache schema
// Increment this when the cached data structure changes to auto-invalidate old entries
const CacheSchemaVersion = "1.0"

// cachedProfileEntry wraps a profile with version metadata for cache invalidation
type cachedProfileEntry struct {
	Version  string
	Profile  *domain.Profile
	CachedAt time.Time
}

// CacheStats reports lookup counters.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// CachedStore decorates a profile store with an expiring LRU read cache.
// Writes go through to the inner store before the cache is refreshed.
// Entries are deep copies so callers can never mutate cached state.
type CachedStore struct {
	inner  repository.Profile
	slot   string
	lru    *expirable.LRU[string, *cachedProfileEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

var _ repository.Profile = (*CachedStore)(nil)

// NewCachedStore wraps inner, caching under slot.
// size: maximum number of cached profiles
// ttl: time-to-live for cached entries
func NewCachedStore(inner repository.Profile, slot string, size int, ttl time.Duration) *CachedStore {
	if size <= 0 {
		size = DefaultCacheSize
	}
	if ttl <= 0 {
		ttl = DefaultCacheTTL
	}
	return &CachedStore{
		inner: inner,
		slot:  slot,
		lru:   expirable.NewLRU[string, *cachedProfileEntry](size, nil, ttl),
	}
}

func (c *CachedStore) Load(ctx context.Context) (*domain.Profile, error) {
	if p, ok := c.get(ctx); ok {
		return p, nil
	}

	p, err := c.inner.Load(ctx)
	if err != nil {
		return nil, err
	}
	c.set(p)
	return p, nil
}

func (c *CachedStore) Save(ctx context.Context, profile *domain.Profile) error {
	if err := c.inner.Save(ctx, profile); err != nil {
		c.Invalidate()
		return err
	}
	c.set(profile)
	return nil
}

func (c *CachedStore) Delete(ctx context.Context) error {
	c.Invalidate()
	return c.inner.Delete(ctx)
}

// Invalidate drops the cached slot.
func (c *CachedStore) Invalidate() {
	c.lru.Remove(c.slot)
}

// Stats returns the hit and miss counters.
func (c *CachedStore) Stats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}

func (c *CachedStore) get(ctx context.Context) (*domain.Profile, bool) {
	entry, found := c.lru.Get(c.slot)
	if found && entry.Version != CacheSchemaVersion {
		logger.FromContext(ctx).Debug(LogMsgCacheVersionStale, "slot", c.slot, "version", entry.Version)
		c.lru.Remove(c.slot)
		found = false
	}
	if !found {
		c.misses.Add(1)
		metrics.ProfileCacheLookups.WithLabelValues(metrics.CacheResultMiss).Inc()
		return nil, false
	}

	c.hits.Add(1)
	metrics.ProfileCacheLookups.WithLabelValues(metrics.CacheResultHit).Inc()
	logger.FromContext(ctx).Debug(LogMsgCacheHit, "slot", c.slot, "age", time.Since(entry.CachedAt))
	return entry.Profile.Clone(), true
}

func (c *CachedStore) set(p *domain.Profile) {
	c.lru.Add(c.slot, &cachedProfileEntry{
		Version:  CacheSchemaVersion,
		Profile:  p.Clone(),
		CachedAt: time.Now(),
	})
}
