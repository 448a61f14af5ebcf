package fetch

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"fairdex/domain/table"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes fetch results. Implementations must be safe for
// concurrent use.
type Cache interface {
	Get(key string) (table.Table, bool)
	Put(key string, t table.Table)
}

type cacheEntry struct {
	table    table.Table
	storedAt time.Time
}

// TTLCache is a bounded in-memory cache with lazy expiry. When full, the
// oldest entry is evicted.
type TTLCache struct {
	mu         sync.Mutex
	ttl        time.Duration
	maxEntries int
	entries    map[string]cacheEntry
	now        func() time.Time
}

func NewTTLCache(ttl time.Duration, maxEntries int) *TTLCache {
	return &TTLCache{
		ttl:        ttl,
		maxEntries: maxEntries,
		entries:    make(map[string]cacheEntry),
		now:        time.Now,
	}
}

func (c *TTLCache) Get(key string) (table.Table, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		return table.Table{}, false
	}
	if c.now().Sub(entry.storedAt) > c.ttl {
		delete(c.entries, key)
		return table.Table{}, false
	}
	return entry.table, true
}

func (c *TTLCache) Put(key string, t table.Table) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.entries) >= c.maxEntries {
		c.evictOldestLocked()
	}
	c.entries[key] = cacheEntry{table: t, storedAt: c.now()}
}

func (c *TTLCache) evictOldestLocked() {
	var oldestKey string
	var oldestAt time.Time
	first := true
	for key, entry := range c.entries {
		if first || entry.storedAt.Before(oldestAt) {
			oldestKey = key
			oldestAt = entry.storedAt
			first = false
		}
	}
	if !first {
		delete(c.entries, oldestKey)
	}
}

// Fetcher is what downstream consumers (merger, dashboards) depend on.
type Fetcher interface {
	Fetch(ctx context.Context, code string, countries []string, years table.YearRange) (table.Table, error)
}

// CachedFetcher serves repeat calls with identical arguments from the
// cache and collapses concurrent identical fetches into one upstream call.
type CachedFetcher struct {
	fetcher Fetcher
	cache   Cache
	group   singleflight.Group
}

func NewCachedFetcher(fetcher Fetcher, cache Cache) *CachedFetcher {
	return &CachedFetcher{fetcher: fetcher, cache: cache}
}

func (c *CachedFetcher) Fetch(ctx context.Context, code string, countries []string, years table.YearRange) (table.Table, error) {
	key := cacheKey(code, countries, years)
	if t, ok := c.cache.Get(key); ok {
		return t, nil
	}

	v, err, _ := c.group.Do(key, func() (interface{}, error) {
		t, err := c.fetcher.Fetch(ctx, code, countries, years)
		if err != nil {
			return table.Table{}, err
		}
		// Empty tables are not cached: a failed fetch should be retried
		// on the next call, not pinned for the TTL.
		if !t.IsEmpty() {
			c.cache.Put(key, t)
		}
		return t, nil
	})
	if err != nil {
		return table.Empty(code), err
	}
	return v.(table.Table), nil
}

func cacheKey(code string, countries []string, years table.YearRange) string {
	var b strings.Builder
	b.WriteString(code)
	b.WriteByte('|')
	b.WriteString(strings.Join(countries, ","))
	b.WriteByte('|')
	b.WriteString(strconv.Itoa(years.From))
	b.WriteByte(':')
	b.WriteString(strconv.Itoa(years.To))
	return b.String()
}
