package cache

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"
)

// DefaultFreshness is how long a cached read is served without refetching.
const DefaultFreshness = 5 * time.Minute

// Fetcher loads the payload for a key on a cache miss, normally a call
// through the API gateway.
type Fetcher func(ctx context.Context) (interface{}, error)

type entry struct {
	payload   interface{}
	fetchedAt time.Time
}

// Cache memoizes reads of remote resources for a bounded freshness window.
// Entries live in memory only; durable client state (sessions, cart, theme)
// has its own store. Concurrent reads of the same key while a fetch is in
// flight share one network call.
type Cache struct {
	freshness time.Duration
	now       func() time.Time

	mu      sync.RWMutex
	entries map[string]entry

	sf singleflight.Group
}

// Option configures a Cache
type Option func(*Cache)

// WithFreshness overrides the freshness window
func WithFreshness(d time.Duration) Option {
	return func(c *Cache) { c.freshness = d }
}

// WithClock overrides the time source, used by tests to age entries
func WithClock(now func() time.Time) Option {
	return func(c *Cache) { c.now = now }
}

// New creates an empty cache
func New(opts ...Option) *Cache {
	c := &Cache{
		freshness: DefaultFreshness,
		now:       time.Now,
		entries:   make(map[string]entry),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Key builds the canonical cache key for a resource and its parameters.
// Parameters are encoded in sorted order so equivalent parameter sets always
// produce the same key, which the coalescing and invalidation guarantees
// depend on.
func Key(resource string, params map[string]string) string {
	if len(params) == 0 {
		return resource
	}
	names := make([]string, 0, len(params))
	for name := range params {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	b.WriteString(resource)
	for _, name := range names {
		b.WriteByte(':')
		b.WriteString(name)
		b.WriteByte('=')
		b.WriteString(params[name])
	}
	return b.String()
}

// Read returns the cached payload for key when it is younger than the
// freshness window, otherwise invokes fetch and stores the result. An entry
// past the window is treated as absent. Errors are not cached.
func (c *Cache) Read(ctx context.Context, key string, fetch Fetcher) (interface{}, error) {
	if payload, ok := c.lookup(key); ok {
		return payload, nil
	}

	// Coalesce: concurrent readers of the same key await one fetch
	payload, err, _ := c.sf.Do(key, func() (interface{}, error) {
		// A racing reader may have populated the entry while this caller
		// waited on the flight group
		if payload, ok := c.lookup(key); ok {
			return payload, nil
		}

		payload, err := fetch(ctx)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.entries[key] = entry{payload: payload, fetchedAt: c.now()}
		c.mu.Unlock()
		return payload, nil
	})
	if err != nil {
		return nil, err
	}
	return payload, nil
}

// Invalidate evicts every entry whose key starts with prefix. Required after
// every successful create/update/delete so the next read refetches instead
// of serving the stale list.
func (c *Cache) Invalidate(prefix string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
		}
	}
}

// Clear drops every entry.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

func (c *Cache) lookup(key string) (interface{}, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	if !ok {
		return nil, false
	}
	if c.now().Sub(e.fetchedAt) >= c.freshness {
		return nil, false
	}
	return e.payload, true
}
