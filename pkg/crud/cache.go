package crud

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"
)

// Key identifies one cached page of one resource's collection.
type Key struct {
	Resource string
	Page     int
	Size     int
}

func (k Key) String() string {
	return fmt.Sprintf("%s:%d:%d", k.Resource, k.Page, k.Size)
}

// Cache is the query cache a controller reads through. Implementations
// must deduplicate concurrent fetches of the same key.
type Cache[T any] interface {
	GetOrFetch(ctx context.Context, key Key, fetch func(context.Context) (Page[T], error)) (Page[T], error)
	Invalidate(resource string)
}

// MemoryCache is an in-process Cache. At most one fetch per key is in
// flight at a time (singleflight); callers for the same key share its
// result. Invalidation bumps a per-resource generation so a fetch that
// was already in flight when the mutation landed cannot write a stale
// page back.
type MemoryCache[T any] struct {
	mu      sync.Mutex
	entries map[Key]Page[T]
	gens    map[string]uint64
	group   singleflight.Group
}

// NewMemoryCache creates an empty cache.
func NewMemoryCache[T any]() *MemoryCache[T] {
	return &MemoryCache[T]{
		entries: make(map[Key]Page[T]),
		gens:    make(map[string]uint64),
	}
}

// GetOrFetch returns the cached page for key, fetching it on a miss.
func (c *MemoryCache[T]) GetOrFetch(ctx context.Context, key Key, fetch func(context.Context) (Page[T], error)) (Page[T], error) {
	c.mu.Lock()
	if page, ok := c.entries[key]; ok {
		c.mu.Unlock()
		return page, nil
	}
	gen := c.gens[key.Resource]
	c.mu.Unlock()

	v, err, _ := c.group.Do(key.String(), func() (any, error) {
		page, err := fetch(ctx)
		if err != nil {
			return Page[T]{}, err
		}
		c.mu.Lock()
		if c.gens[key.Resource] == gen {
			c.entries[key] = page
		}
		c.mu.Unlock()
		return page, nil
	})
	if err != nil {
		return Page[T]{}, err
	}
	return v.(Page[T]), nil
}

// Invalidate drops every cached page of a resource.
func (c *MemoryCache[T]) Invalidate(resource string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.entries {
		if k.Resource == resource {
			delete(c.entries, k)
		}
	}
	c.gens[resource]++
}
