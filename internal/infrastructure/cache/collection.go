package cache

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/Samitho456/prepper-frontend/internal/domain"
)

// DefaultTTL is how long a fetched collection stays fresh
const DefaultTTL = 5 * time.Minute

// Item is an entity that can be copied in and out of a collection
type Item[T any] interface {
	domain.Entity
	Clone() T
}

// FetchFunc loads the full contents of a collection from its backing API
type FetchFunc[T Item[T]] func(ctx context.Context) ([]T, error)

// Collection is an in-memory list of entities with whole-collection TTL.
// Only a successful Fetch stamps the fetch time; mutations edit the items
// in place and never make the cache look freshly fetched. Items are cloned
// on the way in and out, so callers never share state with the cache.
type Collection[T Item[T]] struct {
	fetch FetchFunc[T]
	ttl   time.Duration
	now   func() time.Time

	mutex     sync.Mutex
	items     []T
	fetchedAt time.Time
	inflight  int
}

// NewCollection creates an empty collection. A non-positive ttl falls back to DefaultTTL.
func NewCollection[T Item[T]](fetch func(ctx context.Context) ([]T, error), ttl time.Duration) *Collection[T] {
	if ttl <= 0 {
		ttl = DefaultTTL
	}

	return &Collection[T]{
		fetch: fetch,
		ttl:   ttl,
		now:   time.Now,
	}
}

// SetClock replaces the time source used for TTL checks
func (c *Collection[T]) SetClock(now func() time.Time) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.now = now
}

// Fetch returns the cached items when they are fresh and non-empty,
// otherwise it loads them from the backing API. On failure the items and
// fetch time are left as they were and the error is returned unchanged.
func (c *Collection[T]) Fetch(ctx context.Context, forceRefresh bool) ([]T, bool, error) {
	c.mutex.Lock()
	if !forceRefresh && c.validLocked() && len(c.items) > 0 {
		items := cloneAll(c.items)
		c.mutex.Unlock()
		return items, true, nil
	}
	c.mutex.Unlock()

	items, err := c.load(ctx)
	if err != nil {
		return nil, false, err
	}

	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.items = cloneAll(items)
	c.fetchedAt = c.now()

	return cloneAll(c.items), false, nil
}

// load runs the fetch function outside the lock with the loading flag raised
func (c *Collection[T]) load(ctx context.Context) ([]T, error) {
	c.mutex.Lock()
	c.inflight++
	c.mutex.Unlock()

	defer func() {
		c.mutex.Lock()
		c.inflight--
		c.mutex.Unlock()
	}()

	return c.fetch(ctx)
}

// Get looks up an entity by id
func (c *Collection[T]) Get(id int64) (T, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		var zero T
		return zero, false
	}
	return c.items[idx].Clone(), true
}

// All returns a snapshot of the items
func (c *Collection[T]) All() []T {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return cloneAll(c.items)
}

// Len returns the number of cached items
func (c *Collection[T]) Len() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return len(c.items)
}

// Add appends an item
func (c *Collection[T]) Add(item T) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items = append(c.items, item.Clone())
}

// Replace swaps the first item sharing item's id. Reports whether one was found.
func (c *Collection[T]) Replace(item T) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	idx := c.indexLocked(item.EntityID())
	if idx < 0 {
		return false
	}
	c.items[idx] = item.Clone()
	return true
}

// Modify applies fn to the first item with the given id while holding the
// lock, so find-then-change sequences are atomic. Reports whether one was found.
func (c *Collection[T]) Modify(id int64, fn func(item *T)) bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	idx := c.indexLocked(id)
	if idx < 0 {
		return false
	}
	fn(&c.items[idx])
	return true
}

// Remove deletes every item with the given id and returns how many were dropped
func (c *Collection[T]) Remove(id int64) int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	before := len(c.items)
	c.items = slices.DeleteFunc(c.items, func(item T) bool {
		return item.EntityID() == id
	})
	return before - len(c.items)
}

// Clear empties the collection and forgets the fetch time
func (c *Collection[T]) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.items = nil
	c.fetchedAt = time.Time{}
}

// IsValid reports whether the collection was fetched less than one TTL ago
func (c *Collection[T]) IsValid() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.validLocked()
}

// IsLoading reports whether a fetch is in flight. It is not a lock.
func (c *Collection[T]) IsLoading() bool {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.inflight > 0
}

// LastFetchedAt returns the time of the last successful fetch, if any
func (c *Collection[T]) LastFetchedAt() (time.Time, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	return c.fetchedAt, !c.fetchedAt.IsZero()
}

// TTL returns the configured time-to-live
func (c *Collection[T]) TTL() time.Duration {
	return c.ttl
}

func (c *Collection[T]) validLocked() bool {
	if c.fetchedAt.IsZero() {
		return false
	}
	return c.now().Sub(c.fetchedAt) < c.ttl
}

func (c *Collection[T]) indexLocked(id int64) int {
	return slices.IndexFunc(c.items, func(item T) bool {
		return item.EntityID() == id
	})
}

func cloneAll[T Item[T]](items []T) []T {
	if items == nil {
		return nil
	}
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = item.Clone()
	}
	return out
}
