package decorators

import (
	"context"
	"sync"

	"github.com/jonwraymond/cachekit/cache"
)

// Synced serializes every operation on the chain below it with a single
// mutex. It is the mutual-exclusion decorator the eviction decorators and
// the base store rely on for concurrent use: none of them lock internally,
// so a shared chain needs a Synced (or equivalent external locking) above
// any decorator that mutates state.
type Synced struct {
	mu       sync.Mutex
	delegate cache.Cache
}

// NewSynced wraps delegate with mutual exclusion.
func NewSynced(delegate cache.Cache) *Synced {
	return &Synced{delegate: delegate}
}

// ID returns the delegate's identifier.
func (c *Synced) ID() string {
	return c.delegate.ID()
}

// Size returns the delegate's entry count.
func (c *Synced) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delegate.Size()
}

// Put stores through to the delegate under the lock.
func (c *Synced) Put(ctx context.Context, key, value any) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delegate.Put(ctx, key, value)
}

// Get reads from the delegate under the lock.
func (c *Synced) Get(ctx context.Context, key any) (any, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delegate.Get(ctx, key)
}

// Remove removes from the delegate under the lock.
func (c *Synced) Remove(ctx context.Context, key any) (any, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delegate.Remove(ctx, key)
}

// Clear clears the delegate under the lock.
func (c *Synced) Clear() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.delegate.Clear()
}

// Ensure Synced implements Cache
var _ cache.Cache = (*Synced)(nil)
