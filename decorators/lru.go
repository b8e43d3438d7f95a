package decorators

import (
	"container/list"
	"context"

	"github.com/jonwraymond/cachekit/cache"
)

// LRU bounds the number of resident keys and evicts the least-recently-used
// key when the bound is exceeded. The default bound is cache.DefaultLimit.
//
// Every Get counts as a use: the key is promoted to most-recently-used in
// the ordering list whenever the list tracks it, even if the delegate lookup
// misses. The list never gains a key on Get, only on Put. This means list
// membership is not guaranteed to be a subset of the delegate's resident
// keys; Size is always answered by the delegate. The behavior is inherited
// from the original design and kept for compatibility rather than corrected.
//
// LRU is not safe for concurrent use; wrap it in Synced when shared.
type LRU struct {
	delegate cache.Cache
	limit    int
	order    *list.List // front is most recently used
	tracked  map[any]*list.Element
}

// NewLRU wraps delegate with recency-based eviction.
func NewLRU(delegate cache.Cache) *LRU {
	c := &LRU{delegate: delegate}
	c.SetLimit(cache.DefaultLimit)
	return c
}

// ID returns the delegate's identifier.
func (c *LRU) ID() string {
	return c.delegate.ID()
}

// Size returns the delegate's entry count, not the ordering list's length.
func (c *LRU) Size() int {
	return c.delegate.Size()
}

// SetLimit sets the resident-key bound and resets the ordering bookkeeping.
// It is meant for assembly time; it is not safe to call concurrently with
// traffic.
func (c *LRU) SetLimit(limit int) {
	c.limit = limit
	c.order = list.New()
	c.tracked = make(map[any]*list.Element)
}

// Put stores through to the delegate, then records the key as most recently
// used, evicting the least-recently-used key if the bound is now exceeded.
func (c *LRU) Put(ctx context.Context, key, value any) error {
	if err := c.delegate.Put(ctx, key, value); err != nil {
		return err
	}
	return c.cycle(ctx, key)
}

// Get promotes the key in the ordering list when tracked, then reads from
// the delegate.
func (c *LRU) Get(ctx context.Context, key any) (any, bool, error) {
	if el, ok := c.tracked[key]; ok {
		c.order.MoveToFront(el) // touch
	}
	return c.delegate.Get(ctx, key)
}

// Remove forwards to the delegate. The ordering list is left as is; a stale
// entry is harmless and ages out naturally.
func (c *LRU) Remove(ctx context.Context, key any) (any, bool, error) {
	return c.delegate.Remove(ctx, key)
}

// Clear empties the delegate and the ordering bookkeeping.
func (c *LRU) Clear() error {
	if err := c.delegate.Clear(); err != nil {
		return err
	}
	c.order.Init()
	clear(c.tracked)
	return nil
}

func (c *LRU) cycle(ctx context.Context, key any) error {
	if el, ok := c.tracked[key]; ok {
		c.order.MoveToFront(el)
	} else {
		c.tracked[key] = c.order.PushFront(key)
	}
	if c.order.Len() > c.limit {
		eldest := c.order.Back()
		c.order.Remove(eldest)
		delete(c.tracked, eldest.Value)
		if _, _, err := c.delegate.Remove(ctx, eldest.Value); err != nil {
			return err
		}
	}
	return nil
}

// Ensure LRU implements Cache
var _ cache.Cache = (*LRU)(nil)
