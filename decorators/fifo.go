package decorators

import (
	"context"

	"github.com/jonwraymond/cachekit/cache"
)

// FIFO bounds the number of resident keys and evicts the earliest-inserted
// key when the bound is exceeded. Insertion order, not access order: Get
// never reorders anything, so a frequently-read key is still evicted on
// schedule. The default bound is cache.DefaultLimit.
//
// Re-putting an existing key appends a duplicate queue entry rather than
// moving the original; eviction pops whichever occurrence is oldest. This
// matches the original design, where the queue tracks puts, not keys.
//
// FIFO is not safe for concurrent use; wrap it in Synced when shared.
type FIFO struct {
	delegate cache.Cache
	limit    int
	queue    []any // head at index 0
}

// NewFIFO wraps delegate with insertion-order eviction.
func NewFIFO(delegate cache.Cache) *FIFO {
	return &FIFO{
		delegate: delegate,
		limit:    cache.DefaultLimit,
	}
}

// ID returns the delegate's identifier.
func (c *FIFO) ID() string {
	return c.delegate.ID()
}

// Size returns the delegate's entry count.
func (c *FIFO) Size() int {
	return c.delegate.Size()
}

// SetLimit sets the resident-key bound. Assembly-time only; not safe to
// call concurrently with traffic.
func (c *FIFO) SetLimit(limit int) {
	c.limit = limit
}

// Put appends the key to the queue, evicting the head key if the queue now
// exceeds the bound, then stores through to the delegate. The queue cycles
// before the store, so inserting into a full cache removes the oldest key
// first.
func (c *FIFO) Put(ctx context.Context, key, value any) error {
	if err := c.cycle(ctx, key); err != nil {
		return err
	}
	return c.delegate.Put(ctx, key, value)
}

// Get reads from the delegate without touching the queue.
func (c *FIFO) Get(ctx context.Context, key any) (any, bool, error) {
	return c.delegate.Get(ctx, key)
}

// Remove forwards to the delegate. Queue entries for the key age out on
// their own.
func (c *FIFO) Remove(ctx context.Context, key any) (any, bool, error) {
	return c.delegate.Remove(ctx, key)
}

// Clear empties the delegate and the key queue.
func (c *FIFO) Clear() error {
	if err := c.delegate.Clear(); err != nil {
		return err
	}
	c.queue = c.queue[:0]
	return nil
}

func (c *FIFO) cycle(ctx context.Context, key any) error {
	c.queue = append(c.queue, key)
	if len(c.queue) > c.limit {
		oldest := c.queue[0]
		c.queue[0] = nil // release the reference before reslicing
		c.queue = c.queue[1:]
		if _, _, err := c.delegate.Remove(ctx, oldest); err != nil {
			return err
		}
	}
	return nil
}

// Ensure FIFO implements Cache
var _ cache.Cache = (*FIFO)(nil)
