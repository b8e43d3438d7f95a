package decorators

import (
	"context"
	"time"

	"github.com/jonwraymond/cachekit/cache"
)

// DefaultFlushInterval is the interval Scheduled flushes at unless
// reconfigured.
const DefaultFlushInterval = time.Hour

// Scheduled flushes the whole delegate once a fixed interval has elapsed.
// The check runs lazily on each operation; there is no background goroutine,
// so a chain that receives no traffic is never flushed. A flush triggered by
// an operation happens before that operation is served, so a Get that trips
// the flush reports a miss.
//
// Scheduled is not safe for concurrent use on its own; wrap it in Synced
// when shared.
type Scheduled struct {
	delegate  cache.Cache
	interval  time.Duration
	lastFlush time.Time
}

// NewScheduled wraps delegate with interval-based flushing.
func NewScheduled(delegate cache.Cache) *Scheduled {
	return &Scheduled{
		delegate:  delegate,
		interval:  DefaultFlushInterval,
		lastFlush: time.Now(),
	}
}

// ID returns the delegate's identifier.
func (c *Scheduled) ID() string {
	return c.delegate.ID()
}

// Size flushes if due, then returns the delegate's entry count.
func (c *Scheduled) Size() int {
	_ = c.flushIfDue()
	return c.delegate.Size()
}

// SetInterval sets the flush interval. Assembly-time only.
func (c *Scheduled) SetInterval(interval time.Duration) {
	c.interval = interval
}

// Put flushes if due, then stores through to the delegate.
func (c *Scheduled) Put(ctx context.Context, key, value any) error {
	if err := c.flushIfDue(); err != nil {
		return err
	}
	return c.delegate.Put(ctx, key, value)
}

// Get reports a miss when the flush was due, otherwise reads the delegate.
func (c *Scheduled) Get(ctx context.Context, key any) (any, bool, error) {
	flushed, err := c.flushIfDueFlagged()
	if err != nil {
		return nil, false, err
	}
	if flushed {
		return nil, false, nil
	}
	return c.delegate.Get(ctx, key)
}

// Remove flushes if due, then removes from the delegate.
func (c *Scheduled) Remove(ctx context.Context, key any) (any, bool, error) {
	if err := c.flushIfDue(); err != nil {
		return nil, false, err
	}
	return c.delegate.Remove(ctx, key)
}

// Clear flushes immediately and resets the interval timer.
func (c *Scheduled) Clear() error {
	c.lastFlush = time.Now()
	return c.delegate.Clear()
}

func (c *Scheduled) flushIfDue() error {
	_, err := c.flushIfDueFlagged()
	return err
}

func (c *Scheduled) flushIfDueFlagged() (bool, error) {
	if time.Since(c.lastFlush) > c.interval {
		return true, c.Clear()
	}
	return false, nil
}

// Ensure Scheduled implements Cache
var _ cache.Cache = (*Scheduled)(nil)
