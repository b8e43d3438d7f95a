package decorators

import (
	"context"
	"log/slog"

	"github.com/jonwraymond/cachekit/cache"
)

// Logged emits a debug log line for every Get along with the running hit
// ratio of the chain below it.
//
// The request and hit counters are plain integers, so like the eviction
// decorators Logged needs a Synced above it when the chain is shared.
type Logged struct {
	delegate cache.Cache
	log      *slog.Logger
	requests int64
	hits     int64
}

// NewLogged wraps delegate with hit-ratio logging. A nil logger uses
// slog.Default.
func NewLogged(delegate cache.Cache, log *slog.Logger) *Logged {
	if log == nil {
		log = slog.Default()
	}
	return &Logged{delegate: delegate, log: log}
}

// ID returns the delegate's identifier.
func (c *Logged) ID() string {
	return c.delegate.ID()
}

// Size returns the delegate's entry count.
func (c *Logged) Size() int {
	return c.delegate.Size()
}

// Put forwards to the delegate.
func (c *Logged) Put(ctx context.Context, key, value any) error {
	return c.delegate.Put(ctx, key, value)
}

// Get forwards the read and logs the outcome with the running hit ratio.
func (c *Logged) Get(ctx context.Context, key any) (any, bool, error) {
	c.requests++
	value, ok, err := c.delegate.Get(ctx, key)
	if err != nil {
		return value, ok, err
	}
	if ok {
		c.hits++
	}
	c.log.DebugContext(ctx, "cache get",
		slog.String("cache", c.delegate.ID()),
		slog.Bool("hit", ok),
		slog.Float64("hit_ratio", c.HitRatio()),
	)
	return value, ok, nil
}

// Remove forwards to the delegate.
func (c *Logged) Remove(ctx context.Context, key any) (any, bool, error) {
	return c.delegate.Remove(ctx, key)
}

// Clear forwards to the delegate.
func (c *Logged) Clear() error {
	return c.delegate.Clear()
}

// HitRatio returns hits over requests, or 0 before the first Get.
func (c *Logged) HitRatio() float64 {
	if c.requests == 0 {
		return 0
	}
	return float64(c.hits) / float64(c.requests)
}

// Ensure Logged implements Cache
var _ cache.Cache = (*Logged)(nil)
