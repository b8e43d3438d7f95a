package decorators

import (
	"context"
	"sync"
	"time"

	"github.com/jonwraymond/cachekit/cache"
)

// Blocking serializes population of a missing key so that of many concurrent
// callers missing on the same key, exactly one computes the value while the
// rest wait. It is a simple, deliberately inefficient take on a blocking
// cache: a per-key lock guards the window between a miss and the put that
// fills it.
//
// Calling protocol:
//   - Get acquires the key lock before consulting the delegate. On a hit the
//     lock is released immediately and the value returned. On a miss the
//     caller gets (nil, false) while STILL HOLDING the lock, and is expected
//     to compute the value and Put it (which releases), or Remove the key to
//     abort (which only releases, never deleting delegate data).
//   - Put stores through to the delegate and then releases the key lock.
//     Releasing an unheld lock is a no-op, so a Put without a prior miss is
//     safe.
//   - Remove does NOT delegate the removal; despite its name, it is called
//     only to release the lock. It always reports absent.
//   - Clear clears the delegate and intentionally leaves lock state alone:
//     an in-flight computation owns its lock until it calls Put or Remove.
//
// Per-key locks are created lazily and never removed for the life of the
// process. That growth, bounded only by key-space cardinality, is a
// deliberate trade-off: removing a lock races with a waiter about to grab
// it, and the original design chose simplicity over lock-table cleanup.
// (A reference-counted entry freed when the last waiter leaves would bound
// the table; that is an extension, not this decorator.)
//
// Blocking guards the miss-fill window only. It does not make the delegate's
// own mutations safe for concurrent use; that remains Synced's job.
type Blocking struct {
	delegate cache.Cache
	timeout  time.Duration
	locks    sync.Map // key -> chan struct{} with capacity 1
}

// NewBlocking wraps delegate with per-key miss-stampede protection.
func NewBlocking(delegate cache.Cache) *Blocking {
	return &Blocking{delegate: delegate}
}

// ID returns the delegate's identifier.
func (c *Blocking) ID() string {
	return c.delegate.ID()
}

// Size returns the delegate's entry count.
func (c *Blocking) Size() int {
	return c.delegate.Size()
}

// Timeout returns the configured lock-wait bound.
func (c *Blocking) Timeout() time.Duration {
	return c.timeout
}

// SetTimeout bounds how long Get waits for a key lock. Zero (the default)
// waits indefinitely. Assembly-time only.
func (c *Blocking) SetTimeout(timeout time.Duration) {
	c.timeout = timeout
}

// Put stores through to the delegate, then releases the key lock. The lock
// is released even when the store fails, so an aborted fill cannot strand
// waiters.
func (c *Blocking) Put(ctx context.Context, key, value any) error {
	err := c.delegate.Put(ctx, key, value)
	c.release(key)
	return err
}

// Get acquires the key lock, then reads the delegate. A hit releases the
// lock before returning; a miss returns with the lock still held (see the
// type comment for the protocol). A wait that exceeds the configured
// timeout, or is cut short by ctx, fails with *cache.LockError.
func (c *Blocking) Get(ctx context.Context, key any) (any, bool, error) {
	if err := c.acquire(ctx, key); err != nil {
		return nil, false, err
	}
	value, ok, err := c.delegate.Get(ctx, key)
	if err != nil {
		return nil, false, err
	}
	if ok {
		c.release(key)
	}
	return value, ok, nil
}

// Remove releases the key lock without touching delegate data. It is
// idempotent: releasing a lock nobody holds does nothing.
func (c *Blocking) Remove(_ context.Context, key any) (any, bool, error) {
	// despite its name, this method is called only to release locks
	c.release(key)
	return nil, false, nil
}

// Clear clears the delegate. Lock state is untouched.
func (c *Blocking) Clear() error {
	return c.delegate.Clear()
}

func (c *Blocking) lockFor(key any) chan struct{} {
	if l, ok := c.locks.Load(key); ok {
		return l.(chan struct{})
	}
	l, _ := c.locks.LoadOrStore(key, make(chan struct{}, 1))
	return l.(chan struct{})
}

func (c *Blocking) acquire(ctx context.Context, key any) error {
	l := c.lockFor(key)
	if c.timeout > 0 {
		timer := time.NewTimer(c.timeout)
		defer timer.Stop()
		select {
		case l <- struct{}{}:
			return nil
		case <-timer.C:
			return &cache.LockError{CacheID: c.delegate.ID(), Key: key, Cause: cache.ErrLockTimeout}
		case <-ctx.Done():
			return &cache.LockError{CacheID: c.delegate.ID(), Key: key, Cause: ctx.Err()}
		}
	}
	select {
	case l <- struct{}{}:
		return nil
	case <-ctx.Done():
		return &cache.LockError{CacheID: c.delegate.ID(), Key: key, Cause: ctx.Err()}
	}
}

// release frees the key lock if it is held and is a no-op otherwise. The
// drain is atomic, so a release racing another caller's acquire cannot
// double-unlock.
func (c *Blocking) release(key any) {
	l, ok := c.locks.Load(key)
	if !ok {
		return
	}
	select {
	case <-l.(chan struct{}):
	default:
	}
}

// Ensure Blocking implements Cache
var _ cache.Cache = (*Blocking)(nil)
