package cache

import (
	"errors"
	"fmt"
)

// Sentinel errors for cache operations.
var (
	// ErrNoID is returned when identity is requested for a cache whose ID
	// was never assigned. This is a configuration error, not a runtime
	// condition: the chain was assembled incorrectly.
	ErrNoID = errors.New("cache: cache instances require an ID")

	// ErrLockTimeout is the cause recorded in a LockError when a bounded
	// lock wait elapsed before the key lock became available.
	ErrLockTimeout = errors.New("cache: timed out waiting for key lock")
)

// LockError reports a failure to obtain exclusive access to a cache key.
// Both a bounded wait that times out and a wait interrupted by context
// cancellation surface as a LockError, so callers have a single failure
// surface for "could not obtain exclusive access". The error identifies the
// key and the owning cache; it is never retried by the cache itself.
type LockError struct {
	CacheID string
	Key     any
	Cause   error
}

// Error implements the error interface.
func (e *LockError) Error() string {
	return fmt.Sprintf("cache: could not acquire lock for key %v on cache %q: %v", e.Key, e.CacheID, e.Cause)
}

// Unwrap returns the underlying cause (ErrLockTimeout or a context error).
func (e *LockError) Unwrap() error {
	return e.Cause
}
