package cache

import "context"

// Loader computes the value for a key that missed in the cache.
type Loader func(ctx context.Context) (any, error)

// GetOrLoad runs the read-before-execute / write-after-execute protocol the
// cache chain is designed around: attempt Get; on absence run the loader and
// Put the result; on loader failure call Remove and return the loader error.
//
// The Remove on the failure path is what keeps a Blocking decorator live: a
// caller that observed a miss holds the key lock, and Remove releases it
// without storing anything, so waiting callers can proceed. On chains with
// no Blocking decorator the Remove is a harmless no-op for an absent key.
//
// Loader errors are never cached.
func GetOrLoad(ctx context.Context, c Cache, key any, load Loader) (any, error) {
	value, ok, err := c.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if ok {
		return value, nil
	}

	value, err = load(ctx)
	if err != nil {
		// The loader failure is the caller's error; the unlock is best
		// effort.
		_, _, _ = c.Remove(ctx, key)
		return nil, err
	}

	if err := c.Put(ctx, key, value); err != nil {
		return nil, err
	}
	return value, nil
}
