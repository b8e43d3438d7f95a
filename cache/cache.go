package cache

import "context"

// DefaultLimit is the default resident-key bound used by eviction decorators.
const DefaultLimit = 1024

// Cache is the contract shared by the base store and every decorator.
//
// Contract:
//   - Keys: opaque comparable values with value equality (Go map-key
//     semantics). The cache never inspects key structure.
//   - Values: stored as supplied, never copied or transformed. A nil value
//     is legal and represents a known-empty result; it is distinct from
//     absence, which is reported through the ok return.
//   - Errors: Get must not fail for an unknown key and Remove must not fail
//     for an absent one. Decorators propagate delegate errors unchanged.
//   - Concurrency: implementations are NOT required to be safe for
//     concurrent use; thread safety is a decorator concern.
type Cache interface {
	// ID returns the caller-assigned identifier, stable for the cache's
	// lifetime. It is used for identity and diagnostics, never for lookups.
	ID() string

	// Size returns the number of resident entries. Decorators report the
	// delegate's count rather than tracking their own.
	Size() int

	// Put unconditionally stores value under key, overwriting any prior
	// entry. A nil value is stored, not treated as a delete.
	Put(ctx context.Context, key, value any) error

	// Get returns the stored value and true, or (nil, false) when the key
	// is not resident.
	Get(ctx context.Context, key any) (any, bool, error)

	// Remove deletes the entry for key and returns the prior value if one
	// was present. Removing an absent key is not an error.
	Remove(ctx context.Context, key any) (any, bool, error)

	// Clear removes every entry and resets decorator-local bookkeeping.
	Clear() error
}

// Equal reports whether two caches are the same cache. Identity is defined
// purely by ID: two caches of any concrete kind are equal iff their IDs are
// equal, regardless of decorator wrapping or internal state. Comparing a
// cache with an empty ID returns ErrNoID; that indicates a misassembled
// chain and callers should treat it as fatal.
func Equal(a, b Cache) (bool, error) {
	if a.ID() == "" || b.ID() == "" {
		return false, ErrNoID
	}
	return a.ID() == b.ID(), nil
}
