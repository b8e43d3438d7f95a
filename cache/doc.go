// Package cache defines the cache contract and its unbounded in-memory
// implementation.
//
// A Cache is identified by an opaque ID and stores opaque key/value pairs.
// Eviction, mutual exclusion, and miss-stampede protection are layered on by
// the decorators package; every decorator satisfies the same Cache interface,
// so chains compose in any order.
package cache
