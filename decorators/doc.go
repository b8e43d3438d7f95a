// Package decorators provides the stackable cache decorators.
//
// Every decorator wraps a cache.Cache delegate and is itself a cache.Cache,
// so decorators compose transitively in any order. Each one intercepts only
// the operations it augments and forwards everything else to its delegate:
//
//   - LRU, FIFO: bounded-size eviction (recency and insertion order).
//   - Blocking: per-key miss-stampede protection.
//   - Synced: mutual exclusion around every operation.
//   - Scheduled: full flush after a fixed interval.
//   - Serialized: value isolation through gob round-trips.
//   - Metrics, Logged: OpenTelemetry counters and slog hit-ratio logging.
//
// Build assembles a standard chain from functional options.
//
// Eviction decorators are not safe for concurrent mutation on their own;
// wrap them in Synced (or Blocking plus external discipline) when the chain
// is shared across goroutines.
package decorators
