package cache

import "context"

// Memory is the unbounded map-backed base store. It has no eviction and no
// concurrency control: every operation maps directly onto a hash-table
// insert, lookup, or delete, and none of them can fail.
//
// Memory is NOT safe for concurrent use. That is a hard precondition, not an
// omission: thread safety is layered on by decorators (decorators.Synced or
// decorators.Blocking), never built in here. Concurrent use without an outer
// synchronizing decorator or external locking is a caller bug.
type Memory struct {
	id      string
	entries map[any]any
}

// NewMemory creates an empty base store with the given identifier.
func NewMemory(id string) *Memory {
	return &Memory{
		id:      id,
		entries: make(map[any]any),
	}
}

// ID returns the assigned identifier.
func (m *Memory) ID() string {
	return m.id
}

// Size returns the number of resident entries.
func (m *Memory) Size() int {
	return len(m.entries)
}

// Put stores value under key, overwriting any prior entry.
func (m *Memory) Put(_ context.Context, key, value any) error {
	m.entries[key] = value
	return nil
}

// Get returns the stored value, or (nil, false) on miss.
func (m *Memory) Get(_ context.Context, key any) (any, bool, error) {
	value, ok := m.entries[key]
	return value, ok, nil
}

// Remove deletes the entry for key and returns the prior value if present.
// Idempotent - no error on miss.
func (m *Memory) Remove(_ context.Context, key any) (any, bool, error) {
	value, ok := m.entries[key]
	if ok {
		delete(m.entries, key)
	}
	return value, ok, nil
}

// Clear removes all entries.
func (m *Memory) Clear() error {
	clear(m.entries)
	return nil
}

// Ensure Memory implements Cache
var _ Cache = (*Memory)(nil)
