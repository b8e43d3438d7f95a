package decorators

import (
	"bytes"
	"context"
	"encoding/gob"
	"fmt"

	"github.com/jonwraymond/cachekit/cache"
)

// Serialized stores gob-encoded snapshots of values and decodes a fresh copy
// on every Get, so callers can mutate what they read back without corrupting
// the cached state or each other.
//
// Values must be gob-encodable, and callers must gob.Register concrete types
// stored through an interface. A nil value is stored as nil without
// encoding, preserving the contract that nil is a legal cached value.
//
// Serialized is not safe for concurrent use on its own; wrap it in Synced
// when shared.
type Serialized struct {
	delegate cache.Cache
}

// NewSerialized wraps delegate with value serialization.
func NewSerialized(delegate cache.Cache) *Serialized {
	return &Serialized{delegate: delegate}
}

// ID returns the delegate's identifier.
func (c *Serialized) ID() string {
	return c.delegate.ID()
}

// Size returns the delegate's entry count.
func (c *Serialized) Size() int {
	return c.delegate.Size()
}

// Put encodes the value and stores the snapshot in the delegate.
func (c *Serialized) Put(ctx context.Context, key, value any) error {
	if value == nil {
		return c.delegate.Put(ctx, key, nil)
	}
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(&value); err != nil {
		return fmt.Errorf("cache: encoding value for key %v: %w", key, err)
	}
	return c.delegate.Put(ctx, key, buf.Bytes())
}

// Get decodes a private copy of the stored snapshot.
func (c *Serialized) Get(ctx context.Context, key any) (any, bool, error) {
	raw, ok, err := c.delegate.Get(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}
	return c.decode(key, raw)
}

// Remove removes the entry and returns a decoded copy of the prior value.
func (c *Serialized) Remove(ctx context.Context, key any) (any, bool, error) {
	raw, ok, err := c.delegate.Remove(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}
	return c.decode(key, raw)
}

// Clear clears the delegate.
func (c *Serialized) Clear() error {
	return c.delegate.Clear()
}

func (c *Serialized) decode(key, raw any) (any, bool, error) {
	if raw == nil {
		return nil, true, nil
	}
	data, ok := raw.([]byte)
	if !ok {
		// The entry was stored below this decorator, bypassing encoding.
		return nil, false, fmt.Errorf("cache: entry for key %v was not stored serialized", key)
	}
	var value any
	if err := gob.NewDecoder(bytes.NewReader(data)).Decode(&value); err != nil {
		return nil, false, fmt.Errorf("cache: decoding value for key %v: %w", key, err)
	}
	return value, true, nil
}

// Ensure Serialized implements Cache
var _ cache.Cache = (*Serialized)(nil)
