package cache

import (
	"context"
	"errors"
	"testing"
)

// staleWrapper is a minimal decorator used to prove identity ignores
// wrapping and internal state.
type staleWrapper struct {
	delegate Cache
}

func (w *staleWrapper) ID() string { return w.delegate.ID() }
func (w *staleWrapper) Size() int  { return w.delegate.Size() }
func (w *staleWrapper) Put(ctx context.Context, key, value any) error {
	return w.delegate.Put(ctx, key, value)
}
func (w *staleWrapper) Get(ctx context.Context, key any) (any, bool, error) {
	return w.delegate.Get(ctx, key)
}
func (w *staleWrapper) Remove(ctx context.Context, key any) (any, bool, error) {
	return w.delegate.Remove(ctx, key)
}
func (w *staleWrapper) Clear() error { return w.delegate.Clear() }

func TestEqual_ByIDOnly(t *testing.T) {
	ctx := context.Background()

	a := NewMemory("users")
	b := NewMemory("users")
	_ = b.Put(ctx, "k", "divergent state")

	eq, err := Equal(a, b)
	if err != nil {
		t.Fatalf("Equal failed: %v", err)
	}
	if !eq {
		t.Error("caches with the same ID must be equal regardless of state")
	}

	// Wrapping does not change identity
	eq, err = Equal(a, &staleWrapper{delegate: b})
	if err != nil {
		t.Fatalf("Equal failed: %v", err)
	}
	if !eq {
		t.Error("a wrapped cache must equal an unwrapped cache with the same ID")
	}

	c := NewMemory("orders")
	eq, err = Equal(a, c)
	if err != nil {
		t.Fatalf("Equal failed: %v", err)
	}
	if eq {
		t.Error("caches with different IDs must never be equal")
	}
}

func TestEqual_MissingID(t *testing.T) {
	a := NewMemory("")
	b := NewMemory("users")

	if _, err := Equal(a, b); !errors.Is(err, ErrNoID) {
		t.Errorf("Equal with unset ID = %v, want ErrNoID", err)
	}
	if _, err := Equal(b, a); !errors.Is(err, ErrNoID) {
		t.Errorf("Equal with unset ID on either side = %v, want ErrNoID", err)
	}
}

func TestEqual_Reflexive(t *testing.T) {
	a := NewMemory("users")
	eq, err := Equal(a, a)
	if err != nil {
		t.Fatalf("Equal failed: %v", err)
	}
	if !eq {
		t.Error("a cache must equal itself")
	}
}
