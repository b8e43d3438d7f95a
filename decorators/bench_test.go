package decorators

import (
	"context"
	"testing"

	"github.com/jonwraymond/cachekit/cache"
)

// BenchmarkLRU_Get_Hit measures a touched read through the LRU decorator.
func BenchmarkLRU_Get_Hit(b *testing.B) {
	c := NewLRU(cache.NewMemory("bench"))
	ctx := context.Background()
	_ = c.Put(ctx, "key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.Get(ctx, "key")
	}
}

// BenchmarkLRU_Put_Churn measures puts that continuously evict.
func BenchmarkLRU_Put_Churn(b *testing.B) {
	c := NewLRU(cache.NewMemory("bench"))
	c.SetLimit(128)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Put(ctx, i, "value")
	}
}

// BenchmarkFIFO_Put_Churn measures puts that continuously evict.
func BenchmarkFIFO_Put_Churn(b *testing.B) {
	c := NewFIFO(cache.NewMemory("bench"))
	c.SetLimit(128)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = c.Put(ctx, i, "value")
	}
}

// BenchmarkBlocking_Get_Hit measures the lock round trip on a hit.
func BenchmarkBlocking_Get_Hit(b *testing.B) {
	c := NewBlocking(cache.NewMemory("bench"))
	ctx := context.Background()
	_ = c.Put(ctx, "key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.Get(ctx, "key")
	}
}

// BenchmarkSynced_Get_Hit measures the mutex round trip on a hit.
func BenchmarkSynced_Get_Hit(b *testing.B) {
	c := NewSynced(cache.NewMemory("bench"))
	ctx := context.Background()
	_ = c.Put(ctx, "key", "value")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = c.Get(ctx, "key")
	}
}
