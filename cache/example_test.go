package cache_test

import (
	"context"
	"fmt"

	"github.com/jonwraymond/cachekit/cache"
)

func ExampleNewMemory() {
	c := cache.NewMemory("user-queries")
	ctx := context.Background()

	_ = c.Put(ctx, "user:42", "Ada")

	if value, ok, _ := c.Get(ctx, "user:42"); ok {
		fmt.Println("Value:", value)
	}
	fmt.Println("Size:", c.Size())
	// Output:
	// Value: Ada
	// Size: 1
}

func ExampleNewKey() {
	// A composite fingerprint of statement id, parameters, and bounds.
	k1 := cache.NewKey("selectUsers", map[string]int{"minAge": 21}, 0, 50)
	k2 := cache.NewKey("selectUsers", map[string]int{"minAge": 21}, 0, 50)

	fmt.Println("Equal:", k1 == k2)
	// Output:
	// Equal: true
}

func ExampleGetOrLoad() {
	c := cache.NewMemory("user-queries")
	ctx := context.Background()

	load := func(context.Context) (any, error) {
		fmt.Println("executing query")
		return "Ada", nil
	}

	// First call misses and runs the loader; second is served from cache.
	v1, _ := cache.GetOrLoad(ctx, c, "user:42", load)
	v2, _ := cache.GetOrLoad(ctx, c, "user:42", load)
	fmt.Println(v1, v2)
	// Output:
	// executing query
	// Ada Ada
}
