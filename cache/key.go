package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Key is a composite cache-key fingerprint. It is a comparable string-backed
// value, so it can be used directly as a map key and satisfies the value
// equality the Cache contract requires of keys.
type Key string

// NewKey builds a deterministic fingerprint over heterogeneous parts, such
// as a statement identifier, its parameters, and pagination bounds. The same
// parts in the same order always produce the same Key.
//
// Determinism relies on fmt's value formatting, which prints map entries in
// sorted key order. Parts that format unstably (e.g. pointers to distinct
// but equal values) should be dereferenced or converted by the caller first.
func NewKey(parts ...any) Key {
	h := sha256.New()
	for _, part := range parts {
		// Type name disambiguates int64(1) from uint64(1); the unit
		// separator disambiguates ("ab","c") from ("a","bc").
		fmt.Fprintf(h, "%T=%v\x1f", part, part)
	}
	sum := h.Sum(nil)
	return Key(hex.EncodeToString(sum[:16]))
}

// String returns the hex fingerprint.
func (k Key) String() string {
	return string(k)
}
