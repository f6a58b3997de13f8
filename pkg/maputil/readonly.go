package maputil

import (
	"iter"

	"github.com/clientgen/go-sdk/pkg/guard"
)

// ReadOnlyMap is an unmodifiable view over a map. It wraps rather than
// copies: reads go straight to the underlying storage, so mutations the
// owner makes to the source map remain visible through the view.
type ReadOnlyMap[K comparable, V any] struct {
	m map[K]V
}

// ReadOnly wraps m in a read-only view. It fails with a guard.ArgumentError
// when m is nil.
func ReadOnly[K comparable, V any](m map[K]V) (*ReadOnlyMap[K, V], error) {
	if err := guard.NotNil(m, "m"); err != nil {
		return nil, err
	}
	return &ReadOnlyMap[K, V]{m: m}, nil
}

// Get returns the value stored under key and whether it was present.
func (r *ReadOnlyMap[K, V]) Get(key K) (V, bool) {
	v, ok := r.m[key]
	return v, ok
}

// Value returns the value stored under key, or the zero value of V when the
// key is missing.
func (r *ReadOnlyMap[K, V]) Value(key K) V {
	return r.m[key]
}

// Has reports whether key is present.
func (r *ReadOnlyMap[K, V]) Has(key K) bool {
	_, ok := r.m[key]
	return ok
}

// Len returns the number of entries.
func (r *ReadOnlyMap[K, V]) Len() int {
	return len(r.m)
}

// Keys returns the keys in unspecified order. The slice is freshly
// allocated; mutating it does not touch the underlying map.
func (r *ReadOnlyMap[K, V]) Keys() []K {
	keys := make([]K, 0, len(r.m))
	for k := range r.m {
		keys = append(keys, k)
	}
	return keys
}

// All returns an iterator over the entries in unspecified order.
func (r *ReadOnlyMap[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for k, v := range r.m {
			if !yield(k, v) {
				return
			}
		}
	}
}
