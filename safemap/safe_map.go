// Package safemap provides a generic concurrent map built on sync.Map, used
// to index shared generators by key.
package safemap

import (
	"sort"
	"sync"

	"golang.org/x/exp/constraints"
)

// SafeMap is a concurrent map that is safe for use by multiple goroutines.
// Keys must be ordered so Keys can return them in a stable order.
//
// SafeMap must not be copied after first use. Len and Keys are O(n).
type SafeMap[K constraints.Ordered, V any] struct {
	m sync.Map
}

// NewSafeMap returns an empty SafeMap.
func NewSafeMap[K constraints.Ordered, V any]() *SafeMap[K, V] {
	return &SafeMap[K, V]{}
}

// Store sets the value for key k, replacing any existing value.
//
// Parameters:
//   - k: The key to store
//   - v: The value to associate with k
func (m *SafeMap[K, V]) Store(k K, v V) {
	m.m.Store(k, v)
}

// Load returns the value stored for key k.
//
// Parameters:
//   - k: The key to look up
//
// Returns:
//   - The value for k, or the zero value of V if absent
//   - true if the key was present
func (m *SafeMap[K, V]) Load(k K) (V, bool) {
	v, found := m.m.Load(k)
	if !found {
		var empty V
		return empty, false
	}

	return v.(V), true
}

// LoadAndDelete removes key k and returns the value it held.
//
// Parameters:
//   - k: The key to remove
//
// Returns:
//   - The removed value, or the zero value of V if absent
//   - true if the key was present
func (m *SafeMap[K, V]) LoadAndDelete(k K) (V, bool) {
	v, loaded := m.m.LoadAndDelete(k)
	if !loaded {
		var empty V
		return empty, false
	}

	return v.(V), true
}

// Delete removes key k. Deleting an absent key is a no-op.
func (m *SafeMap[K, V]) Delete(k K) {
	m.m.Delete(k)
}

// Range calls f for each entry until f returns false. Entries stored or
// deleted during the call may or may not be visited.
//
// Parameters:
//   - f: Function called for each entry; return false to stop
func (m *SafeMap[K, V]) Range(f func(k K, v V) bool) {
	m.m.Range(func(k, v any) bool {
		return f(k.(K), v.(V))
	})
}

// Len returns the number of entries.
func (m *SafeMap[K, V]) Len() int {
	n := 0
	m.Range(func(K, V) bool {
		n++
		return true
	})

	return n
}

// Keys returns all keys in ascending order.
func (m *SafeMap[K, V]) Keys() []K {
	var keys []K
	m.Range(func(k K, _ V) bool {
		keys = append(keys, k)
		return true
	})

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys
}
