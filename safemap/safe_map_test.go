package safemap

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type entry struct {
	next uint32
}

func TestSafeMap_StoreLoad(t *testing.T) {
	m := NewSafeMap[string, *entry]()
	require.NotNil(t, m)

	t.Run("missing key yields nil and false", func(t *testing.T) {
		v, ok := m.Load("orders")
		assert.False(t, ok)
		assert.Nil(t, v)
	})

	t.Run("stored pointer is returned as is", func(t *testing.T) {
		e := &entry{next: 7}
		m.Store("orders", e)

		v, ok := m.Load("orders")
		require.True(t, ok)
		assert.Same(t, e, v)
	})

	t.Run("store replaces the previous value", func(t *testing.T) {
		e := &entry{next: 9}
		m.Store("orders", e)

		v, ok := m.Load("orders")
		require.True(t, ok)
		assert.Equal(t, uint32(9), v.next)
		assert.Equal(t, 1, m.Len())
	})
}

func TestSafeMap_Delete(t *testing.T) {
	m := NewSafeMap[string, int]()
	m.Store("a", 1)
	m.Store("b", 2)

	t.Run("load and delete reports the removed value", func(t *testing.T) {
		v, ok := m.LoadAndDelete("a")
		assert.True(t, ok)
		assert.Equal(t, 1, v)

		v, ok = m.LoadAndDelete("a")
		assert.False(t, ok)
		assert.Equal(t, 0, v)
	})

	t.Run("delete of an absent key is a no-op", func(t *testing.T) {
		m.Delete("missing")
		assert.Equal(t, 1, m.Len())

		m.Delete("b")
		assert.Equal(t, 0, m.Len())
	})
}

func TestSafeMap_RangeKeys(t *testing.T) {
	m := NewSafeMap[uint64, string]()
	for _, k := range []uint64{30, 10, 20} {
		m.Store(k, fmt.Sprint(k))
	}

	t.Run("keys are sorted", func(t *testing.T) {
		assert.Equal(t, []uint64{10, 20, 30}, m.Keys())
	})

	t.Run("range visits every entry", func(t *testing.T) {
		seen := map[uint64]string{}
		m.Range(func(k uint64, v string) bool {
			seen[k] = v
			return true
		})
		assert.Equal(t, map[uint64]string{10: "10", 20: "20", 30: "30"}, seen)
	})

	t.Run("range stops when f returns false", func(t *testing.T) {
		calls := 0
		m.Range(func(uint64, string) bool {
			calls++
			return false
		})
		assert.Equal(t, 1, calls)
	})

	t.Run("empty map has no keys", func(t *testing.T) {
		assert.Empty(t, NewSafeMap[string, int]().Keys())
	})
}

func TestSafeMap_Concurrent(t *testing.T) {
	m := NewSafeMap[int, int]()
	const n = 100

	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func(k int) {
			defer wg.Done()
			m.Store(k, k*2)
			v, ok := m.Load(k)
			assert.True(t, ok)
			assert.Equal(t, k*2, v)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, n, m.Len())
	assert.Len(t, m.Keys(), n)
}
