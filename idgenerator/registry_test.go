package idgenerator

import (
	"bytes"
	"fmt"
	"sync"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cyberinferno/go-idgen/logger"
)

func TestRegistry_GetOrCreate(t *testing.T) {
	t.Run("creates then reuses by name", func(t *testing.T) {
		r := NewRegistry[uint32](nil)

		g1, err := r.GetOrCreate("orders", 10, 20, 15, nil)
		require.NoError(t, err)
		assert.Equal(t, uint32(15), g1.Get())

		g2, err := r.GetOrCreate("orders", 0, 5, 0, nil)
		require.NoError(t, err)
		assert.Same(t, g1, g2)
		assert.Equal(t, uint32(10), g2.Min())
		assert.Equal(t, 1, r.Len())
	})

	t.Run("empty name is rejected", func(t *testing.T) {
		r := NewRegistry[uint32](nil)
		g, err := r.GetOrCreate("", 0, 10, 0, nil)
		assert.ErrorIs(t, err, ErrEmptyName)
		assert.Nil(t, g)
	})

	t.Run("invalid range is not registered", func(t *testing.T) {
		r := NewRegistry[uint32](nil)
		g, err := r.GetOrCreate("bad", 10, 0, 0, nil)
		assert.ErrorIs(t, err, ErrInvalidRange)
		assert.Nil(t, g)
		assert.Equal(t, 0, r.Len())
	})

	t.Run("options are honoured", func(t *testing.T) {
		r := NewRegistry[uint32](nil)
		g, err := r.GetOrCreate("tickets", 0, 2, 2, &Options[uint32]{})
		require.NoError(t, err)
		assert.False(t, g.RoundRobin())

		_, err = g.Advance()
		assert.ErrorIs(t, err, ErrOutOfRange)
	})

	t.Run("caller options are not modified", func(t *testing.T) {
		r := NewRegistry[uint32](nil)
		opts := &Options[uint32]{RoundRobin: true}
		_, err := r.GetOrCreate("copy", 0, 2, 0, opts)
		require.NoError(t, err)
		assert.Nil(t, opts.Logger)
	})

	t.Run("concurrent first calls create one generator", func(t *testing.T) {
		r := NewRegistry[uint32](nil)
		const n = 50
		gens := make([]*SyncBoundedGenerator[uint32], n)

		var wg sync.WaitGroup
		wg.Add(n)
		for i := 0; i < n; i++ {
			go func(idx int) {
				defer wg.Done()
				g, err := r.GetOrCreate("shared", 0, 1000, 0, nil)
				assert.NoError(t, err)
				gens[idx] = g
			}(i)
		}
		wg.Wait()

		for _, g := range gens {
			assert.Same(t, gens[0], g)
		}
		assert.Equal(t, 1, r.Len())
	})
}

func TestRegistry_GetRemoveNames(t *testing.T) {
	r := NewRegistry[uint64](nil)
	for _, name := range []string{"sessions", "accounts", "requests"} {
		_, err := r.GetOrCreate(name, 0, 100, 0, nil)
		require.NoError(t, err)
	}

	assert.Equal(t, []string{"accounts", "requests", "sessions"}, r.Names())

	g, ok := r.Get("accounts")
	require.True(t, ok)
	require.NotNil(t, g)

	_, ok = r.Get("missing")
	assert.False(t, ok)

	assert.True(t, r.Remove("accounts"))
	assert.False(t, r.Remove("accounts"))
	assert.Equal(t, 2, r.Len())

	// removed generators stay usable by their holders
	v, err := g.Advance()
	require.NoError(t, err)
	assert.Equal(t, uint64(1), v)
}

func TestRegistry_ConcurrentChurn(t *testing.T) {
	r := NewRegistry[uint32](nil)
	const workers = 20

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func(idx int) {
			defer wg.Done()
			name := fmt.Sprintf("gen-%02d", idx)
			g, err := r.GetOrCreate(name, 0, 10, 0, nil)
			if !assert.NoError(t, err) {
				return
			}

			got, ok := r.Get(name)
			assert.True(t, ok)
			assert.Same(t, g, got)
			assert.NotEmpty(t, r.Names())

			if idx%2 == 0 {
				assert.True(t, r.Remove(name))
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, workers/2, r.Len())
	names := r.Names()
	require.Len(t, names, workers/2)
	assert.Equal(t, "gen-01", names[0])
	assert.Equal(t, "gen-19", names[len(names)-1])
}

func TestRegistry_SharedSequence(t *testing.T) {
	r := NewRegistry[uint32](nil)
	const workers = 10

	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			g, err := r.GetOrCreate("requests", 0, 100000, 0, nil)
			if !assert.NoError(t, err) {
				return
			}

			for j := 0; j < 100; j++ {
				_, err := g.Advance()
				assert.NoError(t, err)
			}
		}()
	}
	wg.Wait()

	g, ok := r.Get("requests")
	require.True(t, ok)
	assert.Equal(t, uint32(workers*100), g.Get())
}

func TestRegistry_Logging(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewZerologLogger(zerolog.New(&buf), "idgen", zerolog.DebugLevel)
	r := NewRegistry[uint32](l)

	g, err := r.GetOrCreate("invoices", 0, 1, 1, &Options[uint32]{})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "id generator registered")

	buf.Reset()
	_, err = g.Advance()
	require.ErrorIs(t, err, ErrOutOfRange)
	assert.Contains(t, buf.String(), "id sequence exhausted")
	assert.Contains(t, buf.String(), fmt.Sprintf(`"generator":%q`, "invoices"))

	buf.Reset()
	r.Remove("invoices")
	assert.Contains(t, buf.String(), "id generator removed")
}
