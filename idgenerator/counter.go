package idgenerator

import "sync/atomic"

// Core is the capability shared by every generator in this package. Wrappers
// such as SynchronizedGenerator accept any Core.
type Core[T Integer] interface {
	// Get returns the current value without changing it.
	Get() T

	// Set replaces the current value, subject to the generator's range rules.
	Set(v T) error

	// Advance moves to the next value and returns it.
	Advance() (T, error)
}

// SequentialCounter is the minimal generator: a single value with no range,
// no policy and no bounds checks. It is not safe for concurrent use; wrap it
// in a SynchronizedGenerator or use AtomicCounter when sharing it.
type SequentialCounter[T Integer] struct {
	current T
}

// NewSequentialCounter creates a counter holding start. The first Advance
// returns start+1.
//
// Parameters:
//   - start: The initial current value
//
// Returns:
//   - A new SequentialCounter
func NewSequentialCounter[T Integer](start T) *SequentialCounter[T] {
	return &SequentialCounter[T]{current: start}
}

// Get implements Core.
func (c *SequentialCounter[T]) Get() T {
	return c.current
}

// Set implements Core. It never fails.
func (c *SequentialCounter[T]) Set(v T) error {
	c.current = v
	return nil
}

// Advance implements Core. It increments by one and never fails.
func (c *SequentialCounter[T]) Advance() (T, error) {
	c.current++
	return c.current, nil
}

// AtomicCounter is a lock-free uint64 counter with the same operations as
// SequentialCounter. It is safe for concurrent use by multiple goroutines;
// each Advance returns a distinct value until the counter overflows.
type AtomicCounter struct {
	current atomic.Uint64
}

// NewAtomicCounter creates an AtomicCounter whose first Advance returns
// start+1. Starting at 0 leaves 0 free to mean "no id".
//
// Parameters:
//   - start: The initial current value
//
// Returns:
//   - A new AtomicCounter
func NewAtomicCounter(start uint64) *AtomicCounter {
	c := &AtomicCounter{}
	c.current.Store(start)
	return c
}

// Get implements Core.
func (c *AtomicCounter) Get() uint64 {
	return c.current.Load()
}

// Set implements Core. It never fails.
func (c *AtomicCounter) Set(v uint64) error {
	c.current.Store(v)
	return nil
}

// Advance implements Core. It never fails.
func (c *AtomicCounter) Advance() (uint64, error) {
	return c.current.Add(1), nil
}
