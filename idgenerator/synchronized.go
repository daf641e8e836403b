package idgenerator

import "sync"

// SynchronizedGenerator serializes every operation on an inner generator
// through a mutex. Reads are serialized as well, so Get always returns a value
// some caller actually stored. Errors from the inner generator are returned
// unchanged and the lock is released on every exit path.
//
// The wrapper owns the inner generator: callers must not keep using it
// directly after handing it over.
type SynchronizedGenerator[T Integer, G Core[T]] struct {
	mu    sync.Mutex
	inner G
}

// NewSynchronizedGenerator wraps inner so it is safe for concurrent use.
//
// Parameters:
//   - inner: The generator to guard
//
// Returns:
//   - A new SynchronizedGenerator owning inner
func NewSynchronizedGenerator[T Integer, G Core[T]](inner G) *SynchronizedGenerator[T, G] {
	return &SynchronizedGenerator[T, G]{inner: inner}
}

// Get implements Core.
func (s *SynchronizedGenerator[T, G]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Get()
}

// Set implements Core.
func (s *SynchronizedGenerator[T, G]) Set(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Set(v)
}

// Advance implements Core.
func (s *SynchronizedGenerator[T, G]) Advance() (T, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Advance()
}

// TryAdvance is Advance without blocking: if another goroutine holds the
// lock it returns immediately with ok set to false.
//
// Returns:
//   - The new value when ok is true
//   - ok: false if the lock was busy and nothing was done
//   - The inner generator's error, if any
func (s *SynchronizedGenerator[T, G]) TryAdvance() (T, bool, error) {
	var zero T
	if !s.mu.TryLock() {
		return zero, false, nil
	}

	defer s.mu.Unlock()
	v, err := s.inner.Advance()
	return v, true, err
}

// Do runs fn with exclusive access to the inner generator, so several
// operations can be combined into one atomic step. fn must not retain the
// generator after returning.
//
// Parameters:
//   - fn: Function called with the inner generator while the lock is held
//
// Returns:
//   - The error returned by fn
func (s *SynchronizedGenerator[T, G]) Do(fn func(g G) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return fn(s.inner)
}

// SyncBoundedGenerator is a BoundedGenerator behind a mutex. Besides Get,
// Set and Advance it exposes the range and mode mutators, each under the same
// lock. It is safe for concurrent use by multiple goroutines.
type SyncBoundedGenerator[T Integer] struct {
	*SynchronizedGenerator[T, *BoundedGenerator[T]]
}

// NewSyncBoundedGenerator creates a BoundedGenerator with the given range and
// options and wraps it for concurrent use.
//
// Parameters:
//   - lo: Lower bound of the range (inclusive)
//   - hi: Upper bound of the range (inclusive)
//   - initial: Starting current value, raised to lo if below it
//   - opts: Generator options; nil means DefaultOptions
//
// Returns:
//   - The new generator, or ErrInvalidRange if lo > hi
func NewSyncBoundedGenerator[T Integer](lo, hi, initial T, opts *Options[T]) (*SyncBoundedGenerator[T], error) {
	g, err := NewBoundedGenerator(lo, hi, initial, opts)
	if err != nil {
		return nil, err
	}

	return &SyncBoundedGenerator[T]{NewSynchronizedGenerator[T](g)}, nil
}

// Min returns the lower bound.
func (s *SyncBoundedGenerator[T]) Min() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Min()
}

// Max returns the upper bound.
func (s *SyncBoundedGenerator[T]) Max() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.Max()
}

// SetMin replaces the lower bound. See BoundedGenerator.SetMin.
func (s *SyncBoundedGenerator[T]) SetMin(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.SetMin(v)
}

// SetMax replaces the upper bound. See BoundedGenerator.SetMax.
func (s *SyncBoundedGenerator[T]) SetMax(v T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.SetMax(v)
}

// SetRange replaces both bounds and the current value. See
// BoundedGenerator.SetRange.
func (s *SyncBoundedGenerator[T]) SetRange(lo, hi, initial T) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.SetRange(lo, hi, initial)
}

// RoundRobin reports whether the generator wraps at max.
func (s *SyncBoundedGenerator[T]) RoundRobin() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.inner.RoundRobin()
}

// SetRoundRobin switches between round-robin and bounded mode.
func (s *SyncBoundedGenerator[T]) SetRoundRobin(enabled bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.inner.SetRoundRobin(enabled)
}
