package idgenerator

import "math"

// NewSimpleGenerator returns the common-case generator: uint32 IDs over the
// full [0, math.MaxUint32] range, starting at 0 and wrapping back to 0 after
// the maximum. It is not safe for concurrent use.
func NewSimpleGenerator() *BoundedGenerator[uint32] {
	// the full range is always valid
	g, _ := NewBoundedGenerator[uint32](0, math.MaxUint32, 0, nil)
	return g
}

// NewSimpleSyncGenerator is NewSimpleGenerator behind a mutex, safe for
// concurrent use by multiple goroutines.
func NewSimpleSyncGenerator() *SyncBoundedGenerator[uint32] {
	g, _ := NewSyncBoundedGenerator[uint32](0, math.MaxUint32, 0, nil)
	return g
}
