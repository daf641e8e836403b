package idgenerator

import (
	"fmt"

	"github.com/cyberinferno/go-idgen/logger"
)

// Options configures a BoundedGenerator.
type Options[T Integer] struct {
	// Policy computes the next value; nil means IncrementPolicy.
	Policy AdvancePolicy[T]
	// RoundRobin wraps the sequence at max instead of failing.
	RoundRobin bool
	// Logger receives boundary events; nil means a no-op logger.
	Logger logger.Logger
}

// DefaultOptions returns the increment policy with round-robin enabled and
// logging disabled.
func DefaultOptions[T Integer]() *Options[T] {
	return &Options[T]{
		Policy:     IncrementPolicy[T]{},
		RoundRobin: true,
		Logger:     logger.NewNopLogger(),
	}
}

// BoundedGenerator hands out values in [min, max] under an AdvancePolicy.
//
// In round-robin mode Advance never fails: the policy's candidate is wrapped
// into [min, max], and Set wraps any input the same way. In bounded mode
// Advance fails with ErrOutOfRange once the policy reports the sequence
// exhausted, and Set rejects values outside the range.
//
// Changing min or max does not move the current value; the next Set or
// Advance enforces the new bounds.
//
// A BoundedGenerator is not safe for concurrent use. Use SyncBoundedGenerator
// to share one between goroutines.
type BoundedGenerator[T Integer] struct {
	current    T
	min        T
	max        T
	roundRobin bool
	policy     AdvancePolicy[T]
	log        logger.Logger
}

// NewBoundedGenerator creates a generator over [lo, hi] starting at initial.
// An initial value below lo is raised to lo. A value above hi is wrapped into
// range in round-robin mode and rejected in bounded mode.
//
// Parameters:
//   - lo: Lower bound of the range (inclusive)
//   - hi: Upper bound of the range (inclusive)
//   - initial: Starting current value
//   - opts: Generator options; nil means DefaultOptions
//
// Returns:
//   - The new generator
//   - ErrInvalidRange if lo > hi, or ErrOutOfRange if round-robin is off and
//     initial > hi
func NewBoundedGenerator[T Integer](lo, hi, initial T, opts *Options[T]) (*BoundedGenerator[T], error) {
	if opts == nil {
		opts = DefaultOptions[T]()
	}

	current, err := startValue(lo, hi, initial, opts.RoundRobin)
	if err != nil {
		return nil, err
	}

	g := &BoundedGenerator[T]{
		current:    current,
		min:        lo,
		max:        hi,
		roundRobin: opts.RoundRobin,
		policy:     opts.Policy,
		log:        opts.Logger,
	}

	if g.policy == nil {
		g.policy = IncrementPolicy[T]{}
	}

	if g.log == nil {
		g.log = logger.NewNopLogger()
	}

	return g, nil
}

// startValue validates [lo, hi] and places initial in it: raised to lo when
// below, wrapped when above in round-robin mode, rejected otherwise.
func startValue[T Integer](lo, hi, initial T, roundRobin bool) (T, error) {
	var zero T
	if lo > hi {
		return zero, fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidRange, lo, hi)
	}

	if initial <= hi {
		return max(initial, lo), nil
	}

	if !roundRobin {
		return zero, fmt.Errorf("%w: initial %v exceeds max %v", ErrOutOfRange, initial, hi)
	}

	return wrap(lo, hi, initial), nil
}

// Get implements Core.
func (g *BoundedGenerator[T]) Get() T {
	return g.current
}

// Set implements Core. In round-robin mode v is wrapped into [min, max]; in
// bounded mode a value outside the range fails with ErrOutOfRange and the
// current value is kept.
//
// Parameters:
//   - v: The value to store
//
// Returns:
//   - ErrOutOfRange if round-robin is off and v is outside [min, max]
func (g *BoundedGenerator[T]) Set(v T) error {
	if g.roundRobin {
		g.current = wrap(g.min, g.max, v)
		return nil
	}

	if v < g.min || v > g.max {
		return fmt.Errorf("%w: %v is outside [%v, %v]", ErrOutOfRange, v, g.min, g.max)
	}

	g.current = v
	return nil
}

// Advance implements Core. It asks the policy for the next value and stores
// it.
//
// In round-robin mode the candidate is wrapped into [min, max]; the policy's
// exhaustion report is not consulted. A candidate that fell below current and
// out of range overflowed T and restarts the cycle at min.
//
// In bounded mode an exhausted sequence or a candidate above max fails with
// ErrOutOfRange and leaves the state unchanged; a candidate below min is
// raised to min.
//
// Returns:
//   - The new current value
//   - ErrOutOfRange if round-robin is off and no further value exists
func (g *BoundedGenerator[T]) Advance() (T, error) {
	var zero T

	if g.roundRobin {
		candidate := g.policy.Next(g.min, g.max, g.current)
		next := candidate
		if candidate < g.min || candidate > g.max {
			if candidate < g.current {
				next = g.min
			} else {
				next = wrap(g.min, g.max, candidate)
			}
		}

		if next != candidate {
			g.log.Debug("id sequence wrapped",
				logger.Field{Key: "from", Value: g.current},
				logger.Field{Key: "to", Value: next})
		}

		g.current = next
		return g.current, nil
	}

	if g.policy.Exhausted(g.min, g.max, g.current) {
		g.log.Warn("id sequence exhausted",
			logger.Field{Key: "current", Value: g.current},
			logger.Field{Key: "max", Value: g.max})
		return zero, fmt.Errorf("%w: sequence exhausted at %v (max %v)", ErrOutOfRange, g.current, g.max)
	}

	candidate := g.policy.Next(g.min, g.max, g.current)
	if candidate > g.max {
		return zero, fmt.Errorf("%w: next value %v exceeds max %v", ErrOutOfRange, candidate, g.max)
	}

	g.current = max(candidate, g.min)
	return g.current, nil
}

// Min returns the lower bound.
func (g *BoundedGenerator[T]) Min() T {
	return g.min
}

// Max returns the upper bound.
func (g *BoundedGenerator[T]) Max() T {
	return g.max
}

// SetMin replaces the lower bound without moving the current value.
//
// Parameters:
//   - v: The new lower bound
//
// Returns:
//   - ErrInvalidRange if v is greater than the current max
func (g *BoundedGenerator[T]) SetMin(v T) error {
	if v > g.max {
		return fmt.Errorf("%w: min %v is greater than max %v", ErrInvalidRange, v, g.max)
	}

	g.min = v
	g.log.Debug("id range min changed", logger.Field{Key: "min", Value: v})
	return nil
}

// SetMax replaces the upper bound without moving the current value.
//
// Parameters:
//   - v: The new upper bound
//
// Returns:
//   - ErrInvalidRange if v is less than the current min
func (g *BoundedGenerator[T]) SetMax(v T) error {
	if v < g.min {
		return fmt.Errorf("%w: max %v is less than min %v", ErrInvalidRange, v, g.min)
	}

	g.max = v
	g.log.Debug("id range max changed", logger.Field{Key: "max", Value: v})
	return nil
}

// SetRange replaces both bounds and the current value in one step, applying
// the same rules as NewBoundedGenerator for the current mode.
//
// Parameters:
//   - lo: Lower bound of the range (inclusive)
//   - hi: Upper bound of the range (inclusive)
//   - initial: New current value, raised to lo if below it
//
// Returns:
//   - ErrInvalidRange if lo > hi, or ErrOutOfRange if round-robin is off and
//     initial > hi; the generator is unchanged in both cases
func (g *BoundedGenerator[T]) SetRange(lo, hi, initial T) error {
	current, err := startValue(lo, hi, initial, g.roundRobin)
	if err != nil {
		return err
	}

	g.min = lo
	g.max = hi
	g.current = current
	g.log.Debug("id range reset",
		logger.Field{Key: "min", Value: lo},
		logger.Field{Key: "max", Value: hi},
		logger.Field{Key: "current", Value: g.current})
	return nil
}

// RoundRobin reports whether the generator wraps at max.
func (g *BoundedGenerator[T]) RoundRobin() bool {
	return g.roundRobin
}

// SetRoundRobin switches between round-robin and bounded mode. The current
// value is not touched.
func (g *BoundedGenerator[T]) SetRoundRobin(enabled bool) {
	g.roundRobin = enabled
}
