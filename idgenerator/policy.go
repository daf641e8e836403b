// Package idgenerator provides bounded sequence-ID generators: a minimal
// sequential counter, a range-aware generator with round-robin or bounded
// semantics and a replaceable advancement policy, and a mutex-guarded
// decorator that makes any of them safe for concurrent callers.
package idgenerator

import (
	"math/rand/v2"
	"time"

	"golang.org/x/exp/constraints"
)

// Integer is the set of element types a generator can hand out.
type Integer = constraints.Integer

// AdvancePolicy computes the next candidate value of a sequence and reports
// whether the sequence has run out of values. Policies never fail; a range
// with min > max is rejected by the generator before a policy sees it.
type AdvancePolicy[T Integer] interface {
	// Next returns the candidate that follows current within [min, max].
	//
	// Parameters:
	//   - min: Lower bound of the range (inclusive)
	//   - max: Upper bound of the range (inclusive)
	//   - current: The value the generator currently holds
	//
	// Returns:
	//   - The next candidate value; the generator validates or wraps it
	Next(min, max, current T) T

	// Exhausted reports whether no further value exists after current.
	//
	// Parameters:
	//   - min: Lower bound of the range (inclusive)
	//   - max: Upper bound of the range (inclusive)
	//   - current: The value the generator currently holds
	//
	// Returns:
	//   - true if the sequence cannot advance past current
	Exhausted(min, max, current T) bool
}

// IncrementPolicy is the default policy: every step adds one.
type IncrementPolicy[T Integer] struct{}

// Next implements AdvancePolicy.
func (IncrementPolicy[T]) Next(_, _, current T) T {
	return current + 1
}

// Exhausted implements AdvancePolicy.
func (IncrementPolicy[T]) Exhausted(_, max, current T) bool {
	return current >= max
}

// StepPolicy advances by a fixed stride. A zero Step behaves like 1.
type StepPolicy[T Integer] struct {
	Step T
}

func (p StepPolicy[T]) step() T {
	if p.Step <= 0 {
		return 1
	}

	return p.Step
}

// Next implements AdvancePolicy.
func (p StepPolicy[T]) Next(_, _, current T) T {
	return current + p.step()
}

// Exhausted implements AdvancePolicy. The sequence ends once another full
// stride would pass max.
func (p StepPolicy[T]) Exhausted(_, max, current T) bool {
	return current >= max || max-current < p.step()
}

// TimeBucketPolicy moves the sequence forward once per elapsed interval.
// Within one interval Next returns current unchanged, so every caller in the
// same bucket observes the same ID.
//
// The policy anchors the value it last saw to the bucket it was produced in
// and derives each candidate from that anchor, so asking again after a
// rejected candidate yields the same candidate. A value stored with Set is
// anchored to the bucket of the call that first sees it. The policy is not
// safe for concurrent use on its own.
type TimeBucketPolicy[T Integer] struct {
	interval time.Duration
	now      func() time.Time

	// seen is the bucket of the previous Next call.
	seen int64
	// value and bucket form the anchor; candidate is the last value returned.
	anchored  bool
	value     T
	bucket    int64
	candidate T
}

// NewTimeBucketPolicy creates a policy whose buckets are interval long.
//
// Parameters:
//   - interval: Bucket width; values <= 0 fall back to one second
//   - now: Clock used to place calls into buckets; nil means time.Now
//
// Returns:
//   - A TimeBucketPolicy anchored at the bucket containing now()
func NewTimeBucketPolicy[T Integer](interval time.Duration, now func() time.Time) *TimeBucketPolicy[T] {
	if interval <= 0 {
		interval = time.Second
	}

	if now == nil {
		now = time.Now
	}

	p := &TimeBucketPolicy[T]{
		interval: interval,
		now:      now,
	}
	p.seen = p.currentBucket()
	return p
}

func (p *TimeBucketPolicy[T]) currentBucket() int64 {
	return p.now().UnixNano() / int64(p.interval)
}

// Next implements AdvancePolicy.
func (p *TimeBucketPolicy[T]) Next(_, _, current T) T {
	b := p.currentBucket()

	switch {
	case !p.anchored:
		p.anchored = true
		p.value, p.bucket = current, p.seen
	case current == p.value:
		// previous candidate was rejected or the bucket has not moved
	case current == p.candidate:
		p.value, p.bucket = current, p.seen
	default:
		p.value, p.bucket = current, b
	}

	p.seen = b
	var elapsed uint64
	if b > p.bucket {
		elapsed = uint64(b - p.bucket)
	}

	p.candidate = T(uint64(p.value) + elapsed)
	return p.candidate
}

// Exhausted implements AdvancePolicy.
func (p *TimeBucketPolicy[T]) Exhausted(_, max, current T) bool {
	return current >= max
}

// RandomPolicy hands out unpredictable values drawn uniformly from
// [min, max]. It never reports exhaustion and does not guarantee uniqueness:
// when every ID must be distinct, use IncrementPolicy or StepPolicy, which
// never repeat a value within one pass over the range. The random source is
// not safe for concurrent use on its own.
type RandomPolicy[T Integer] struct {
	rng *rand.Rand
}

// NewRandomPolicy creates a RandomPolicy backed by a PCG source.
//
// Parameters:
//   - seed1, seed2: PCG seeds; equal seeds reproduce the same sequence
//
// Returns:
//   - A new RandomPolicy
func NewRandomPolicy[T Integer](seed1, seed2 uint64) *RandomPolicy[T] {
	return &RandomPolicy[T]{rng: rand.New(rand.NewPCG(seed1, seed2))}
}

// Next implements AdvancePolicy.
func (p *RandomPolicy[T]) Next(min, max, _ T) T {
	n := span(min, max)
	if n == 0 {
		return T(p.rng.Uint64())
	}

	return T(uint64(min) + p.rng.Uint64N(n))
}

// Exhausted implements AdvancePolicy.
func (p *RandomPolicy[T]) Exhausted(_, _, _ T) bool {
	return false
}

// span returns max-min+1 as a uint64. It returns 0 when the range covers all
// 2^64 values of a 64-bit type. Requires min <= max.
func span[T Integer](min, max T) uint64 {
	return uint64(max) - uint64(min) + 1
}

// wrap maps v into [min, max] as min + ((v - min) mod span). Requires min <= max.
func wrap[T Integer](min, max, v T) T {
	n := span(min, max)
	if n == 0 {
		return v
	}

	if v >= min {
		return T(uint64(min) + (uint64(v)-uint64(min))%n)
	}

	back := (uint64(min) - uint64(v)) % n
	if back == 0 {
		return min
	}

	return T(uint64(min) + n - back)
}
