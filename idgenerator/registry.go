package idgenerator

import (
	"fmt"

	"golang.org/x/sync/singleflight"

	"github.com/cyberinferno/go-idgen/logger"
	"github.com/cyberinferno/go-idgen/safemap"
)

// Registry keeps named SyncBoundedGenerators so independent parts of a
// program can share a sequence by name. It is safe for concurrent use.
type Registry[T Integer] struct {
	generators *safemap.SafeMap[string, *SyncBoundedGenerator[T]]
	group      singleflight.Group
	log        logger.Logger
}

// NewRegistry creates an empty Registry.
//
// Parameters:
//   - log: Logger for registry events and the default logger of created
//     generators; nil means a no-op logger
//
// Returns:
//   - A new Registry
func NewRegistry[T Integer](log logger.Logger) *Registry[T] {
	if log == nil {
		log = logger.NewNopLogger()
	}

	return &Registry[T]{
		generators: safemap.NewSafeMap[string, *SyncBoundedGenerator[T]](),
		log:        log,
	}
}

// GetOrCreate returns the generator registered under name, creating it with
// the given range and options if it does not exist yet. Concurrent first
// calls for the same name create exactly one generator; the range and options
// of later calls are ignored.
//
// Parameters:
//   - name: Generator name; must not be empty
//   - lo: Lower bound of the range (inclusive)
//   - hi: Upper bound of the range (inclusive)
//   - initial: Starting current value
//   - opts: Generator options; nil means DefaultOptions. A nil Logger is
//     replaced by the registry logger tagged with the generator name
//
// Returns:
//   - The registered generator
//   - ErrEmptyName or ErrInvalidRange if the generator cannot be created
func (r *Registry[T]) GetOrCreate(name string, lo, hi, initial T, opts *Options[T]) (*SyncBoundedGenerator[T], error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	if g, ok := r.Get(name); ok {
		return g, nil
	}

	val, err, _ := r.group.Do(name, func() (interface{}, error) {
		// Another caller may have registered it while we waited.
		if g, ok := r.Get(name); ok {
			return g, nil
		}

		g, err := NewSyncBoundedGenerator(lo, hi, initial, r.options(name, opts))
		if err != nil {
			return nil, fmt.Errorf("create generator %q: %w", name, err)
		}

		r.generators.Store(name, g)

		r.log.Info("id generator registered",
			logger.Field{Key: "generator", Value: name},
			logger.Field{Key: "min", Value: lo},
			logger.Field{Key: "max", Value: hi})
		return g, nil
	})
	if err != nil {
		return nil, err
	}

	return val.(*SyncBoundedGenerator[T]), nil
}

func (r *Registry[T]) options(name string, opts *Options[T]) *Options[T] {
	o := DefaultOptions[T]()
	o.Logger = nil
	if opts != nil {
		copied := *opts
		o = &copied
	}

	if o.Logger == nil {
		o.Logger = r.log.With(logger.Field{Key: "generator", Value: name})
	}

	return o
}

// Get returns the generator registered under name.
//
// Parameters:
//   - name: Generator name
//
// Returns:
//   - The generator, or nil if none is registered
//   - true if the name was found
func (r *Registry[T]) Get(name string) (*SyncBoundedGenerator[T], bool) {
	return r.generators.Load(name)
}

// Remove unregisters name. Holders of the generator can keep using it.
//
// Parameters:
//   - name: Generator name
//
// Returns:
//   - true if a generator was removed
func (r *Registry[T]) Remove(name string) bool {
	_, ok := r.generators.LoadAndDelete(name)
	if ok {
		r.log.Info("id generator removed", logger.Field{Key: "generator", Value: name})
	}

	return ok
}

// Names returns the registered names in sorted order.
func (r *Registry[T]) Names() []string {
	return r.generators.Keys()
}

// Len returns the number of registered generators.
func (r *Registry[T]) Len() int {
	return r.generators.Len()
}
