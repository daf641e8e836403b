package idgenerator

import "errors"

var (
	// ErrOutOfRange is returned when a value falls outside [min, max] while
	// round-robin is disabled, or when a bounded sequence is exhausted.
	ErrOutOfRange = errors.New("id out of range")

	// ErrInvalidRange is returned when a range would have min > max.
	ErrInvalidRange = errors.New("invalid id range")

	// ErrEmptyName is returned by Registry for an empty generator name.
	ErrEmptyName = errors.New("generator name is empty")
)
