package bench

import "errors"

var (
	// ErrUnknown indicates a contender or workload name that is not registered.
	ErrUnknown = errors.New("unknown name")

	// ErrInvalidConfig indicates a configuration value out of range.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrShortCapacity indicates a contender refused a push below the
	// requested size, or failed a pop while reporting items.
	ErrShortCapacity = errors.New("contender misbehaved below requested size")
)
