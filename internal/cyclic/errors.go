package cyclic

import "errors"

var (
	// ErrFull is returned by Ring.PushBack when the ring is at capacity.
	ErrFull = errors.New("cyclic: container full")

	// ErrCapacityMismatch is returned when a bulk source holds more
	// elements than the target capacity and truncation is not allowed.
	ErrCapacityMismatch = errors.New("cyclic: source exceeds capacity")

	// ErrIndexOutOfRange is returned for a logical position outside [0, Len()).
	ErrIndexOutOfRange = errors.New("cyclic: index out of range")

	// ErrElementType is returned when a container/list element does not hold a T.
	ErrElementType = errors.New("cyclic: unexpected element type")
)
