package cyclic

// Ring is a fixed-capacity FIFO container that rejects writes when full.
//
// The zero value is not usable; construct with New, Of, FromSlice,
// FromList or FromSeq.
type Ring[T any] struct {
	window[T]
}

// New creates an empty Ring holding at most capacity elements.
// It panics if capacity < 1.
func New[T any](capacity int) *Ring[T] {
	return &Ring[T]{window: newWindow[T](capacity)}
}

// PushBack appends v at the back.
//
// If the ring is full it returns ErrFull and nothing changes; v is not
// stored anywhere, so the caller decides whether to retry or discard it.
func (r *Ring[T]) PushBack(v T) error {
	if r.n == len(r.buf) {
		return ErrFull
	}
	r.pushTail(v)
	return nil
}

// Overwrite returns a new OverwriteRing with the same capacity and the same
// elements in the same order. r is not modified.
func (r *Ring[T]) Overwrite(opts ...Option[T]) *OverwriteRing[T] {
	o := &OverwriteRing[T]{window: r.copyWindow()}
	o.apply(opts)
	return o
}
