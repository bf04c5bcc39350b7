package cyclic

// OverwriteRing is a fixed-capacity FIFO container that evicts its oldest
// element to make room when a write arrives while full.
//
// The zero value is not usable; construct with NewOverwrite, OverwriteOf,
// OverwriteFromSlice, OverwriteFromList or OverwriteFromSeq.
type OverwriteRing[T any] struct {
	window[T]
	onEvict func(T)
}

// Option configures an OverwriteRing.
type Option[T any] func(*OverwriteRing[T])

// WithEvictHook registers fn to receive every element evicted by PushBack.
// fn runs once PushBack has finished updating the ring, so it sees the new
// element at the back and may itself push or remove. A nil fn is ignored.
func WithEvictHook[T any](fn func(T)) Option[T] {
	return func(r *OverwriteRing[T]) {
		if fn != nil {
			r.onEvict = fn
		}
	}
}

// NewOverwrite creates an empty OverwriteRing holding at most capacity
// elements. It panics if capacity < 1.
func NewOverwrite[T any](capacity int, opts ...Option[T]) *OverwriteRing[T] {
	r := &OverwriteRing[T]{window: newWindow[T](capacity)}
	r.apply(opts)
	return r
}

func (r *OverwriteRing[T]) apply(opts []Option[T]) {
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
}

// PushBack appends v at the back. When the ring is full the front element
// is evicted first, so Len() stays at Cap().
//
// It panics on a zero-value OverwriteRing.
func (r *OverwriteRing[T]) PushBack(v T) {
	if r.n < len(r.buf) {
		r.pushTail(v)
		return
	}
	if len(r.buf) == 0 {
		panic("cyclic: PushBack on zero-value OverwriteRing; use NewOverwrite")
	}
	old := r.popHead()
	r.pushTail(v)
	if r.onEvict != nil {
		r.onEvict(old)
	}
}

// Reject returns a new Ring with the same capacity and the same elements
// in the same order. r is not modified.
func (r *OverwriteRing[T]) Reject() *Ring[T] {
	return &Ring[T]{window: r.copyWindow()}
}
