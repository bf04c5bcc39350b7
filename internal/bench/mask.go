package bench

import "math/bits"

// MaskRing is the power-of-two counterpart of cyclic.Ring: the same head and
// count bookkeeping, but the slot index is head+i masked with cap-1 instead
// of taken modulo the capacity. The requested size is rounded up to the next
// power of two, so a MaskRing may hold more items than asked for.
//
// Not safe for concurrent use.
type MaskRing[T any] struct {
	buf  []T
	mask int
	head int
	n    int
}

// NewMaskRing returns an empty MaskRing holding at least size items.
// Sizes below 1 are treated as 1.
func NewMaskRing[T any](size int) *MaskRing[T] {
	c := 1
	if size > 1 {
		c = 1 << bits.Len(uint(size-1))
	}
	return &MaskRing[T]{buf: make([]T, c), mask: c - 1}
}

// Push appends v at the back, reporting false when the ring is full.
func (r *MaskRing[T]) Push(v T) bool {
	if r.n == len(r.buf) {
		return false
	}
	r.buf[(r.head+r.n)&r.mask] = v
	r.n++
	return true
}

// Pop removes the front item. The vacated slot is zeroed.
func (r *MaskRing[T]) Pop() (T, bool) {
	var zero T
	if r.n == 0 {
		return zero, false
	}
	v := r.buf[r.head]
	r.buf[r.head] = zero
	r.head = (r.head + 1) & r.mask
	r.n--
	return v, true
}

func (r *MaskRing[T]) Len() int { return r.n }

// Cap returns the rounded capacity.
func (r *MaskRing[T]) Cap() int { return len(r.buf) }
