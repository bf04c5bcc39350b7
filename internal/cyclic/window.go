package cyclic

import (
	"container/list"
	"fmt"
	"iter"
)

// window is the storage shared by Ring and OverwriteRing.
//
// Live elements occupy logical positions [0, n), physically
// buf[(head+i) % len(buf)]. Slots outside the window hold the zero value.
type window[T any] struct {
	buf  []T
	head int
	n    int
}

func newWindow[T any](capacity int) window[T] {
	if capacity < 1 {
		panic(fmt.Sprintf("cyclic: capacity must be at least 1, got %d", capacity))
	}
	return window[T]{buf: make([]T, capacity)}
}

// slot translates a logical position to a physical index.
// i may equal n (the tail) but never exceed len(buf).
func (w *window[T]) slot(i int) int {
	return (w.head + i) % len(w.buf)
}

// pushTail writes v at the tail. The caller guarantees n < len(buf).
func (w *window[T]) pushTail(v T) {
	w.buf[w.slot(w.n)] = v
	w.n++
}

// popHead removes and returns the front element. The caller guarantees n > 0.
func (w *window[T]) popHead() T {
	var zero T
	i := w.slot(0)
	v := w.buf[i]
	w.buf[i] = zero
	w.head = w.slot(1)
	w.n--
	return v
}

func (w *window[T]) checkIndex(i int) error {
	if i < 0 || i >= w.n {
		return fmt.Errorf("%w: index %d, len %d", ErrIndexOutOfRange, i, w.n)
	}
	return nil
}

// Len returns the number of live elements.
func (w *window[T]) Len() int { return w.n }

// Cap returns the fixed capacity.
func (w *window[T]) Cap() int { return len(w.buf) }

// IsEmpty reports whether Len() == 0.
func (w *window[T]) IsEmpty() bool { return w.n == 0 }

// IsFull reports whether Len() == Cap().
func (w *window[T]) IsFull() bool { return w.n == len(w.buf) }

// RemoveFront removes and returns the oldest element.
// It returns false if the container is empty; that is not an error.
func (w *window[T]) RemoveFront() (T, bool) {
	if w.n == 0 {
		var zero T
		return zero, false
	}
	return w.popHead(), true
}

// Front returns the oldest element without removing it.
func (w *window[T]) Front() (T, bool) {
	if w.n == 0 {
		var zero T
		return zero, false
	}
	return w.buf[w.slot(0)], true
}

// Back returns the newest element without removing it.
func (w *window[T]) Back() (T, bool) {
	if w.n == 0 {
		var zero T
		return zero, false
	}
	return w.buf[w.slot(w.n-1)], true
}

// Get returns the element at logical position i.
func (w *window[T]) Get(i int) (T, error) {
	if err := w.checkIndex(i); err != nil {
		var zero T
		return zero, err
	}
	return w.buf[w.slot(i)], nil
}

// Set replaces the element at logical position i.
func (w *window[T]) Set(i int, v T) error {
	if err := w.checkIndex(i); err != nil {
		return err
	}
	w.buf[w.slot(i)] = v
	return nil
}

// Clear removes every element. Capacity is unchanged.
func (w *window[T]) Clear() {
	clear(w.buf)
	w.head = 0
	w.n = 0
}

// All yields (logical position, element) pairs from front to back.
// Mutating the container during iteration is not supported.
func (w *window[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i := 0; i < w.n; i++ {
			if !yield(i, w.buf[w.slot(i)]) {
				return
			}
		}
	}
}

// Values yields elements from front to back.
func (w *window[T]) Values() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := 0; i < w.n; i++ {
			if !yield(w.buf[w.slot(i)]) {
				return
			}
		}
	}
}

// Slice returns a newly allocated copy of the live elements in logical order.
func (w *window[T]) Slice() []T {
	out := make([]T, w.n)
	for i := range out {
		out[i] = w.buf[w.slot(i)]
	}
	return out
}

// List returns a new doubly-linked list holding the live elements in logical order.
func (w *window[T]) List() *list.List {
	l := list.New()
	for v := range w.Values() {
		l.PushBack(v)
	}
	return l
}

// String renders the live elements front to back, e.g. "[1 2 3]".
func (w *window[T]) String() string {
	return fmt.Sprint(w.Slice())
}

// copyWindow returns a window of the same capacity holding the same live
// elements, re-based so that head is 0.
func (w *window[T]) copyWindow() window[T] {
	c := window[T]{buf: make([]T, len(w.buf)), n: w.n}
	for i := 0; i < w.n; i++ {
		c.buf[i] = w.buf[w.slot(i)]
	}
	return c
}
