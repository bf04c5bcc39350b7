// Package queue provides bounded FIFO queues backed by cyclic rings.
//
// This package offers two queue types:
//   - Queue: Enqueue fails with cyclic.ErrFull when the queue is full
//   - OverwriteQueue: Enqueue drops the oldest item when the queue is full
//
// Both are thin wrappers: every operation forwards to the underlying
// cyclic.Ring or cyclic.OverwriteRing, which Ring() exposes directly.
//
// Queues are NOT safe for concurrent use.
package queue

import (
	"container/list"
	"iter"

	"github.com/randomizedcoder/cyclic-queue/internal/cyclic"
)

// Queue is a bounded FIFO that rejects items when full.
type Queue[T any] struct {
	ring *cyclic.Ring[T]
}

// New creates an empty Queue of the given capacity.
// It panics if capacity < 1.
func New[T any](capacity int) *Queue[T] {
	return Wrap(cyclic.New[T](capacity))
}

// Wrap returns a Queue backed by r. The queue takes ownership of r.
func Wrap[T any](r *cyclic.Ring[T]) *Queue[T] {
	return &Queue[T]{ring: r}
}

// Of returns a full Queue holding values, front = values[0].
func Of[T any](values ...T) *Queue[T] {
	return Wrap(cyclic.Of(values...))
}

// FromSlice returns a Queue of the given capacity holding a copy of s.
func FromSlice[T any](capacity int, s []T) (*Queue[T], error) {
	r, err := cyclic.FromSlice(capacity, s)
	if err != nil {
		return nil, err
	}
	return Wrap(r), nil
}

// FromList returns a Queue of the given capacity holding the elements of l.
func FromList[T any](capacity int, l *list.List) (*Queue[T], error) {
	r, err := cyclic.FromList[T](capacity, l)
	if err != nil {
		return nil, err
	}
	return Wrap(r), nil
}

// FromSeq returns a Queue of the given capacity filled from seq.
func FromSeq[T any](capacity int, seq iter.Seq[T]) (*Queue[T], error) {
	r, err := cyclic.FromSeq(capacity, seq)
	if err != nil {
		return nil, err
	}
	return Wrap(r), nil
}

// Enqueue adds v at the back. Returns cyclic.ErrFull if the queue is full.
func (q *Queue[T]) Enqueue(v T) error {
	return q.ring.PushBack(v)
}

// Dequeue removes and returns the front item.
// Returns false if the queue is empty.
func (q *Queue[T]) Dequeue() (T, bool) {
	return q.ring.RemoveFront()
}

// Peek returns the front item without removing it.
// Returns false if the queue is empty.
func (q *Queue[T]) Peek() (T, bool) {
	return q.ring.Front()
}

// Len returns the current number of items in the queue.
func (q *Queue[T]) Len() int { return q.ring.Len() }

// Cap returns the capacity of the queue.
func (q *Queue[T]) Cap() int { return q.ring.Cap() }

// Ring returns the backing ring.
func (q *Queue[T]) Ring() *cyclic.Ring[T] { return q.ring }

// String renders the items front to back, e.g. "[1 2 3]".
func (q *Queue[T]) String() string { return q.ring.String() }

// Overwrite returns an OverwriteQueue holding a copy of q's items.
func (q *Queue[T]) Overwrite(opts ...cyclic.Option[T]) *OverwriteQueue[T] {
	return WrapOverwrite(q.ring.Overwrite(opts...))
}

// OverwriteQueue is a bounded FIFO that drops its oldest item when full.
type OverwriteQueue[T any] struct {
	ring *cyclic.OverwriteRing[T]
}

// NewOverwrite creates an empty OverwriteQueue of the given capacity.
// It panics if capacity < 1.
func NewOverwrite[T any](capacity int, opts ...cyclic.Option[T]) *OverwriteQueue[T] {
	return WrapOverwrite(cyclic.NewOverwrite[T](capacity, opts...))
}

// WrapOverwrite returns an OverwriteQueue backed by r.
func WrapOverwrite[T any](r *cyclic.OverwriteRing[T]) *OverwriteQueue[T] {
	return &OverwriteQueue[T]{ring: r}
}

// OverwriteOf returns a full OverwriteQueue holding values.
func OverwriteOf[T any](values ...T) *OverwriteQueue[T] {
	return WrapOverwrite(cyclic.OverwriteOf(values...))
}

// OverwriteFromSlice returns an OverwriteQueue holding the last capacity items of s.
func OverwriteFromSlice[T any](capacity int, s []T, opts ...cyclic.Option[T]) *OverwriteQueue[T] {
	return WrapOverwrite(cyclic.OverwriteFromSlice(capacity, s, opts...))
}

// OverwriteFromList returns an OverwriteQueue holding the last capacity items of l.
func OverwriteFromList[T any](capacity int, l *list.List, opts ...cyclic.Option[T]) (*OverwriteQueue[T], error) {
	r, err := cyclic.OverwriteFromList[T](capacity, l, opts...)
	if err != nil {
		return nil, err
	}
	return WrapOverwrite(r), nil
}

// OverwriteFromSeq returns an OverwriteQueue holding the last capacity items of seq.
func OverwriteFromSeq[T any](capacity int, seq iter.Seq[T], opts ...cyclic.Option[T]) *OverwriteQueue[T] {
	return WrapOverwrite(cyclic.OverwriteFromSeq(capacity, seq, opts...))
}

// Enqueue adds v at the back, dropping the front item if the queue is full.
func (q *OverwriteQueue[T]) Enqueue(v T) {
	q.ring.PushBack(v)
}

// Dequeue removes and returns the front item.
// Returns false if the queue is empty.
func (q *OverwriteQueue[T]) Dequeue() (T, bool) {
	return q.ring.RemoveFront()
}

// Peek returns the front item without removing it.
func (q *OverwriteQueue[T]) Peek() (T, bool) {
	return q.ring.Front()
}

// Len returns the current number of items in the queue.
func (q *OverwriteQueue[T]) Len() int { return q.ring.Len() }

// Cap returns the capacity of the queue.
func (q *OverwriteQueue[T]) Cap() int { return q.ring.Cap() }

// Ring returns the backing ring.
func (q *OverwriteQueue[T]) Ring() *cyclic.OverwriteRing[T] { return q.ring }

// String renders the items front to back, e.g. "[1 2 3]".
func (q *OverwriteQueue[T]) String() string { return q.ring.String() }

// Reject returns a Queue holding a copy of q's items.
func (q *OverwriteQueue[T]) Reject() *Queue[T] {
	return Wrap(q.ring.Reject())
}
