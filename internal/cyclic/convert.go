package cyclic

import (
	"container/list"
	"fmt"
	"iter"
	"reflect"
	"slices"
)

// Of returns a full Ring whose capacity is len(values), front = values[0].
// It panics if values is empty.
func Of[T any](values ...T) *Ring[T] {
	r := New[T](len(values))
	if err := r.load(slices.Values(values)); err != nil {
		panic(err)
	}
	return r
}

// OverwriteOf returns a full OverwriteRing whose capacity is len(values).
// It panics if values is empty.
func OverwriteOf[T any](values ...T) *OverwriteRing[T] {
	r := NewOverwrite[T](len(values))
	r.load(slices.Values(values))
	return r
}

// FromSlice returns a Ring of the given capacity holding a copy of s.
// It fails with ErrCapacityMismatch if len(s) > capacity.
func FromSlice[T any](capacity int, s []T) (*Ring[T], error) {
	if len(s) > capacity {
		return nil, mismatch(len(s), capacity)
	}
	return FromSeq[T](capacity, slices.Values(s))
}

// FromList returns a Ring of the given capacity holding the elements of l
// front to back. A nil list is treated as empty.
func FromList[T any](capacity int, l *list.List) (*Ring[T], error) {
	if l != nil && l.Len() > capacity {
		return nil, mismatch(l.Len(), capacity)
	}
	seq, err := listValues[T](l)
	if err != nil {
		return nil, err
	}
	return FromSeq[T](capacity, seq)
}

// FromSeq returns a Ring of the given capacity filled from seq.
// It fails with ErrCapacityMismatch as soon as seq yields more than
// capacity elements; the remainder of seq is not consumed.
func FromSeq[T any](capacity int, seq iter.Seq[T]) (*Ring[T], error) {
	r := New[T](capacity)
	if err := r.load(seq); err != nil {
		return nil, err
	}
	return r, nil
}

// OverwriteFromSlice returns an OverwriteRing of the given capacity holding
// the last min(len(s), capacity) elements of s.
func OverwriteFromSlice[T any](capacity int, s []T, opts ...Option[T]) *OverwriteRing[T] {
	return OverwriteFromSeq[T](capacity, slices.Values(s), opts...)
}

// OverwriteFromList is OverwriteFromSlice for a container/list source.
func OverwriteFromList[T any](capacity int, l *list.List, opts ...Option[T]) (*OverwriteRing[T], error) {
	seq, err := listValues[T](l)
	if err != nil {
		return nil, err
	}
	return OverwriteFromSeq[T](capacity, seq, opts...), nil
}

// OverwriteFromSeq returns an OverwriteRing of the given capacity holding
// the most recent capacity elements yielded by seq. Elements displaced
// during the load are passed to the evict hook, if one is configured.
func OverwriteFromSeq[T any](capacity int, seq iter.Seq[T], opts ...Option[T]) *OverwriteRing[T] {
	r := NewOverwrite[T](capacity, opts...)
	r.load(seq)
	return r
}

// load appends every element of seq through PushBack.
func (r *Ring[T]) load(seq iter.Seq[T]) error {
	for v := range seq {
		if err := r.PushBack(v); err != nil {
			return mismatch(r.Len()+1, r.Cap())
		}
	}
	return nil
}

func (r *OverwriteRing[T]) load(seq iter.Seq[T]) {
	for v := range seq {
		r.PushBack(v)
	}
}

// listValues checks every element of l is a T before yielding any of them.
func listValues[T any](l *list.List) (iter.Seq[T], error) {
	if l == nil {
		return func(func(T) bool) {}, nil
	}
	for e := l.Front(); e != nil; e = e.Next() {
		if _, ok := e.Value.(T); !ok {
			return nil, fmt.Errorf("%w: got %T, want %v", ErrElementType, e.Value, reflect.TypeFor[T]())
		}
	}
	return func(yield func(T) bool) {
		for e := l.Front(); e != nil; e = e.Next() {
			if !yield(e.Value.(T)) {
				return
			}
		}
	}, nil
}

func mismatch(have, capacity int) error {
	return fmt.Errorf("%w: %d elements, capacity %d", ErrCapacityMismatch, have, capacity)
}
