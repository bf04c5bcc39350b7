package bench

import (
	"container/list"
	"fmt"
	"slices"

	eapache "github.com/eapache/queue"
	lfring "github.com/randomizedcoder/go-lock-free-ring"

	"github.com/randomizedcoder/cyclic-queue/internal/cyclic"
	"github.com/randomizedcoder/cyclic-queue/internal/queue"
)

// Contender is a named FIFO implementation under test.
type Contender struct {
	Name string
	// New returns an empty FIFO able to hold at least size items.
	New func(size int) (FIFO[int], error)
}

var contenders = []Contender{
	{"cyclic", func(size int) (FIFO[int], error) {
		return &cyclicFIFO{r: cyclic.New[int](size)}, nil
	}},
	{"cyclic-overwrite", func(size int) (FIFO[int], error) {
		return &overwriteFIFO{r: cyclic.NewOverwrite[int](size)}, nil
	}},
	{"queue", func(size int) (FIFO[int], error) {
		return &queueFIFO{q: queue.New[int](size)}, nil
	}},
	{"channel", func(size int) (FIFO[int], error) {
		return make(chanFIFO, size), nil
	}},
	{"mask", func(size int) (FIFO[int], error) {
		return NewMaskRing[int](size), nil
	}},
	{"eapache", func(size int) (FIFO[int], error) {
		return &eapacheFIFO{q: eapache.New(), size: size}, nil
	}},
	{"lockfree", newLockFreeFIFO},
	{"list", func(size int) (FIFO[int], error) {
		return &listFIFO{l: list.New(), size: size}, nil
	}},
	{"slice", func(size int) (FIFO[int], error) {
		return &sliceFIFO{s: make([]int, 0, size)}, nil
	}},
}

// Contenders returns every registered contender in report order.
func Contenders() []Contender {
	return slices.Clone(contenders)
}

// LookupContenders resolves names to contenders, preserving order.
// An empty list selects all of them.
func LookupContenders(names []string) ([]Contender, error) {
	if len(names) == 0 {
		return Contenders(), nil
	}
	out := make([]Contender, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(contenders, func(c Contender) bool { return c.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("%w: contender %q", ErrUnknown, name)
		}
		out = append(out, contenders[i])
	}
	return out, nil
}

type cyclicFIFO struct{ r *cyclic.Ring[int] }

func (f *cyclicFIFO) Push(v int) bool { return f.r.PushBack(v) == nil }
func (f *cyclicFIFO) Pop() (int, bool) { return f.r.RemoveFront() }
func (f *cyclicFIFO) Len() int { return f.r.Len() }

// overwriteFIFO never reports full; a push into a full ring evicts.
type overwriteFIFO struct{ r *cyclic.OverwriteRing[int] }

func (f *overwriteFIFO) Push(v int) bool {
	f.r.PushBack(v)
	return true
}

func (f *overwriteFIFO) Pop() (int, bool) { return f.r.RemoveFront() }
func (f *overwriteFIFO) Len() int { return f.r.Len() }

type queueFIFO struct{ q *queue.Queue[int] }

func (f *queueFIFO) Push(v int) bool { return f.q.Enqueue(v) == nil }
func (f *queueFIFO) Pop() (int, bool) { return f.q.Dequeue() }
func (f *queueFIFO) Len() int { return f.q.Len() }

// chanFIFO is a buffered channel driven with non-blocking selects.
type chanFIFO chan int

func (c chanFIFO) Push(v int) bool {
	select {
	case c <- v:
		return true
	default:
		return false
	}
}

func (c chanFIFO) Pop() (int, bool) {
	select {
	case v := <-c:
		return v, true
	default:
		return 0, false
	}
}

func (c chanFIFO) Len() int { return len(c) }

// eapacheFIFO bounds the growable eapache queue at size.
type eapacheFIFO struct {
	q    *eapache.Queue
	size int
}

func (f *eapacheFIFO) Push(v int) bool {
	if f.q.Length() >= f.size {
		return false
	}
	f.q.Add(v)
	return true
}

func (f *eapacheFIFO) Pop() (int, bool) {
	if f.q.Length() == 0 {
		return 0, false
	}
	return f.q.Remove().(int), true
}

func (f *eapacheFIFO) Len() int { return f.q.Length() }

// lockFreeFIFO drives a single-shard ShardedRing from producer 0.
// The ring does not expose an exact length, so pushes and pops are counted.
type lockFreeFIFO struct {
	r *lfring.ShardedRing
	n int
}

func newLockFreeFIFO(size int) (FIFO[int], error) {
	r, err := lfring.NewShardedRing(uint64(size), 1)
	if err != nil {
		return nil, fmt.Errorf("lockfree ring of size %d: %w", size, err)
	}
	return &lockFreeFIFO{r: r}, nil
}

func (f *lockFreeFIFO) Push(v int) bool {
	if !f.r.Write(0, v) {
		return false
	}
	f.n++
	return true
}

func (f *lockFreeFIFO) Pop() (int, bool) {
	v, ok := f.r.TryRead()
	if !ok {
		return 0, false
	}
	f.n--
	return v.(int), true
}

func (f *lockFreeFIFO) Len() int { return f.n }

type listFIFO struct {
	l    *list.List
	size int
}

func (f *listFIFO) Push(v int) bool {
	if f.l.Len() >= f.size {
		return false
	}
	f.l.PushBack(v)
	return true
}

func (f *listFIFO) Pop() (int, bool) {
	e := f.l.Front()
	if e == nil {
		return 0, false
	}
	return f.l.Remove(e).(int), true
}

func (f *listFIFO) Len() int { return f.l.Len() }

// sliceFIFO removes from index 0 by shifting, the naive slice queue.
type sliceFIFO struct{ s []int }

func (f *sliceFIFO) Push(v int) bool {
	if len(f.s) == cap(f.s) {
		return false
	}
	f.s = append(f.s, v)
	return true
}

func (f *sliceFIFO) Pop() (int, bool) {
	if len(f.s) == 0 {
		return 0, false
	}
	v := f.s[0]
	f.s = slices.Delete(f.s, 0, 1)
	return v, true
}

func (f *sliceFIFO) Len() int { return len(f.s) }
