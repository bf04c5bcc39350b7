package bench

import (
	"fmt"
	"slices"
)

// Workload drives a FIFO for a number of iterations and reports how many
// Push/Pop calls it made.
type Workload struct {
	Name string
	Run  func(f FIFO[int], size, iterations int) (ops int, err error)
}

var workloads = []Workload{
	{"drop-front", dropFront},
	{"push-pop", pushPop},
}

// Workloads returns every registered workload.
func Workloads() []Workload {
	return slices.Clone(workloads)
}

// LookupWorkloads resolves names to workloads, preserving order.
// An empty list selects all of them.
func LookupWorkloads(names []string) ([]Workload, error) {
	if len(names) == 0 {
		return Workloads(), nil
	}
	out := make([]Workload, 0, len(names))
	for _, name := range names {
		i := slices.IndexFunc(workloads, func(w Workload) bool { return w.Name == name })
		if i < 0 {
			return nil, fmt.Errorf("%w: workload %q", ErrUnknown, name)
		}
		out = append(out, workloads[i])
	}
	return out, nil
}

// Sink variable to prevent compiler from eliminating workload loops
var sinkInt int

// dropFront fills the FIFO to size, then drains it from the front.
func dropFront(f FIFO[int], size, iterations int) (int, error) {
	var val int
	for i := 0; i < iterations; i++ {
		for j := 0; j < size; j++ {
			if !f.Push(j) {
				return 0, fmt.Errorf("%w: push %d of %d", ErrShortCapacity, j+1, size)
			}
		}
		for f.Len() > 0 {
			v, ok := f.Pop()
			if !ok {
				return 0, fmt.Errorf("%w: pop failed with %d items reported", ErrShortCapacity, f.Len())
			}
			val = v
		}
	}
	sinkInt = val
	return 2 * size * iterations, nil
}

// pushPop pushes one item and pops it straight back each iteration.
func pushPop(f FIFO[int], _, iterations int) (int, error) {
	var val int
	for i := 0; i < iterations; i++ {
		if !f.Push(i) {
			return 0, fmt.Errorf("%w: push into empty contender", ErrShortCapacity)
		}
		val, _ = f.Pop()
	}
	sinkInt = val
	return 2 * iterations, nil
}
