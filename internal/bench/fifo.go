// Package bench measures cyclic rings against other bounded FIFO
// implementations.
//
// Every contender is driven through the FIFO interface, so the harness
// measures push/pop throughput only; it imposes nothing on the containers
// themselves. Contenders include:
//   - cyclic, cyclic-overwrite, queue: this module's rings and queue facade
//   - channel: buffered channel with non-blocking select
//   - mask: power-of-two ring indexed by mask instead of modulus
//   - eapache: github.com/eapache/queue bounded to the run size
//   - lockfree: github.com/randomizedcoder/go-lock-free-ring, one shard
//   - list, slice: container/list and slice remove-at-front baselines
//
// All runs are single goroutine; the numbers are per-operation cost, not
// contention behaviour.
package bench

// FIFO is the contract every contender is measured through.
//
// Implementations are non-blocking: Push returns false if full,
// Pop returns false if empty.
type FIFO[T any] interface {
	// Push adds an item to the back.
	// Returns false if the container is full.
	Push(T) bool

	// Pop removes and returns the front item.
	// Returns false if the container is empty.
	Pop() (T, bool)

	// Len returns the current number of items.
	Len() int
}
