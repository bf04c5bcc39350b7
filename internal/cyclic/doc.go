// Package cyclic provides fixed-capacity generic ring containers.
//
// Two container types share one storage window and differ only in what
// happens when a write arrives while the container is full:
//   - Ring: PushBack fails with ErrFull and leaves the container unchanged
//   - OverwriteRing: PushBack evicts the oldest element and always succeeds
//
// Capacity is chosen at construction and never changes. The backing slice
// is allocated once; no operation allocates afterwards except the explicit
// conversions (Slice, List, Overwrite, Reject).
//
// # Logical vs physical positions
//
// Callers address elements by logical position: 0 is the front (oldest),
// Len()-1 is the back (newest). The physical slot of logical position i is
// (head + i) % Cap(). Every read, write, removal and eviction goes through
// that one translation.
//
// # Errors
//
//   - ErrFull: Ring.PushBack on a full ring
//   - ErrCapacityMismatch: bulk construction from a source larger than capacity
//   - ErrIndexOutOfRange: Get/Set with i < 0 or i >= Len()
//   - ErrElementType: FromList given an element that is not a T
//
// Out-of-range access is reported as an error, never a panic. The only
// panic is constructing a container with capacity < 1.
//
// # Concurrency
//
// Containers are NOT safe for concurrent use. Callers sharing one across
// goroutines must serialize access themselves.
package cyclic
