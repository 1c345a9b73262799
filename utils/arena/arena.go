// Package arena implements a fixed-capacity allocator that hands out disjoint
// views over a single contiguous backing slice. It is meant for algorithms
// that size their whole working set up front and must not allocate on the hot
// path: the views are carved once, their disjointness is established at
// construction time, and each view is capacity-limited so that an
// out-of-bounds write into a sibling view fails loudly instead of silently
// corrupting it.
package arena

import (
	"fmt"
)

// Arena is a bump allocator over a preallocated slice of T.
// It is not safe for concurrent use.
type Arena[T any] struct {
	buf []T
	off int
}

// New allocates an [Arena] with capacity for size elements of T.
func New[T any](size int) *Arena[T] {
	return &Arena[T]{buf: make([]T, size)}
}

// Alloc carves the next n elements off the arena and returns them as a
// capacity-limited slice. Views returned by successive calls never overlap.
func (a *Arena[T]) Alloc(n int) []T {
	if n < 0 || a.off+n > len(a.buf) {
		panic(fmt.Errorf("cannot Alloc: requested %d elements but only %d of %d remain", n, len(a.buf)-a.off, len(a.buf)))
	}
	v := a.buf[a.off : a.off+n : a.off+n]
	a.off += n
	return v
}

// Free returns the number of elements still available.
func (a *Arena[T]) Free() int {
	return len(a.buf) - a.off
}

// Cap returns the total capacity of the arena.
func (a *Arena[T]) Cap() int {
	return len(a.buf)
}

// Reset makes the full capacity available again. Views handed out before the
// call alias the ones handed out after it and must not be used anymore.
func (a *Arena[T]) Reset() {
	a.off = 0
}
