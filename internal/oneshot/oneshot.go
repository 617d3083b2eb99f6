// Package oneshot provides a write-once cell for handing a single value to a waiting goroutine.
//
// The writer may run on any thread, including threads owned by the OS that
// were never created by the Go runtime. Only the first Put is kept.
package oneshot

import "sync/atomic"

// Cell holds at most one value.
type Cell[T any] struct {
	written atomic.Bool
	ch      chan T
}

// New returns an empty Cell.
func New[T any]() *Cell[T] {
	return &Cell[T]{ch: make(chan T, 1)}
}

// Put stores v if nothing has been stored yet and reports whether it did.
// Later calls leave the stored value untouched and never block.
func (c *Cell[T]) Put(v T) bool {
	if !c.written.CompareAndSwap(false, true) {
		return false
	}

	c.ch <- v

	return true
}

// Filled reports whether a value has been stored.
func (c *Cell[T]) Filled() bool {
	return c.written.Load()
}

// Wait blocks until a value is stored and returns it.
// The value is handed out once; a second Wait blocks forever.
func (c *Cell[T]) Wait() T {
	return <-c.ch
}
