// Package resource provides the handle table bridging the simulation to
// externally-owned resources. Neither side owns the other's memory; the
// table owns only the handle-to-value mapping.
package resource

import "fmt"

// Handle is an opaque index standing in for a resource owned by another
// module. A handle is valid from Allocate until its matching Free.
type Handle int

// NoHandle is the sentinel for "no resource".
const NoHandle Handle = -1

type slot[T any] struct {
	value T
	live  bool
}

// Table maps handles to values. Freed slot indices are recycled through a
// free-list stack before the table grows.
type Table[T any] struct {
	slots []slot[T]
	free  []Handle
}

// NewTable creates an empty table.
func NewTable[T any]() *Table[T] {
	return &Table[T]{}
}

// Allocate stores a value and returns its handle.
func (t *Table[T]) Allocate(v T) Handle {
	if n := len(t.free); n > 0 {
		h := t.free[n-1]
		t.free = t.free[:n-1]
		t.slots[h] = slot[T]{value: v, live: true}
		return h
	}
	t.slots = append(t.slots, slot[T]{value: v, live: true})
	return Handle(len(t.slots) - 1)
}

// Get returns the value for a live handle. Using a freed or never-issued
// handle is a programmer error and panics.
func (t *Table[T]) Get(h Handle) T {
	t.check(h)
	return t.slots[h].value
}

// Free releases the handle and returns the value it held. The slot is
// nulled and pushed onto the free list.
func (t *Table[T]) Free(h Handle) T {
	t.check(h)
	v := t.slots[h].value
	var zero T
	t.slots[h] = slot[T]{value: zero}
	t.free = append(t.free, h)
	return v
}

// Live reports whether the handle currently maps to a value.
func (t *Table[T]) Live(h Handle) bool {
	return h >= 0 && int(h) < len(t.slots) && t.slots[h].live
}

// Len returns the number of live slots.
func (t *Table[T]) Len() int {
	return len(t.slots) - len(t.free)
}

func (t *Table[T]) check(h Handle) {
	if !t.Live(h) {
		panic(fmt.Sprintf("resource: handle %d is not live", h))
	}
}
