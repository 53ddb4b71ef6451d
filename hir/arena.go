package hir

import "sable/report"

// Arena is a densely packed, append-only allocator.  Index zero is reserved
// as the invalid sentinel: the first allocation returns id 1.
type Arena[T any] struct {
	items []T
}

// Alloc appends a value to the arena and returns its id.
func (a *Arena[T]) Alloc(v T) uint32 {
	a.items = append(a.items, v)
	return uint32(len(a.items))
}

// Get returns the value stored under the given id.  Passing an id that was
// never allocated is an internal error.
func (a *Arena[T]) Get(id uint32) T {
	if !a.Valid(id) {
		report.ICE("arena access with dangling id %d (arena holds %d items)", id, len(a.items))
	}

	return a.items[id-1]
}

// Valid returns whether the given id was allocated in this arena.
func (a *Arena[T]) Valid(id uint32) bool {
	return id != 0 && int(id) <= len(a.items)
}

// Len returns the number of allocated items.
func (a *Arena[T]) Len() int {
	return len(a.items)
}

// Each calls f for each allocated (id, value) pair in allocation order.
func (a *Arena[T]) Each(f func(id uint32, v T)) {
	for i, v := range a.items {
		f(uint32(i+1), v)
	}
}
