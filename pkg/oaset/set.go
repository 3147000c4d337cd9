// Package oaset implements a generic hash set backed by open addressing
// with linear probing, together with functional operators (filter, map,
// reduce, concat) layered on top of the basic mutators.
package oaset

import "iter"

// Set is the operation surface shared by the open-addressing engine and
// its decorators.
type Set[T comparable] interface {
	// Add inserts item into the set. Adding a present element is a no-op.
	Add(item T)
	// Remove deletes item from the set if present.
	Remove(item T)
	// Contains reports whether item is in the set.
	Contains(item T) bool
	// Size returns the number of elements.
	Size() int
	// IsEmpty reports whether the set holds no elements.
	IsEmpty() bool
	// Clear removes every element.
	Clear()
	// ToSlice returns a snapshot of the elements in no particular order.
	ToSlice() []T
	// All returns a restartable iterator over the elements.
	All() iter.Seq[T]
}

var (
	_ Set[int] = (*OpenAddressing[int])(nil)
	_ Set[int] = (*syncedSet[int])(nil)
)
