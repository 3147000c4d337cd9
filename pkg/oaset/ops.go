package oaset

// emptyLike returns a fresh set with the receiver's current capacity,
// growth factor and hasher.
func (s *OpenAddressing[T]) emptyLike() *OpenAddressing[T] {
	return &OpenAddressing[T]{
		buckets:      make([]slot[T], len(s.buckets)),
		growthFactor: s.growthFactor,
		hasher:       s.hasher,
	}
}

// Filter returns a new independent set holding the elements for which
// pred is true.
func (s *OpenAddressing[T]) Filter(pred func(T) bool) *OpenAddressing[T] {
	out := s.emptyLike()
	for item := range s.All() {
		if pred(item) {
			out.Add(item)
		}
	}
	return out
}

// Clone returns an independent copy of the set.
func (s *OpenAddressing[T]) Clone() *OpenAddressing[T] {
	return s.Filter(func(T) bool { return true })
}

// Concat inserts every element of other into the receiver and returns the
// receiver, so unions chain. Empty is its identity on both sides.
func (s *OpenAddressing[T]) Concat(other Set[T]) *OpenAddressing[T] {
	for item := range other.All() {
		s.Add(item)
	}
	return s
}

// Map returns a new set holding f applied to every element of s. The
// result inherits s's capacity and growth factor; a non-injective f
// collapses elements through the target type's equality.
func Map[T, U comparable](s *OpenAddressing[T], f func(T) U) *OpenAddressing[U] {
	out := &OpenAddressing[U]{
		buckets:      make([]slot[U], len(s.buckets)),
		growthFactor: s.growthFactor,
		hasher:       defaultHasher[U](),
	}
	for item := range s.All() {
		out.Add(f(item))
	}
	return out
}

// Reduce folds f over the elements of s in iteration order. That order is
// a layout artifact, so f should be commutative and associative for a
// well-defined result.
func Reduce[T comparable, R any](s Set[T], f func(R, T) R, initial R) R {
	acc := initial
	for item := range s.All() {
		acc = f(acc, item)
	}
	return acc
}

// Equals reports set equality: same size and mutual membership,
// independent of capacity or insertion order.
func (s *OpenAddressing[T]) Equals(other Set[T]) bool {
	if other.Size() != s.size {
		return false
	}
	for item := range s.All() {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// Subset reports whether every element of s is in other.
func (s *OpenAddressing[T]) Subset(other Set[T]) bool {
	if other.Size() < s.size {
		return false
	}
	for item := range s.All() {
		if !other.Contains(item) {
			return false
		}
	}
	return true
}

// Superset reports whether s contains every element of other.
func (s *OpenAddressing[T]) Superset(other Set[T]) bool {
	if other.Size() > s.size {
		return false
	}
	for item := range other.All() {
		if !s.Contains(item) {
			return false
		}
	}
	return true
}
