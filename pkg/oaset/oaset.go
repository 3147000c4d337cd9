package oaset

import (
	"hash/maphash"
	"iter"
)

// OpenAddressing is a hash set stored in a flat bucket array with linear
// probing for collision resolution. The zero value is not usable; build
// instances with New, Empty or FromSlice. It is not safe for concurrent
// use — wrap shared instances with NewSynced.
type OpenAddressing[T comparable] struct {
	buckets      []slot[T]
	size         int
	growthFactor int
	hasher       func(T) uint64
}

// slot is either empty or holds one element.
type slot[T comparable] struct {
	elem     T
	occupied bool
}

// New builds an empty set. Without options the set starts with capacity 8,
// growth factor 2 and a per-set seeded maphash hasher. Invalid options
// are rejected here rather than surfacing later as a stuck probe loop.
func New[T comparable](opts ...Option[T]) (*OpenAddressing[T], error) {
	cfg := config[T]{
		capacity:     defaultCapacity,
		growthFactor: defaultGrowthFactor,
		hasher:       defaultHasher[T](),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &OpenAddressing[T]{
		buckets:      make([]slot[T], cfg.capacity),
		growthFactor: cfg.growthFactor,
		hasher:       cfg.hasher,
	}, nil
}

// Empty returns a set with the default configuration. It is the identity
// element of Concat.
func Empty[T comparable]() *OpenAddressing[T] {
	s, err := New[T]()
	if err != nil {
		panic(err) // defaults always validate
	}
	return s
}

// FromSlice builds a default-configured set from items, deduplicating.
func FromSlice[T comparable](items []T) *OpenAddressing[T] {
	s := Empty[T]()
	s.AddAll(items...)
	return s
}

func defaultHasher[T comparable]() func(T) uint64 {
	seed := maphash.MakeSeed()
	return func(item T) uint64 {
		return maphash.Comparable(seed, item)
	}
}

func (s *OpenAddressing[T]) home(item T) int {
	return int(s.hasher(item) % uint64(len(s.buckets)))
}

// probe walks forward from item's home index, wrapping around, until it
// reaches the slot holding an equal element or the first empty slot.
func (s *OpenAddressing[T]) probe(item T) int {
	i := s.home(item)
	for s.buckets[i].occupied && s.buckets[i].elem != item {
		i = (i + 1) % len(s.buckets)
	}
	return i
}

// Add inserts item; present elements are left untouched, so Add is
// idempotent. The bucket array grows before probing whenever the insert
// would push occupancy past the load-factor limit.
func (s *OpenAddressing[T]) Add(item T) {
	if float64(s.size+1)/float64(len(s.buckets)) > loadFactorLimit {
		s.resize()
	}
	s.insert(item)
}

func (s *OpenAddressing[T]) insert(item T) {
	i := s.probe(item)
	if !s.buckets[i].occupied {
		s.buckets[i] = slot[T]{elem: item, occupied: true}
		s.size++
	}
}

// AddAll inserts every item in order, deduplicating.
func (s *OpenAddressing[T]) AddAll(items ...T) {
	for _, item := range items {
		s.Add(item)
	}
}

// Remove deletes item if present. The matching slot is emptied in place;
// no tombstone is left and later slots are not shifted back.
func (s *OpenAddressing[T]) Remove(item T) {
	i := s.home(item)
	for s.buckets[i].occupied {
		if s.buckets[i].elem == item {
			s.buckets[i] = slot[T]{}
			s.size--
			return
		}
		i = (i + 1) % len(s.buckets)
	}
}

// Contains reports whether item is in the set. The walk stops at the
// first empty slot on the probe path.
func (s *OpenAddressing[T]) Contains(item T) bool {
	i := s.home(item)
	for s.buckets[i].occupied {
		if s.buckets[i].elem == item {
			return true
		}
		i = (i + 1) % len(s.buckets)
	}
	return false
}

// resize swaps in a bucket array growthFactor times longer and re-inserts
// every element, rehashing against the new capacity. Add is the only
// caller; after rehydration occupancy sits back under the limit, so the
// re-inserts cannot recurse.
func (s *OpenAddressing[T]) resize() {
	old := s.buckets
	s.buckets = make([]slot[T], len(old)*s.growthFactor)
	s.size = 0
	for _, b := range old {
		if b.occupied {
			s.insert(b.elem)
		}
	}
}

// Size returns the number of elements.
func (s *OpenAddressing[T]) Size() int {
	return s.size
}

// IsEmpty reports whether the set holds no elements.
func (s *OpenAddressing[T]) IsEmpty() bool {
	return s.size == 0
}

// Capacity returns the current bucket-array length.
func (s *OpenAddressing[T]) Capacity() int {
	return len(s.buckets)
}

// GrowthFactor returns the multiplier applied to the capacity on resize.
func (s *OpenAddressing[T]) GrowthFactor() int {
	return s.growthFactor
}

// Clear empties every slot. The current capacity is retained.
func (s *OpenAddressing[T]) Clear() {
	s.buckets = make([]slot[T], len(s.buckets))
	s.size = 0
}

// ToSlice returns a snapshot of the elements in bucket order. Bucket order
// is a layout artifact, not a guarantee.
func (s *OpenAddressing[T]) ToSlice() []T {
	out := make([]T, 0, s.size)
	for _, b := range s.buckets {
		if b.occupied {
			out = append(out, b.elem)
		}
	}
	return out
}

// All returns an iterator scanning the bucket array from index 0. Every
// call starts a fresh scan. Mutating the set mid-iteration is undefined.
func (s *OpenAddressing[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, b := range s.buckets {
			if b.occupied && !yield(b.elem) {
				return
			}
		}
	}
}
