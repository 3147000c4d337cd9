package oaset

import (
	"iter"
	"sync"
)

type syncedSet[T comparable] struct {
	set  Set[T]
	lock sync.RWMutex
}

// NewSynced wraps set behind a coarse read-write lock so that multiple
// goroutines can share it. The underlying set must not be used directly
// afterwards. All yields over a snapshot taken under the read lock.
func NewSynced[T comparable](set Set[T]) Set[T] {
	return &syncedSet[T]{set: set}
}

func (s *syncedSet[T]) Add(item T) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.set.Add(item)
}

func (s *syncedSet[T]) Remove(item T) {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.set.Remove(item)
}

func (s *syncedSet[T]) Contains(item T) bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.set.Contains(item)
}

func (s *syncedSet[T]) Size() int {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.set.Size()
}

func (s *syncedSet[T]) IsEmpty() bool {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.set.IsEmpty()
}

func (s *syncedSet[T]) Clear() {
	s.lock.Lock()
	defer s.lock.Unlock()
	s.set.Clear()
}

func (s *syncedSet[T]) ToSlice() []T {
	s.lock.RLock()
	defer s.lock.RUnlock()
	return s.set.ToSlice()
}

func (s *syncedSet[T]) All() iter.Seq[T] {
	items := s.ToSlice()
	return func(yield func(T) bool) {
		for _, item := range items {
			if !yield(item) {
				return
			}
		}
	}
}
