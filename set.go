// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"iter"
)

// Set is an ordered set of unique keys backed by a treap.  Like Map, the zero
// value can be read but not written, and a Set must not be used by multiple
// goroutines concurrently without external synchronization.
type Set[K any] struct {
	m Map[K, struct{}]
}

// NewSet returns a new empty set ordered according to K's standard Go
// ordering.
func NewSet[K cmp.Ordered](opts ...Option) *Set[K] {
	return NewSetFunc(cmp.Compare[K], opts...)
}

// NewSetFunc returns a new empty set ordered according to cmp.
func NewSetFunc[K any](cmp func(a, b K) int, opts ...Option) *Set[K] {
	return &Set[K]{m: *NewFunc[K, struct{}](cmp, opts...)}
}

// Add inserts key and reports whether it was not already present.
func (s *Set[K]) Add(key K) bool {
	_, replaced := s.m.Put(key, struct{}{})
	return !replaced
}

// Remove deletes key and reports whether it was present.
func (s *Set[K]) Remove(key K) bool {
	_, ok := s.m.Delete(key)
	return ok
}

// Contains reports whether key is in the set.
func (s *Set[K]) Contains(key K) bool {
	return s.m.Has(key)
}

// Len returns the number of keys in the set.
func (s *Set[K]) Len() int {
	if s == nil {
		return 0
	}
	return s.m.Len()
}

// IsEmpty reports whether the set holds no keys.
func (s *Set[K]) IsEmpty() bool {
	return s.Len() == 0
}

// Clear removes every key from the set.  Clearing a nil set does nothing.
func (s *Set[K]) Clear() {
	if s == nil {
		return
	}
	s.m.Clear()
}

// All returns a sequence of the keys in ascending order.
func (s *Set[K]) All() iter.Seq[K] {
	return s.m.Keys()
}

// Backward returns a sequence of the keys in descending order.
func (s *Set[K]) Backward() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range s.m.Backward() {
			if !yield(k) {
				return
			}
		}
	}
}

// Range returns a sequence of the keys between lo and hi in ascending order.
// It panics with ErrInvalidRange under the same conditions as Map.Range.
func (s *Set[K]) Range(lo, hi Bound[K]) iter.Seq[K] {
	seq := s.m.RangeAll(lo, hi)
	return func(yield func(K) bool) {
		for k := range seq {
			if !yield(k) {
				return
			}
		}
	}
}

// First returns the smallest key and false when the set is empty.
func (s *Set[K]) First() (K, bool) {
	k, _, ok := s.m.First()
	return k, ok
}

// Last returns the largest key and false when the set is empty.
func (s *Set[K]) Last() (K, bool) {
	k, _, ok := s.m.Last()
	return k, ok
}

// Rank returns the number of keys in the set less than key.
func (s *Set[K]) Rank(key K) int {
	return s.m.Rank(key)
}

// GetByIndex returns the key at the given position in ascending order.  It
// panics with ErrIndexOutOfRange when idx is negative or not less than Len.
func (s *Set[K]) GetByIndex(idx int) K {
	k, _ := s.m.GetByIndex(idx)
	return k
}
