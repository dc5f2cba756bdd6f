// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"iter"
	"math/rand/v2"
)

// Map represents a treap data structure which is used to hold ordered
// key/value pairs using a combination of binary search tree and heap semantics.
// It is a self-organizing and randomized data structure that doesn't require
// complex operations to maintain balance.  Search, insert, and delete
// operations are all O(log n) expected.
//
// The zero value of a Map has no comparison function.  It can be read like an
// empty map, but writing to it panics with ErrUninitialized.  Use New or
// NewFunc to create a Map.
//
// A Map must not be used by multiple goroutines concurrently without external
// synchronization.
type Map[K, V any] struct {
	root *treapNode[K, V]
	cmp  func(K, K) int
	src  rand.Source // Priority source, nil for the global generator
}

// Entry is a key/value pair.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// New returns a new empty map ordered according to K's standard Go ordering.
// No nodes are allocated until the first entry is added.
func New[K cmp.Ordered, V any](opts ...Option) *Map[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc returns a new empty map ordered according to cmp, which must
// implement a total order: it returns a negative number when a < b, a
// positive number when a > b and zero when a and b are the same key.
func NewFunc[K, V any](cmp func(a, b K) int, opts ...Option) *Map[K, V] {
	o := applyOptions(opts)
	return &Map[K, V]{cmp: cmp, src: o.src}
}

// Of returns a new map, ordered according to K's standard Go ordering,
// holding the passed entries.  Later entries with a duplicate key overwrite
// earlier ones.
func Of[K cmp.Ordered, V any](entries ...Entry[K, V]) *Map[K, V] {
	m := New[K, V]()
	for _, e := range entries {
		m.Put(e.Key, e.Value)
	}
	return m
}

// Collect returns a new map, ordered according to K's standard Go ordering,
// holding the key/value pairs of seq.  Later pairs with a duplicate key
// overwrite earlier ones.
func Collect[K cmp.Ordered, V any](seq iter.Seq2[K, V], opts ...Option) *Map[K, V] {
	m := New[K, V](opts...)
	m.Extend(seq)
	return m
}

// CollectFunc is like Collect but orders the keys according to cmp.
func CollectFunc[K, V any](cmp func(a, b K) int, seq iter.Seq2[K, V], opts ...Option) *Map[K, V] {
	m := NewFunc[K, V](cmp, opts...)
	m.Extend(seq)
	return m
}

// Len returns the number of items stored in the map.  It is answered in
// constant time from the size of the root subtree.
func (m *Map[K, V]) Len() int {
	if m == nil {
		return 0
	}
	return m.root.len()
}

// IsEmpty reports whether the map holds no entries.
func (m *Map[K, V]) IsEmpty() bool {
	return m.Len() == 0
}

// get returns the node holding key or nil when the key does not exist.
func (m *Map[K, V]) get(key K) *treapNode[K, V] {
	if m == nil || m.root == nil {
		return nil
	}
	return m.root.get(key, m.cmp)
}

// Get returns the value for the passed key and reports whether it exists.
func (m *Map[K, V]) Get(key K) (V, bool) {
	if node := m.get(key); node != nil {
		return node.value, true
	}
	var zero V
	return zero, false
}

// GetPtr returns a pointer to the value stored for the passed key, or nil
// when the key does not exist.  The value may be modified through the pointer
// until the key is removed from the map.
func (m *Map[K, V]) GetPtr(key K) *V {
	if node := m.get(key); node != nil {
		return &node.value
	}
	return nil
}

// GetEntry returns the stored key and value for the passed key and reports
// whether it exists.  The stored key may differ from the passed one when the
// comparison function treats distinct values as the same key.
func (m *Map[K, V]) GetEntry(key K) (K, V, bool) {
	if node := m.get(key); node != nil {
		return node.key, node.value, true
	}
	var zeroK K
	var zeroV V
	return zeroK, zeroV, false
}

// Has returns whether or not the passed key exists.
func (m *Map[K, V]) Has(key K) bool {
	return m.get(key) != nil
}

// MustGet returns the value for the passed key.  It panics with an Error
// carrying ErrKeyNotFound when the key does not exist.
func (m *Map[K, V]) MustGet(key K) V {
	node := m.get(key)
	if node == nil {
		fail(ErrKeyNotFound, "no entry found for key %v", key)
	}
	return node.value
}

// Put inserts the passed key/value pair.  When the key already exists its
// value is replaced, the stored key is kept, and the former value is returned
// along with true.  Otherwise the zero value and false are returned.
func (m *Map[K, V]) Put(key K, value V) (old V, replaced bool) {
	if m.cmp == nil {
		fail(ErrUninitialized, "Put on a Map without a comparison "+
			"function; use New or NewFunc")
	}
	m.root, old, replaced = m.root.insert(key, value, m.cmp, m.newPriority)
	return old, replaced
}

// Delete removes the passed key if it exists and returns its value along with
// true.  When the key does not exist the map is unchanged and the zero value
// and false are returned.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	_, value, ok := m.DeleteEntry(key)
	return value, ok
}

// DeleteEntry removes the passed key if it exists and returns the stored key
// and value along with true.
func (m *Map[K, V]) DeleteEntry(key K) (K, V, bool) {
	var removed *treapNode[K, V]
	if m != nil && m.root != nil {
		// A nil root returned here means the root itself was the only
		// node and has been detached.
		m.root, removed = m.root.remove(key, m.cmp)
	}
	if removed == nil {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	return removed.key, removed.value, true
}

// Extend puts every key/value pair of seq in iteration order.  Later pairs
// with a duplicate key overwrite earlier ones.
func (m *Map[K, V]) Extend(seq iter.Seq2[K, V]) {
	var added int
	for k, v := range seq {
		if _, replaced := m.Put(k, v); !replaced {
			added++
		}
	}
	log.Tracef("Extended map by %d new entries (%d total)", added,
		m.Len())
}

// newPriority returns the heap priority for a new node.
func (m *Map[K, V]) newPriority() uint64 {
	if m.src == nil {
		return rand.Uint64()
	}
	return m.src.Uint64()
}

// Clear efficiently removes all items in the map.  Clearing a nil map does
// nothing.
func (m *Map[K, V]) Clear() {
	if m == nil {
		return
	}
	log.Debugf("Clearing map with %d entries", m.Len())
	log.Tracef("Discarded nodes: %v", spewNodes(m.root))
	m.root = nil
}

// Clone returns a copy of m with the same ordering.  The keys and values are
// copied by assignment.  The copy gets a priority source of its own as
// described by WithRand, so the two maps can be used independently, even from
// different goroutines.  Cloning a nil map returns nil.
func (m *Map[K, V]) Clone() *Map[K, V] {
	if m == nil {
		return nil
	}
	return &Map[K, V]{root: m.root.clone(), cmp: m.cmp, src: cloneSource(m.src)}
}

// First returns the entry with the smallest key.  The last return value is
// false when the map is empty.
func (m *Map[K, V]) First() (K, V, bool) {
	if m.Len() == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	node := m.root.minNode()
	return node.key, node.value, true
}

// Last returns the entry with the largest key.  The last return value is
// false when the map is empty.
func (m *Map[K, V]) Last() (K, V, bool) {
	if m.Len() == 0 {
		var zeroK K
		var zeroV V
		return zeroK, zeroV, false
	}
	node := m.root.maxNode()
	return node.key, node.value, true
}

// Rank returns the number of keys in the map that are less than the passed
// key.  When the key exists this is its position in key order.
func (m *Map[K, V]) Rank(key K) int {
	if m.Len() == 0 {
		return 0
	}
	return m.root.rank(key, false, m.cmp)
}

// GetByIndex returns the entry at the given position in key order.  It panics
// with an Error carrying ErrIndexOutOfRange when idx is negative or not less
// than Len.
func (m *Map[K, V]) GetByIndex(idx int) (K, V) {
	if idx < 0 || idx >= m.Len() {
		fail(ErrIndexOutOfRange, "GetByIndex(%d): index out of range "+
			"for map of length %d", idx, m.Len())
	}
	node := m.root.getByIndex(idx)
	return node.key, node.value
}
