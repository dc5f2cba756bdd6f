// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import "iter"

// Iterator represents a double-ended iterator over the entries of a map in
// ascending key order, optionally limited to a range of keys.
//
// Next consumes entries from the low end and Prev consumes entries from the
// high end.  The two ends never cross, so every entry in the range is visited
// exactly once no matter how the calls are interleaved.  The traversal state
// lives in explicit stacks, so the depth of the tree never affects the call
// stack.
//
// WARNING: Adding or removing keys while an iterator is live leaves the
// iterator undefined.  It will not crash, but it may skip or repeat entries.
// Changing values through SetValue or Map.GetPtr is always safe.
type Iterator[K, V any] struct {
	low       parentStack[K, V] // Pending nodes for Next, smallest on top
	high      parentStack[K, V] // Pending nodes for Prev, largest on top
	node      *treapNode[K, V]  // The node the iterator is positioned at
	remaining int               // Entries not yet visited from either end
	lo, hi    Bound[K]          // Used to describe the range
}

// Next moves the iterator to the smallest entry that has not been visited
// yet and returns false when the iterator is exhausted.
func (iter *Iterator[K, V]) Next() bool {
	if iter.remaining == 0 {
		iter.node = nil
		return false
	}

	// The smallest pending node is on top of the low stack.  Its successor
	// is the left-most node down its right sub-tree, or the next parent
	// already on the stack when there is no right sub-tree.
	node := iter.low.Pop()
	if node == nil {
		iter.remaining = 0
		iter.node = nil
		return false
	}
	iter.low.pushLeftSpine(node.right)
	iter.node = node
	iter.remaining--
	return true
}

// Prev moves the iterator to the largest entry that has not been visited yet
// and returns false when the iterator is exhausted.
func (iter *Iterator[K, V]) Prev() bool {
	if iter.remaining == 0 {
		iter.node = nil
		return false
	}

	// The largest pending node is on top of the high stack.  Its
	// predecessor is the right-most node down its left sub-tree, or the
	// next parent already on the stack when there is no left sub-tree.
	node := iter.high.Pop()
	if node == nil {
		iter.remaining = 0
		iter.node = nil
		return false
	}
	iter.high.pushRightSpine(node.left)
	iter.node = node
	iter.remaining--
	return true
}

// Valid indicates whether the iterator is positioned at an entry.  It will be
// considered invalid when the iterator is newly created or exhausted.
func (iter *Iterator[K, V]) Valid() bool {
	return iter.node != nil
}

// Key returns the key of the current entry, or the zero value when the
// iterator is not positioned at an entry.
func (iter *Iterator[K, V]) Key() K {
	if iter.node == nil {
		var zero K
		return zero
	}
	return iter.node.key
}

// Value returns the value of the current entry, or the zero value when the
// iterator is not positioned at an entry.
func (iter *Iterator[K, V]) Value() V {
	if iter.node == nil {
		var zero V
		return zero
	}
	return iter.node.value
}

// SetValue replaces the value of the current entry in the map.  It does
// nothing when the iterator is not positioned at an entry.
func (iter *Iterator[K, V]) SetValue(value V) {
	if iter.node != nil {
		iter.node.value = value
	}
}

// Len returns the number of entries that have not been visited yet.
func (iter *Iterator[K, V]) Len() int {
	return iter.remaining
}

// String returns the range of the iterator in interval notation.
func (iter *Iterator[K, V]) String() string {
	return rangeString(iter.lo, iter.hi)
}

// All returns a sequence that consumes the remaining entries of the iterator
// from the low end.
func (iter *Iterator[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for iter.Next() {
			if !yield(iter.node.key, iter.node.value) {
				return
			}
		}
	}
}

// Backward returns a sequence that consumes the remaining entries of the
// iterator from the high end.
func (iter *Iterator[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for iter.Prev() {
			if !yield(iter.node.key, iter.node.value) {
				return
			}
		}
	}
}

// newIterator returns an iterator limited to the keys between lo and hi.  The
// bounds must already have been validated.
//
// Sub-trees that lie entirely outside of the range are never pushed, and the
// number of entries in the range is computed from subtree sizes, so creating
// the iterator takes time proportional to the depth of the tree.
func (m *Map[K, V]) newIterator(lo, hi Bound[K]) *Iterator[K, V] {
	iter := &Iterator[K, V]{lo: lo, hi: hi}
	if m == nil || m.root == nil {
		return iter
	}

	start, end := 0, m.root.size
	if lo.kind != unbounded {
		start = m.root.rank(lo.key, lo.kind == excluded, m.cmp)
	}
	if hi.kind != unbounded {
		end = m.root.rank(hi.key, hi.kind == included, m.cmp)
	}
	if end <= start {
		return iter
	}
	iter.remaining = end - start

	// Seek the lower bound.  Nodes before the range are skipped by
	// descending right, and every other node on the path is pushed since
	// it will be visited after its left sub-tree.
	for node := m.root; node != nil; {
		if lo.belowLower(node.key, m.cmp) {
			node = node.right
			continue
		}
		iter.low.Push(node)
		node = node.left
	}

	// Seek the upper bound in the mirrored fashion.
	for node := m.root; node != nil; {
		if hi.aboveUpper(node.key, m.cmp) {
			node = node.left
			continue
		}
		iter.high.Push(node)
		node = node.right
	}

	log.Tracef("Created iterator over %v with %d of %d entries",
		newLogClosure(func() string { return rangeString(lo, hi) }),
		iter.remaining, m.root.size)
	return iter
}

// Iterator returns a new iterator over every entry of the map.  The newly
// returned iterator is not positioned at an entry until Next or Prev is
// called.
//
// For example:
//
//	iter := m.Iterator()
//	for iter.Next() {
//		iter.SetValue(iter.Value() + 1)
//	}
func (m *Map[K, V]) Iterator() *Iterator[K, V] {
	return m.newIterator(Unbounded[K](), Unbounded[K]())
}

// Range returns a new iterator over the entries whose keys lie between lo
// and hi.  The newly returned iterator is not positioned at an entry until
// Next or Prev is called.
//
// Range panics with an Error carrying ErrInvalidRange when lo is greater than
// hi, or when lo and hi are the same key and both are excluded.  Validating
// the bounds needs the comparison function of a map built with New or NewFunc,
// so a zero or nil map accepts any bounds and returns an empty iterator.
func (m *Map[K, V]) Range(lo, hi Bound[K]) *Iterator[K, V] {
	if m != nil && m.cmp != nil {
		checkRange(lo, hi, m.cmp)
	}
	return m.newIterator(lo, hi)
}

// RangeAll returns a sequence of the entries whose keys lie between lo and hi
// in ascending order.  The bounds are validated immediately as by Range, with
// the same exception for a zero or nil map, and every use of the sequence
// starts a new traversal.
func (m *Map[K, V]) RangeAll(lo, hi Bound[K]) iter.Seq2[K, V] {
	if m != nil && m.cmp != nil {
		checkRange(lo, hi, m.cmp)
	}
	return func(yield func(K, V) bool) {
		m.newIterator(lo, hi).All()(yield)
	}
}

// All returns a sequence of every entry in the map in ascending key order.
// Every use of the sequence starts a new traversal.
func (m *Map[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.Iterator().All()(yield)
	}
}

// Backward returns a sequence of every entry in the map in descending key
// order.  Every use of the sequence starts a new traversal.
func (m *Map[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		m.Iterator().Backward()(yield)
	}
}

// Keys returns a sequence of the keys in the map in ascending order.
func (m *Map[K, V]) Keys() iter.Seq[K] {
	return func(yield func(K) bool) {
		for k := range m.All() {
			if !yield(k) {
				return
			}
		}
	}
}

// Values returns a sequence of the values in the map in ascending key order.
func (m *Map[K, V]) Values() iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range m.All() {
			if !yield(v) {
				return
			}
		}
	}
}

// Drain returns a sequence that removes every entry from the map and yields
// them in ascending key order.  The map is empty as soon as the sequence
// starts, so entries that are not consumed because the caller stops early are
// dropped.
func (m *Map[K, V]) Drain() iter.Seq2[K, V] {
	return m.drain(false)
}

// DrainBackward is like Drain but yields the entries in descending key order.
func (m *Map[K, V]) DrainBackward() iter.Seq2[K, V] {
	return m.drain(true)
}

// drain returns the sequence behind Drain and DrainBackward.
func (m *Map[K, V]) drain(descending bool) iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		if m == nil || m.root == nil {
			return
		}
		root := m.root
		m.root = nil
		log.Debugf("Draining map with %d entries (descending %v)",
			root.size, descending)

		// Unlink each node as it is visited so the consumed part of the
		// tree can be collected while the rest is still being walked.
		var parents parentStack[K, V]
		if descending {
			parents.pushRightSpine(root)
		} else {
			parents.pushLeftSpine(root)
		}
		for parents.Len() > 0 {
			node := parents.Pop()
			left, right := node.left, node.right
			node.left, node.right = nil, nil
			if descending {
				parents.pushRightSpine(left)
			} else {
				parents.pushLeftSpine(right)
			}
			if !yield(node.key, node.value) {
				return
			}
		}
	}
}
