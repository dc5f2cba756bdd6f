// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

// staticDepth is the size of the static array to use for keeping track of the
// parent stack during treap iteration.  Since a treap has a very high
// probability that the tree height is logarithmic, it is exceedingly unlikely
// that the parent stack will ever exceed this size even for extremely large
// numbers of items.
const staticDepth = 128

// treapNode represents a node in the treap.
type treapNode[K, V any] struct {
	key      K
	value    V
	priority uint64
	size     int // Count of items within this subtree - the node itself counts as 1.
	left     *treapNode[K, V]
	right    *treapNode[K, V]
}

// newTreapNode returns a new node from the given key, value, and priority.  The
// node is not initially linked to any others.
func newTreapNode[K, V any](key K, value V, priority uint64) *treapNode[K, V] {
	return &treapNode[K, V]{key: key, value: value, priority: priority, size: 1}
}

// len returns the number of nodes in the subtree rooted at n, which is zero
// for a nil node.
func (n *treapNode[K, V]) len() int {
	if n == nil {
		return 0
	}
	return n.size
}

// leftSize returns the size of the subtree on the left-hand side, and zero if
// there is no tree present there.
func (n *treapNode[K, V]) leftSize() int {
	return n.left.len()
}

// rightSize returns the size of the subtree on the right-hand side, and zero if
// there is no tree present there.
func (n *treapNode[K, V]) rightSize() int {
	return n.right.len()
}

// resize recomputes the size of n from the sizes of its children.
func (n *treapNode[K, V]) resize() {
	n.size = 1 + n.leftSize() + n.rightSize()
}

// parentStack represents a stack of parent treap nodes that are used during
// iteration.  It consists of a static array for holding the parents and a
// dynamic overflow slice.  It is extremely unlikely the overflow will ever be
// hit during normal operation, however, since a treap's height is
// probabilistic, the overflow case needs to be handled properly.  This approach
// is used because it is much more efficient for the majority case than
// dynamically allocating heap space every time the treap is iterated.
type parentStack[K, V any] struct {
	index    int
	items    [staticDepth]*treapNode[K, V]
	overflow []*treapNode[K, V]
}

// Len returns the current number of items in the stack.
func (s *parentStack[K, V]) Len() int {
	return s.index
}

// Pop removes the top item from the stack.  It returns nil if the stack is
// empty.
func (s *parentStack[K, V]) Pop() *treapNode[K, V] {
	if s.index == 0 {
		return nil
	}

	s.index--
	if s.index < staticDepth {
		node := s.items[s.index]
		s.items[s.index] = nil
		return node
	}

	node := s.overflow[s.index-staticDepth]
	s.overflow[s.index-staticDepth] = nil
	return node
}

// Push pushes the passed item onto the top of the stack.
func (s *parentStack[K, V]) Push(node *treapNode[K, V]) {
	if s.index < staticDepth {
		s.items[s.index] = node
		s.index++
		return
	}

	// Only grow the overflow one item at a time since the number of items
	// is bounded by the tree depth, which requires exponentially more
	// items to increase.
	index := s.index - staticDepth
	if index+1 > cap(s.overflow) {
		overflow := make([]*treapNode[K, V], index+1)
		copy(overflow, s.overflow)
		s.overflow = overflow
	}
	s.overflow[index] = node
	s.index++
}

// pushLeftSpine pushes n and every node reachable from it by following left
// children.  After the call the top of the stack is the smallest key in the
// subtree rooted at n.
func (s *parentStack[K, V]) pushLeftSpine(n *treapNode[K, V]) {
	for ; n != nil; n = n.left {
		s.Push(n)
	}
}

// pushRightSpine pushes n and every node reachable from it by following right
// children.  After the call the top of the stack is the largest key in the
// subtree rooted at n.
func (s *parentStack[K, V]) pushRightSpine(n *treapNode[K, V]) {
	for ; n != nil; n = n.right {
		s.Push(n)
	}
}
