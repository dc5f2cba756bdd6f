// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

// get returns the node in the subtree rooted at n that contains the passed
// key, or nil when the key does not exist.
func (n *treapNode[K, V]) get(key K, cmp func(K, K) int) *treapNode[K, V] {
	for n != nil {
		// Traverse left or right depending on the result of the
		// comparison.
		compareResult := cmp(key, n.key)
		if compareResult < 0 {
			n = n.left
			continue
		}
		if compareResult > 0 {
			n = n.right
			continue
		}

		// The key exists.
		return n
	}

	// A nil node was reached which means the key does not exist.
	return nil
}

// insert puts the key/value pair into the subtree rooted at n and returns the
// new root of that subtree.  When the key already exists only its value is
// replaced and the former value is returned along with true.  Otherwise a new
// leaf with a priority from newPriority is attached and rotated upward while
// its priority is higher than its parent's.
//
// n may be nil, in which case the new node is the returned subtree.
func (n *treapNode[K, V]) insert(key K, value V, cmp func(K, K) int,
	newPriority func() uint64) (root *treapNode[K, V], old V, replaced bool) {

	if n == nil {
		return newTreapNode(key, value, newPriority()), old, false
	}

	compareResult := cmp(key, n.key)
	switch {
	case compareResult < 0:
		n.left, old, replaced = n.left.insert(key, value, cmp, newPriority)
		if replaced {
			return n, old, true
		}
		n.size++
		if n.left.priority > n.priority {
			return n.rotateRight(), old, false
		}

	case compareResult > 0:
		n.right, old, replaced = n.right.insert(key, value, cmp, newPriority)
		if replaced {
			return n, old, true
		}
		n.size++
		if n.right.priority > n.priority {
			return n.rotateLeft(), old, false
		}

	default:
		// The key already exists, so update its value.
		old, n.value = n.value, value
		return n, old, true
	}

	return n, old, false
}

// remove deletes the node with the passed key from the subtree rooted at n.
// It returns the new root of the subtree and the node that was unlinked, which
// is nil when the key does not exist.
//
// The caller must store the returned root in the link it followed to reach n.
// A nil root together with a non-nil removed node means n was a leaf holding
// the key and has to be detached from its parent.
func (n *treapNode[K, V]) remove(key K, cmp func(K, K) int) (root, removed *treapNode[K, V]) {
	if n == nil {
		return nil, nil
	}

	compareResult := cmp(key, n.key)
	switch {
	case compareResult < 0:
		n.left, removed = n.left.remove(key, cmp)

	case compareResult > 0:
		n.right, removed = n.right.remove(key, cmp)

	case n.left != nil && n.right != nil:
		// Rotate the child with the higher priority into this position
		// to maintain the max-heap and chase the node to delete down the
		// opposite side.
		if n.left.priority < n.right.priority {
			root = n.rotateLeft()
			root.left, removed = n.remove(key, cmp)
		} else {
			root = n.rotateRight()
			root.right, removed = n.remove(key, cmp)
		}
		root.size--
		return root, removed

	default:
		// At most one child, which takes the place of the node.
		root = n.left
		if root == nil {
			root = n.right
		}
		n.left, n.right, n.size = nil, nil, 1
		return root, n
	}

	if removed != nil {
		n.size--
	}
	return n, removed
}

// rotateLeft rotates the subtree rooted at node x,
// turning (x a (y b c)) into (y (x a b) c), and returns y.
func (x *treapNode[K, V]) rotateLeft() *treapNode[K, V] {
	y := x.right
	x.right, y.left = y.left, x

	// x is now the child, so its size has to be settled before y's.
	x.resize()
	y.resize()
	return y
}

// rotateRight rotates the subtree rooted at node y,
// turning (y (x a b) c) into (x a (y b c)), and returns x.
func (y *treapNode[K, V]) rotateRight() *treapNode[K, V] {
	x := y.left
	y.left, x.right = x.right, y

	// y is now the child, so its size has to be settled before x's.
	y.resize()
	x.resize()
	return x
}

// rank returns the number of keys in the subtree rooted at n that are less
// than the passed key, or less than or equal to it when orEqual is set.
func (n *treapNode[K, V]) rank(key K, orEqual bool, cmp func(K, K) int) int {
	var rank int
	for n != nil {
		compareResult := cmp(key, n.key)
		if compareResult < 0 || (compareResult == 0 && !orEqual) {
			n = n.left
			continue
		}
		rank += n.leftSize() + 1
		n = n.right
	}
	return rank
}

// getByIndex returns the node at the given position in key order.  The index
// must be in [0, n.size).
func (n *treapNode[K, V]) getByIndex(idx int) *treapNode[K, V] {
	for {
		leftSize := n.leftSize()
		switch {
		case idx < leftSize:
			n = n.left
		case idx == leftSize:
			return n
		default:
			n, idx = n.right, idx-leftSize-1
		}
	}
}

// minNode returns the node in n's subtree with the smallest key.
// n must not be nil.
func (n *treapNode[K, V]) minNode() *treapNode[K, V] {
	for n.left != nil {
		n = n.left
	}
	return n
}

// maxNode returns the node in n's subtree with the largest key.
// n must not be nil.
func (n *treapNode[K, V]) maxNode() *treapNode[K, V] {
	for n.right != nil {
		n = n.right
	}
	return n
}

// clone returns a deep copy of the subtree rooted at n.  Keys and values are
// copied by assignment.
func (n *treapNode[K, V]) clone() *treapNode[K, V] {
	if n == nil {
		return nil
	}
	c := *n
	c.left = n.left.clone()
	c.right = n.right.clone()
	return &c
}

// depth returns the height of the subtree rooted at n.
func (n *treapNode[K, V]) depth() int {
	if n == nil {
		return 0
	}
	return 1 + max(n.left.depth(), n.right.depth())
}
