// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"testing"

	"github.com/davecgh/go-spew/spew"
)

// checkInvariants ensures the subtree rooted at the root of m is ordered as a
// binary search tree, that the priorities are in max-heap order, and that every
// node records the size of its subtree.
func checkInvariants[K, V any](t testing.TB, m *Map[K, V]) {
	t.Helper()

	var walk func(n *treapNode[K, V], lo, hi *K) int
	walk = func(n *treapNode[K, V], lo, hi *K) int {
		if n == nil {
			return 0
		}
		if lo != nil && m.cmp(n.key, *lo) <= 0 {
			t.Fatalf("key %v is not greater than its lower limit %v\n%s",
				n.key, *lo, m.Dump())
		}
		if hi != nil && m.cmp(n.key, *hi) >= 0 {
			t.Fatalf("key %v is not less than its upper limit %v\n%s",
				n.key, *hi, m.Dump())
		}
		if n.left != nil && n.left.priority > n.priority {
			t.Fatalf("left child of key %v has a higher priority - "+
				"got %d, want <= %d\n%s", n.key, n.left.priority,
				n.priority, spew.Sdump(n))
		}
		if n.right != nil && n.right.priority > n.priority {
			t.Fatalf("right child of key %v has a higher priority - "+
				"got %d, want <= %d\n%s", n.key, n.right.priority,
				n.priority, spew.Sdump(n))
		}

		size := 1 + walk(n.left, lo, &n.key) + walk(n.right, &n.key, hi)
		if n.size != size {
			t.Fatalf("unexpected size for key %v - got %d, want %d",
				n.key, n.size, size)
		}
		return size
	}
	walk(m.root, nil, nil)
}

// TestParentStack ensures the parentStack functionality works as intended.
func TestParentStack(t *testing.T) {
	t.Parallel()

	tests := []struct {
		numNodes int
	}{
		{numNodes: 1},
		{numNodes: staticDepth},
		{numNodes: staticDepth + 1}, // Test dynamic code paths
		{numNodes: staticDepth * 2},
	}

testLoop:
	for i, test := range tests {
		nodes := make([]*treapNode[int, int], 0, test.numNodes)
		for j := 0; j < test.numNodes; j++ {
			nodes = append(nodes, newTreapNode(j, j, 0))
		}

		// Push all of the nodes onto the parent stack while testing
		// the stack length.
		stack := &parentStack[int, int]{}
		for j, node := range nodes {
			stack.Push(node)

			// Ensure the stack length is the expected value.
			if stack.Len() != j+1 {
				t.Errorf("Len #%d (%d): unexpected stack "+
					"length - got %d, want %d", i, j,
					stack.Len(), j+1)
				continue testLoop
			}
		}

		// Ensure each popped node is the expected one.
		for j := 0; j < len(nodes); j++ {
			node := stack.Pop()
			expected := nodes[len(nodes)-j-1]
			if node != expected {
				t.Errorf("Pop #%d (%d): mismatched node - "+
					"got %v, want %v", i, j, node.key,
					expected.key)
				continue testLoop
			}
		}

		// Ensure the stack is now empty.
		if stack.Len() != 0 {
			t.Errorf("Len #%d: stack is not empty - got %d", i,
				stack.Len())
			continue testLoop
		}

		// Ensure attempting to pop a node from an empty stack returns
		// nil.
		if node := stack.Pop(); node != nil {
			t.Errorf("Pop #%d: did not give back nil - got %v", i,
				node)
			continue testLoop
		}
	}
}

// TestParentStackSpines ensures pushing the left and right spines of a tree
// leaves the smallest and largest keys on top of the stack.
func TestParentStackSpines(t *testing.T) {
	t.Parallel()

	m := New[int, int](WithSeed(1, 2))
	for i := 0; i < 100; i++ {
		m.Put(i, i)
	}

	var low parentStack[int, int]
	low.pushLeftSpine(m.root)
	if node := low.Pop(); node.key != 0 {
		t.Fatalf("pushLeftSpine: unexpected top - got %d, want 0",
			node.key)
	}

	var high parentStack[int, int]
	high.pushRightSpine(m.root)
	if node := high.Pop(); node.key != 99 {
		t.Fatalf("pushRightSpine: unexpected top - got %d, want 99",
			node.key)
	}

	// Pushing a nil subtree must not change the stack.
	var empty parentStack[int, int]
	empty.pushLeftSpine(nil)
	empty.pushRightSpine(nil)
	if empty.Len() != 0 {
		t.Fatalf("Len: unexpected length - got %d, want 0", empty.Len())
	}
}

// TestNodeSizes ensures the size helpers treat missing subtrees as empty.
func TestNodeSizes(t *testing.T) {
	t.Parallel()

	var nilNode *treapNode[int, int]
	if got := nilNode.len(); got != 0 {
		t.Fatalf("len: unexpected size of nil node - got %d, want 0", got)
	}

	n := newTreapNode(2, 2, 10)
	n.left = newTreapNode(1, 1, 5)
	n.resize()
	if n.leftSize() != 1 || n.rightSize() != 0 || n.size != 2 {
		t.Fatalf("resize: unexpected sizes - got left %d right %d "+
			"total %d, want 1, 0, 2", n.leftSize(), n.rightSize(),
			n.size)
	}
}
