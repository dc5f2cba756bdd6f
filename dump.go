// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"bytes"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

// String returns the entries of the map in ascending key order using the same
// form fmt uses for Go maps, for example "map[1:a 2:b]".
func (m *Map[K, V]) String() string {
	var buf bytes.Buffer
	buf.WriteString("map[")
	sep := ""
	for k, v := range m.All() {
		fmt.Fprintf(&buf, "%s%v:%v", sep, k, v)
		sep = " "
	}
	buf.WriteString("]")
	return buf.String()
}

// Dump returns the shape of the tree as an S-expression where every node is
// written as "(key:value left right)" and absent children as "nil".  It is
// intended for debugging and tests.
func (m *Map[K, V]) Dump() string {
	var buf bytes.Buffer
	var walk func(*treapNode[K, V])
	walk = func(x *treapNode[K, V]) {
		if x == nil {
			buf.WriteString("nil")
			return
		}
		fmt.Fprintf(&buf, "(%v:%v ", x.key, x.value)
		walk(x.left)
		buf.WriteString(" ")
		walk(x.right)
		buf.WriteString(")")
	}
	if m != nil {
		walk(m.root)
	} else {
		walk(nil)
	}
	return buf.String()
}

// Depth returns the number of nodes on the longest path from the root to a
// leaf, which is zero for an empty map.  It is expected to stay within a small
// multiple of log2(Len).
func (m *Map[K, V]) Depth() int {
	if m == nil {
		return 0
	}
	return m.root.depth()
}

// spewNodes returns a log closure that renders the full node structure of the
// subtree rooted at n, priorities and sizes included.  Nothing is rendered
// unless the closure is formatted, so it is only paid for when trace logging
// is enabled.
func spewNodes[K, V any](n *treapNode[K, V]) logClosure {
	return newLogClosure(func() string {
		return spew.Sdump(n)
	})
}
