// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

/*
Package treap implements an ordered map and set backed by a treap.

A treap is a binary search tree in which every node also carries a random
priority, and the priorities are kept in max-heap order.  The random
priorities keep the expected height of the tree logarithmic, so lookups,
insertions, deletions, rank and select queries all take expected O(log n)
time without any explicit rebalancing rules.  Every node also records the size
of its subtree, which answers Len in constant time and lets the number of
entries in a range be counted without visiting them.

# Map

A Map is created with New for keys that have a natural Go ordering, or with
NewFunc for any other key type together with a total-order comparison
function:

	m := treap.New[int, string]()
	m.Put(2, "two")
	m.Put(1, "one")
	v, ok := m.Get(2)

Looking up a missing key is not an error and reports false.  Operations whose
preconditions are violated, such as MustGet on a missing key or an inverted
range, panic with an Error value whose ErrorCode identifies the problem.

# Iteration

Iterator and Range return a double-ended Iterator.  Next walks forward from
the smallest key and Prev walks backward from the largest key, and the two ends
never cross.  All, Backward, Keys, Values and RangeAll expose the same
traversal as range-over-func sequences, and Drain empties the map while
yielding its entries.

Range takes a lower and an upper Bound, each of which is Included, Excluded or
Unbounded:

	for k, v := range m.RangeAll(treap.Included(10), treap.Excluded(20)) {
		...
	}

Adding or removing keys while an iterator is live leaves the iterator
undefined.  Values can be updated in place through Iterator.SetValue or
Map.GetPtr at any time.

# Priorities

Node priorities come from the global math/rand/v2 generator unless the map is
created with WithRand or WithSeed.  A fixed seed yields the same tree shape for
the same sequence of operations, which is useful for tests.

# Concurrency

Maps and sets are not safe for concurrent use.  Callers must provide their own
synchronization when a map is shared between goroutines.

# Logging

The package logs nothing by default.  Call UseLogger with a btclog.Logger to
see range setup and bulk operations at the trace and debug levels.
*/
package treap
