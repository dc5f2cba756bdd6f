// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap_test

import (
	"fmt"
	"strings"

	"github.com/btcsuite/treap"
)

// This example demonstrates creating a map, adding entries, and looking them
// up again.
func ExampleNew() {
	m := treap.New[int, string]()
	for _, k := range []int{30, 10, 20} {
		m.Put(k, fmt.Sprintf("v%d", k))
	}

	old, replaced := m.Put(20, "twenty")
	fmt.Println(old, replaced)

	v, ok := m.Get(20)
	fmt.Println(v, ok)
	fmt.Println(m.Len(), m)

	// Output:
	// v20 true
	// twenty true
	// 3 map[10:v10 20:twenty 30:v30]
}

// This example demonstrates iterating a range of keys from both ends.
func ExampleMap_Range() {
	m := treap.New[int, int]()
	for k := 10; k <= 90; k += 10 {
		m.Put(k, k*k)
	}

	iter := m.Range(treap.Included(20), treap.Excluded(60))
	fmt.Println(iter, "holds", iter.Len())
	for iter.Next() {
		fmt.Println(iter.Key(), iter.Value())
		if iter.Prev() {
			fmt.Println(iter.Key(), iter.Value())
		}
	}

	// Output:
	// [20, 60) holds 4
	// 20 400
	// 50 2500
	// 30 900
	// 40 1600
}

// This example demonstrates a map ordered by a custom comparison function.
func ExampleNewFunc() {
	m := treap.NewFunc[string, int](func(a, b string) int {
		return strings.Compare(strings.ToLower(a), strings.ToLower(b))
	})
	m.Put("banana", 3)
	m.Put("Apple", 1)
	m.Put("cherry", 2)

	for k, v := range m.All() {
		fmt.Println(k, v)
	}
	fmt.Println(m.Rank("BANANA"))

	// Output:
	// Apple 1
	// banana 3
	// cherry 2
	// 1
}

// This example demonstrates moving every entry out of a map.
func ExampleMap_Drain() {
	m := treap.Of(
		treap.Entry[string, int]{Key: "b", Value: 2},
		treap.Entry[string, int]{Key: "a", Value: 1},
	)

	for k, v := range m.Drain() {
		fmt.Println(k, v)
	}
	fmt.Println(m.IsEmpty())

	// Output:
	// a 1
	// b 2
	// true
}

// This example demonstrates an ordered set.
func ExampleSet() {
	s := treap.NewSet[string]()
	for _, w := range strings.Fields("the quick brown fox jumps over the lazy dog") {
		s.Add(w)
	}

	first, _ := s.First()
	fmt.Println(s.Len(), first, s.GetByIndex(s.Len()-1))

	// Output:
	// 8 brown the
}
