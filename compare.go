// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"cmp"
	"encoding/binary"

	"github.com/dchest/siphash"
)

// Equal reports whether a and b hold the same keys mapped to equal values.
// Keys are matched with the comparison function of a.
func Equal[K any, V comparable](a, b *Map[K, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is like Equal but compares values with eq.  The maps may have
// different value types.
func EqualFunc[K, V1, V2 any](a *Map[K, V1], b *Map[K, V2], eq func(V1, V2) bool) bool {
	if a.Len() != b.Len() {
		return false
	}
	if a.Len() == 0 {
		return true
	}

	// Both maps hold the same number of entries, so walking them in
	// lockstep visits every pair.
	ai, bi := a.Iterator(), b.Iterator()
	for ai.Next() && bi.Next() {
		if a.cmp(ai.node.key, bi.node.key) != 0 {
			return false
		}
		if !eq(ai.node.value, bi.node.value) {
			return false
		}
	}
	return true
}

// Compare compares the entries of a and b in ascending key order as
// sequences of key/value pairs.  Keys are ordered with the comparison
// function of a and values with cmp.Compare.  The result is negative when a
// is less than b, positive when a is greater, and zero when they are equal.
// A map that is a prefix of the other is the lesser one.
func Compare[K any, V cmp.Ordered](a, b *Map[K, V]) int {
	return CompareFunc(a, b, cmp.Compare[V])
}

// CompareFunc is like Compare but orders values with compareValue.
func CompareFunc[K, V1, V2 any](a *Map[K, V1], b *Map[K, V2], compareValue func(V1, V2) int) int {
	ai, bi := a.Iterator(), b.Iterator()
	for {
		aOk, bOk := ai.Next(), bi.Next()
		switch {
		case !aOk && !bOk:
			return 0
		case !aOk:
			return -1
		case !bOk:
			return 1
		}
		if c := a.cmp(ai.node.key, bi.node.key); c != 0 {
			return c
		}
		if c := compareValue(ai.node.value, bi.node.value); c != 0 {
			return c
		}
	}
}

// Hash returns a SipHash-2-4 digest of the entries of the map keyed by k0 and
// k1.  appendEntry must append an encoding of a single entry to the passed
// buffer and return it.  The entry count is encoded first, so maps that are
// Equal hash identically as long as appendEntry encodes equal entries the same
// way.
func (m *Map[K, V]) Hash(k0, k1 uint64, appendEntry func(b []byte, key K, value V) []byte) uint64 {
	buf := binary.AppendUvarint(nil, uint64(m.Len()))
	for k, v := range m.All() {
		buf = appendEntry(buf, k, v)
	}
	return siphash.Hash(k0, k1, buf)
}
