// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"math/rand/v2"
	"testing"
)

// benchSizes are the map sizes used by the benchmarks.
var benchSizes = []struct {
	name string
	n    int
}{
	{"1K", 1 << 10},
	{"64K", 1 << 16},
}

// newBenchMap returns a map holding n random keys along with the keys.
func newBenchMap(n int) (*Map[uint64, uint64], []uint64) {
	rng := rand.New(rand.NewPCG(1, 2))
	m := New[uint64, uint64](WithSeed(3, 4))
	keys := make([]uint64, n)
	for i := range keys {
		keys[i] = rng.Uint64()
		m.Put(keys[i], uint64(i))
	}
	return m, keys
}

// BenchmarkPut benchmarks inserting random keys into a map.
func BenchmarkPut(b *testing.B) {
	rng := rand.New(rand.NewPCG(5, 6))
	m := New[uint64, int]()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Put(rng.Uint64(), i)
	}
}

// BenchmarkGet benchmarks looking up existing keys.
func BenchmarkGet(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			m, keys := newBenchMap(size.n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				m.Get(keys[i%len(keys)])
			}
		})
	}
}

// BenchmarkPutDelete benchmarks adding and removing a key in a map of stable
// size.
func BenchmarkPutDelete(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			m, keys := newBenchMap(size.n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				key := keys[i%len(keys)]
				m.Delete(key)
				m.Put(key, 0)
			}
		})
	}
}

// BenchmarkIterate benchmarks a full ascending iteration.
func BenchmarkIterate(b *testing.B) {
	for _, size := range benchSizes {
		b.Run(size.name, func(b *testing.B) {
			m, _ := newBenchMap(size.n)
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				for range m.All() {
				}
			}
		})
	}
}

// BenchmarkRangeSetup benchmarks creating a bounded iterator, which counts the
// entries in range without visiting them.
func BenchmarkRangeSetup(b *testing.B) {
	m, _ := newBenchMap(1 << 16)
	lo, hi := Included(uint64(1)<<62), Excluded(uint64(3)<<62)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		m.Range(lo, hi)
	}
}
