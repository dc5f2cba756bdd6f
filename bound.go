// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import (
	"fmt"
	"strings"
)

// boundKind describes how a Bound limits a range.
type boundKind uint8

const (
	unbounded boundKind = iota
	included
	excluded
)

// Bound is one end of a key range.  A Bound either includes its key, excludes
// it, or leaves that end of the range open.  The zero Bound is unbounded.
type Bound[K any] struct {
	key  K
	kind boundKind
}

// Included returns a bound that includes key.
func Included[K any](key K) Bound[K] {
	return Bound[K]{key: key, kind: included}
}

// Excluded returns a bound that excludes key.
func Excluded[K any](key K) Bound[K] {
	return Bound[K]{key: key, kind: excluded}
}

// Unbounded returns a bound that does not limit its end of the range.
func Unbounded[K any]() Bound[K] {
	return Bound[K]{}
}

// Key returns the key of the bound and whether there is one.
func (b Bound[K]) Key() (K, bool) {
	return b.key, b.kind != unbounded
}

// IsInclusive reports whether the bound includes its key.
func (b Bound[K]) IsInclusive() bool {
	return b.kind == included
}

// IsUnbounded reports whether the bound leaves its end of the range open.
func (b Bound[K]) IsUnbounded() bool {
	return b.kind == unbounded
}

// belowLower reports whether key falls before the range when b is used as
// the lower bound.
func (b Bound[K]) belowLower(key K, cmp func(K, K) int) bool {
	switch b.kind {
	case included:
		return cmp(key, b.key) < 0
	case excluded:
		return cmp(key, b.key) <= 0
	}
	return false
}

// aboveUpper reports whether key falls after the range when b is used as the
// upper bound.
func (b Bound[K]) aboveUpper(key K, cmp func(K, K) int) bool {
	switch b.kind {
	case included:
		return cmp(key, b.key) > 0
	case excluded:
		return cmp(key, b.key) >= 0
	}
	return false
}

// rangeString renders the range between lo and hi in interval notation, for
// example "[2, 5)" or "(-∞, 7]".
func rangeString[K any](lo, hi Bound[K]) string {
	var b strings.Builder
	switch lo.kind {
	case unbounded:
		b.WriteString("(-∞")
	case included:
		fmt.Fprintf(&b, "[%v", lo.key)
	case excluded:
		fmt.Fprintf(&b, "(%v", lo.key)
	}
	b.WriteString(", ")
	switch hi.kind {
	case unbounded:
		b.WriteString("∞)")
	case included:
		fmt.Fprintf(&b, "%v]", hi.key)
	case excluded:
		fmt.Fprintf(&b, "%v)", hi.key)
	}
	return b.String()
}

// checkRange panics with ErrInvalidRange when lo is greater than hi, or when
// both bounds exclude the same key.
func checkRange[K any](lo, hi Bound[K], cmp func(K, K) int) {
	if lo.kind == unbounded || hi.kind == unbounded {
		return
	}
	compareResult := cmp(lo.key, hi.key)
	switch {
	case compareResult > 0:
		fail(ErrInvalidRange, "range %s: start is greater than end",
			rangeString(lo, hi))
	case compareResult == 0 && lo.kind == excluded && hi.kind == excluded:
		fail(ErrInvalidRange, "range %s: start and end are equal and "+
			"both excluded", rangeString(lo, hi))
	}
}
