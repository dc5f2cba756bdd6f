// Copyright (c) 2015-2016 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import "math/rand/v2"

// options defines the configuration of a map.
type options struct {
	// src supplies the heap priority for each newly created node.  A nil
	// source means the global generator, which is safe for concurrent use.
	src rand.Source
}

// Option is a function that configures a map created with New, NewFunc,
// NewSet or NewSetFunc.
type Option func(*options)

// WithRand draws node priorities from src instead of the global generator.
// The source is owned by the map afterwards and must not be shared with
// another goroutine.
//
// Clone gives the copy its own source.  *rand.PCG and *rand.ChaCha8 sources
// are copied along with their state, so a clone draws the same priorities the
// original would.  Any other source is replaced in the clone by a PCG seeded
// from the global generator.
func WithRand(src rand.Source) Option {
	return func(o *options) {
		o.src = src
	}
}

// WithSeed draws node priorities from a PCG generator seeded with the passed
// values.  Two maps built with the same seed and the same sequence of
// operations have identical shapes, which makes tests reproducible.
func WithSeed(seed1, seed2 uint64) Option {
	return WithRand(rand.NewPCG(seed1, seed2))
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{}
}

// applyOptions returns the default configuration modified by opts.
func applyOptions(opts []Option) options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// cloneSource returns a priority source for a copy of a map using src that
// shares no state with src.  Drawing from the result never advances src.
func cloneSource(src rand.Source) rand.Source {
	switch s := src.(type) {
	case nil:
		return nil
	case *rand.PCG:
		c := *s
		return &c
	case *rand.ChaCha8:
		c := *s
		return &c
	}

	log.Debugf("Priority source %T cannot be copied; seeding the clone "+
		"from the global generator", src)
	return rand.NewPCG(rand.Uint64(), rand.Uint64())
}
