// Copyright (c) 2015-2016 The btcsuite developers
// Copyright (c) 2016 The Decred developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package treap

import "fmt"

// ErrorCode identifies a kind of error.
type ErrorCode int

// These constants are used to identify a specific Error.  Every one of them
// describes a misuse of the API by the caller.  They are reported by panicking
// with an Error since continuing would silently hide the bug.
const (
	// ErrKeyNotFound indicates MustGet was called with a key that is not
	// in the map.
	ErrKeyNotFound ErrorCode = iota

	// ErrInvalidRange indicates a range was requested whose lower bound is
	// greater than its upper bound, or whose bounds are the same key and
	// both exclusive.
	ErrInvalidRange

	// ErrIndexOutOfRange indicates GetByIndex was called with an index
	// that is negative or not less than the number of entries.
	ErrIndexOutOfRange

	// ErrUninitialized indicates a write to a Map that has no comparison
	// function, which happens when the zero value is used instead of a map
	// created with New or NewFunc.
	ErrUninitialized

	// numErrorCodes is the maximum error code number used in tests.
	numErrorCodes
)

// Map of ErrorCode values back to their constant names for pretty printing.
var errorCodeStrings = map[ErrorCode]string{
	ErrKeyNotFound:     "ErrKeyNotFound",
	ErrInvalidRange:    "ErrInvalidRange",
	ErrIndexOutOfRange: "ErrIndexOutOfRange",
	ErrUninitialized:   "ErrUninitialized",
}

// String returns the ErrorCode as a human-readable name.
func (e ErrorCode) String() string {
	if s := errorCodeStrings[e]; s != "" {
		return s
	}
	return fmt.Sprintf("Unknown ErrorCode (%d)", int(e))
}

// Error identifies a violated precondition.  It is the value passed to panic
// by the operations documented to panic, so callers that recover can use a
// type assertion or errors.As and inspect the ErrorCode field to ascertain the
// specific reason.
type Error struct {
	ErrorCode   ErrorCode // Describes the kind of error
	Description string    // Human readable description of the issue
}

// Error satisfies the error interface and prints human-readable errors.
func (e Error) Error() string {
	return e.Description
}

// makeError creates an Error given a set of arguments.
func makeError(c ErrorCode, desc string) Error {
	return Error{ErrorCode: c, Description: desc}
}

// fail logs and panics with an Error built from the passed arguments.
func fail(c ErrorCode, format string, args ...interface{}) {
	err := makeError(c, fmt.Sprintf(format, args...))
	log.Debugf("%v: %v", c, err)
	panic(err)
}
