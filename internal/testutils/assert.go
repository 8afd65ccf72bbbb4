package testutils

import (
	"runtime/debug"
	"testing"
)

// ErrorPrefix is prepended to panic messages originating from this package.
const ErrorPrefix = "mont381 / testutils: "

// Assert(condition) panics if condition is false; Assert(condition, error) panics if condition is false with panic(error).
//
// Note that the check is always performed. We use this in test setup code and in guards for test-only package-level variables.
func Assert(condition bool, err ...any) {
	if len(err) > 1 {
		panic(ErrorPrefix + "Assert can only handle 1 extra error argument")
	}
	if !condition {
		if len(err) == 0 {
			panic(ErrorPrefix + "This is not supposed to be possible")
		} else {
			panic(err[0])
		}
	}
}

// FatalUnless fails the test with the given message unless condition holds.
// The stack is printed, since many of our tests call it from within shared helper loops.
func FatalUnless(t testing.TB, condition bool, formatstring string, args ...any) {
	t.Helper()
	if !condition {
		debug.PrintStack()
		t.Fatalf(formatstring, args...)
	}
}
