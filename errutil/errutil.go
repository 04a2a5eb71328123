// Package errutil carries the teacher repo's debug-mode assertion idiom
// (see Thesis/zfasttrie/errutil.go) forward for the tree engine.
package errutil

import "fmt"

const debug = false

// Bug panics with a formatted message when debug assertions are enabled.
// It is a no-op in release builds, matching the teacher's own convention
// of gating invariant checks behind a compile-time constant rather than
// paying for them on every operation.
func Bug(format string, args ...any) {
	if debug {
		panic(fmt.Sprintf(format, args...))
	}
}

// BugOn calls Bug when cond holds.
func BugOn(cond bool, format string, args ...any) {
	if debug && cond {
		Bug(format, args...)
	}
}

// BugOnNotEq reports a Bug when a and b differ.
func BugOnNotEq(a, b any) {
	if a == b {
		return
	}
	Bug("BUG: a != b, %v != %v", a, b)
}

// FatalIf panics immediately if err is non-nil, regardless of debug mode.
// Used for conditions that indicate corrupted internal state rather than a
// violated development-time assumption.
func FatalIf(err error) {
	if err == nil {
		return
	}
	panic(fmt.Sprintf("FATAL: %v", err))
}
