//go:build assert_enabled

package main

// Assert crashes if condition is false. It only exists in builds with the
// assert_enabled tag, other builds compile it to nothing.
func Assert(condition bool) {
	if !condition {
		panic("assert failed")
	}
}
