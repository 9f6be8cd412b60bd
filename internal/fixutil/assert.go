package fixutil

// Assert reports a broken precondition. It compiles to nothing unless the
// package is built with the fixdebug tag, in which case a false cond panics
// with msg.
func Assert(cond bool, msg string) {
	if debugAsserts && !cond {
		panic("fixpoint: assertion failed: " + msg)
	}
}
