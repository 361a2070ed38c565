package ui

import "fmt"

// assertf enforces a programming-error invariant (stack balance, positional
// id misuse). It panics only when dbg is true — typically Context.Debug —
// so the default, release-style path degrades to a logged warning instead
// of undefined behavior, per spec.md §7.
func assertf(dbg bool, cond bool, format string, args ...any) {
	if cond {
		return
	}
	msg := fmt.Sprintf(format, args...)
	if dbg {
		panic("ui: assertion failed: " + msg)
	}
	log.Warn("ui: assertion failed", "detail", msg)
}
