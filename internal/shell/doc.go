// Package shell interprets command lines against a virtual filesystem.
//
// The Interpreter is stateless: Execute takes a State (the current
// directory) and a raw line and returns the next State with a Result.
// Failures are values on the Result, never panics, and leave the state
// unchanged.
//
// A Session wraps an Interpreter with the mutable parts of an interactive
// shell (current state, history, prompt identity). Interactive input, the
// line-mode fallback and script replay all go through Session.Submit, so
// they share exactly the same semantics.
package shell
