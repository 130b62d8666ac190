// Package framework contains the shared types used by the test runner: the Logger abstraction
// and the capturing logger that records debug output for a single test invocation. The runner
// itself is in the subpackage quicktest; declarative argument data is in data.
//
// The general model is:
//
// 1. A host program registers one suite: a constructor for the suite instance plus a table of
// test methods, each bound to a function at registration time.
//
// 2. The runner constructs the instance once and invokes every method on it, once per inline
// argument set or once with no arguments.
//
// 3. Each invocation runs in a test scope similar to Go's testing.T, so that assertion helpers
// such as testify's can report failures into it.
package framework
