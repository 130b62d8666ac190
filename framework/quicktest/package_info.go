// Package quicktest is a small test runner for executing one suite of tests as regular
// application code, for instance inside a custom host process, rather than under `go test`.
//
// A suite is registered explicitly: a constructor for the suite instance and a table of test
// methods. Simple tests ("facts") take no arguments; parameterized tests ("theories") are
// invoked once per inline argument set. The runner constructs one instance, invokes every
// method on it in registration order and writes a line for each attempt and outcome.
package quicktest
