// Package data reads inline argument data for parameterized tests from JSON or YAML, so that
// argument sets can be declared in a file instead of in the code that registers a suite.
//
// A manifest looks like this:
//
//	suite: CalculatorSuite   # optional; if present, must match the suite name
//	methods:
//	  AddsNumbers:
//	    - [1, 2, 3]
//	    - [-1, 1, 0]
//
// Each list under a method name is one argument set. Values may be numbers, strings, booleans
// or null; numbers without a fractional part become int, all others float64.
package data
