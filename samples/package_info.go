// Package samples contains a small suite, CalculatorSuite, that shows how a suite is registered
// with the quicktest runner and how inline data can come from an embedded data file. The host
// program in the repository root runs it.
package samples
