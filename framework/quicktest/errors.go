package quicktest

import (
	"fmt"
	"regexp"
	"strings"
)

// AssertionFailure is the outcome of a test that reported failure through its *T, typically via
// an assertion library. It is an expected kind of failure, so no stack trace is kept.
type AssertionFailure struct {
	Message string
}

func (f AssertionFailure) Error() string { return f.Message }

// UnexpectedError is the outcome of a test that panicked with anything other than a failure
// reported through its *T, including Go runtime errors. Trace is the stack of the panicking
// goroutine at the time the panic was recovered.
type UnexpectedError struct {
	Message string
	Trace   string
}

func (e UnexpectedError) Error() string { return e.Message }

var errorTraceInMessageRegex = regexp.MustCompile(`^(?s:\s*Error Trace:.*?\sError:\s*)`)

// cleanAssertionMessage strips the location preamble and the test name that testify/assert and
// testify/require add to their messages, leaving the description of the failure and any
// user-supplied message, one item per line.
func cleanAssertionMessage(message string) string {
	if !strings.Contains(message, "Error Trace:") {
		return message
	}
	message = errorTraceInMessageRegex.ReplaceAllLiteralString(message, "")
	var lines []string
	for _, line := range strings.Split(message, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "Test:") {
			continue
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func panicMessage(r interface{}) string {
	switch value := r.(type) {
	case error:
		return value.Error()
	case string:
		return value
	default:
		return fmt.Sprintf("%+v", value)
	}
}
