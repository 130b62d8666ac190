package quicktest

import (
	"errors"
	"fmt"
	"runtime/debug"
	"strings"

	"github.com/mynotes/simple-test-runner/framework"
)

// T is the scope of a single test invocation. It is similar to Go's testing.T, and implements
// the interfaces that testify/assert, testify/require and go-test-helpers/matchers expect, so
// those libraries can be used inside suite methods.
//
// A new T is created for every invocation, including each argument set of a parameterized test.
type T struct {
	name        string
	debugLogger framework.CapturingLogger
	failed      bool
	errors      []error
}

// Outcome is the result of one invocation. Failure is nil if the test passed; otherwise it is
// an AssertionFailure or an UnexpectedError.
type Outcome struct {
	Failure error
}

// Passed returns true if the invocation did not fail.
func (o Outcome) Passed() bool {
	return o.Failure == nil
}

func (t *T) run(action func(*T)) (outcome Outcome) {
	defer func() {
		if r := recover(); r != nil {
			if _, ok := r.(*T); !ok {
				outcome = Outcome{Failure: UnexpectedError{
					Message: panicMessage(r),
					Trace:   string(debug.Stack()),
				}}
				return
			}
		}
		if t.failed {
			outcome = Outcome{Failure: t.assertionFailure()}
		}
	}()

	action(t)
	return Outcome{}
}

func (t *T) assertionFailure() AssertionFailure {
	if len(t.errors) == 0 {
		return AssertionFailure{Message: "test failed with no failure message"}
	}
	messages := make([]string, 0, len(t.errors))
	for _, err := range t.errors {
		messages = append(messages, err.Error())
	}
	return AssertionFailure{Message: strings.Join(messages, "\n")}
}

// Name returns the name of the test method being invoked.
func (t *T) Name() string {
	return t.name
}

// Errorf reports a test failure. It is equivalent to Go's testing.T.Errorf: the test keeps
// running, but its outcome will be a failure with this message.
//
// You will rarely use this method directly; it is what assertion helpers call.
func (t *T) Errorf(format string, args ...interface{}) {
	t.failed = true
	t.errors = append(t.errors, errors.New(cleanAssertionMessage(fmt.Sprintf(format, args...))))
}

// Fail marks the test as failed without a message, and keeps running it.
func (t *T) Fail() {
	t.failed = true
}

// FailNow marks the test as failed and stops it immediately. The runner goes on to the next
// invocation.
func (t *T) FailNow() {
	t.failed = true
	panic(t)
}

// Failed returns true if a failure has been reported so far.
func (t *T) Failed() bool {
	return t.failed
}

// Helper exists so that testify recognizes T as a helper-aware test context. It does nothing,
// since assertion failures are reported without a stack trace.
func (t *T) Helper() {}

// Debug writes a message to the captured output for this invocation.
func (t *T) Debug(message string, args ...interface{}) {
	t.debugLogger.Printf(message, args...)
}

// DebugLogger returns a Logger that writes to the captured output for this invocation. The
// output is passed to TestLogger.TestFinished; the console logger shows it only if asked to.
func (t *T) DebugLogger() framework.Logger {
	return &t.debugLogger
}
