package quicktest

import (
	"errors"
	"fmt"

	"github.com/mynotes/simple-test-runner/framework"
	o "github.com/mynotes/simple-test-runner/framework/opt"
)

// RunConfiguration contains options for a test run.
type RunConfiguration struct {
	// TestLogger receives the suite header and each test attempt and outcome. If nil, a
	// ConsoleTestLogger writing to standard output is used.
	TestLogger TestLogger

	// DebugLogger receives diagnostic messages from the runner itself. If nil, they are discarded.
	DebugLogger framework.Logger
}

type invocation[S any] struct {
	method string
	args   o.Maybe[ArgumentSet]
	call   func(S, *T)
}

// Run executes every test method of the suite against a single instance of it.
//
// Individual test failures are reported to the TestLogger and never stop the run; Run returns
// nil once every method has been attempted. A non-nil error means the suite could not run at
// all: it has registration errors, its constructor failed, or some inline data does not fit
// its method. In those cases no test is attempted. A panic in the constructor is not recovered.
//
// Methods run in registration order. The instance is shared by all of them and never reset,
// so a test can observe state left behind by an earlier one.
func Run[S any](suite *Suite[S], config RunConfiguration) error {
	if suite == nil {
		return errors.New("no suite was specified")
	}
	if config.TestLogger == nil {
		config.TestLogger = ConsoleTestLogger{}
	}
	if config.DebugLogger == nil {
		config.DebugLogger = framework.NullLogger()
	}
	debugLogger := framework.LoggerWithPrefix(config.DebugLogger, "[quicktest] ")

	config.TestLogger.SuiteStarted(suite.Name())

	if err := suite.Err(); err != nil {
		return fmt.Errorf("suite %q is not valid: %w", suite.Name(), err)
	}

	debugLogger.Printf("constructing instance of %s", suite.Name())
	instance, err := suite.newInstance()
	if err != nil {
		return fmt.Errorf("cannot construct suite %q: %w", suite.Name(), err)
	}

	invocations, err := suite.bindAll(debugLogger)
	if err != nil {
		return fmt.Errorf("suite %q is not valid: %w", suite.Name(), err)
	}

	for _, inv := range invocations {
		config.TestLogger.TestStarted(inv.method, inv.args)
		t := &T{name: inv.method}
		call := inv.call
		outcome := t.run(func(t *T) { call(instance, t) })
		config.TestLogger.TestFinished(inv.method, outcome, t.debugLogger.Output())
	}
	return nil
}

// bindAll checks every argument set of every method against the method's parameters before
// anything runs, so that a malformed suite fails as a whole instead of part way through.
func (s *Suite[S]) bindAll(debugLogger framework.Logger) ([]invocation[S], error) {
	var ret []invocation[S]
	for _, m := range s.methods {
		if !m.IsTest() {
			continue
		}
		if !m.IsParameterized() {
			call, err := m.bind(nil)
			if err != nil {
				return nil, fmt.Errorf("method %q has no inline data: %w", m.Name, err)
			}
			debugLogger.Printf("%s: %s with no arguments", m.Name, m.Kind)
			ret = append(ret, invocation[S]{method: m.Name, args: o.None[ArgumentSet](), call: call})
			continue
		}
		debugLogger.Printf("%s: %s with %d argument set(s)", m.Name, m.Kind, len(m.Data))
		for i, args := range m.Data {
			call, err := m.bind(args)
			if err != nil {
				return nil, fmt.Errorf("method %q, inline data #%d (%s): %w", m.Name, i+1, args, err)
			}
			ret = append(ret, invocation[S]{method: m.Name, args: o.Some(args), call: call})
		}
	}
	return ret, nil
}
