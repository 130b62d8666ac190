package quicktest

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/mynotes/simple-test-runner/framework"
	o "github.com/mynotes/simple-test-runner/framework/opt"
)

var consoleTestPassedColor = color.New(color.FgGreen) //nolint:gochecknoglobals
var consoleTestFailedColor = color.New(color.FgRed)   //nolint:gochecknoglobals
var consoleDebugOutputColor = color.New(color.Faint)  //nolint:gochecknoglobals

// TestLogger receives the progress of a test run as it happens. Calls are made sequentially from
// the goroutine that called Run.
type TestLogger interface {
	// SuiteStarted is called once, before the suite instance is constructed.
	SuiteStarted(suiteName string)

	// TestStarted is called before each invocation. args is undefined for a test that takes no
	// inline data, and defined (possibly empty) for each argument set of a parameterized test.
	TestStarted(method string, args o.Maybe[ArgumentSet])

	// TestFinished is called after each invocation with its outcome and captured debug output.
	TestFinished(method string, outcome Outcome, debugOutput framework.CapturedOutput)
}

type nullTestLogger struct{}

func (n nullTestLogger) SuiteStarted(string)                                    {}
func (n nullTestLogger) TestStarted(string, o.Maybe[ArgumentSet])               {}
func (n nullTestLogger) TestFinished(string, Outcome, framework.CapturedOutput) {}

// NullTestLogger returns a TestLogger that discards everything.
func NullTestLogger() TestLogger { return nullTestLogger{} }

// ConsoleTestLogger writes a line-oriented, human-readable trace of the run.
type ConsoleTestLogger struct {
	// Out is where the trace is written. If nil, standard output is used.
	Out io.Writer

	// NoColor turns off colouring of pass and fail lines. Colouring is only ever used when Out
	// is nil or color.Output, and then only if standard output is a terminal.
	NoColor bool

	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c ConsoleTestLogger) SuiteStarted(suiteName string) {
	c.printf(nil, "Running tests in %s...\n", suiteName)
}

func (c ConsoleTestLogger) TestStarted(method string, args o.Maybe[ArgumentSet]) {
	if args.IsDefined() {
		c.printf(nil, "Running %s with arguments: %s...\n", method, args.Value())
	} else {
		c.printf(nil, "Running %s...\n", method)
	}
}

func (c ConsoleTestLogger) TestFinished(method string, outcome Outcome, debugOutput framework.CapturedOutput) {
	switch failure := outcome.Failure.(type) {
	case nil:
		c.printf(consoleTestPassedColor, "✔ %s passed.\n", method)
	case UnexpectedError:
		c.printf(consoleTestFailedColor, "✘ %s failed: %s\n", method, failure.Message)
		c.writeRaw(failure.Trace)
	default:
		c.printf(consoleTestFailedColor, "✘ %s failed: %s\n", method, failure.Error())
	}
	failed := !outcome.Passed()
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		c.printf(consoleDebugOutputColor, "%s\n", debugOutput.ToString("    DEBUG "))
	}
}

func (c ConsoleTestLogger) out() io.Writer {
	if c.Out == nil {
		return color.Output
	}
	return c.Out
}

func (c ConsoleTestLogger) printf(textColor *color.Color, format string, args ...interface{}) {
	if textColor == nil || c.NoColor || (c.Out != nil && c.Out != color.Output) {
		_, _ = fmt.Fprintf(c.out(), format, args...)
		return
	}
	_, _ = textColor.Fprintf(c.out(), format, args...)
}

// writeRaw writes text as is, adding a final newline if it lacks one so that the next line of
// the trace starts on a line of its own.
func (c ConsoleTestLogger) writeRaw(text string) {
	if text == "" {
		return
	}
	if !strings.HasSuffix(text, "\n") {
		text += "\n"
	}
	_, _ = io.WriteString(c.out(), text)
}
