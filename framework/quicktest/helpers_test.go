package quicktest

import (
	"bytes"
	"strings"

	"github.com/mynotes/simple-test-runner/framework"
	o "github.com/mynotes/simple-test-runner/framework/opt"
)

type recordedStart struct {
	method string
	args   o.Maybe[ArgumentSet]
}

type recordedFinish struct {
	method      string
	outcome     Outcome
	debugOutput framework.CapturedOutput
}

type recordingTestLogger struct {
	suites   []string
	started  []recordedStart
	finished []recordedFinish
}

func (r *recordingTestLogger) SuiteStarted(suiteName string) {
	r.suites = append(r.suites, suiteName)
}

func (r *recordingTestLogger) TestStarted(method string, args o.Maybe[ArgumentSet]) {
	r.started = append(r.started, recordedStart{method, args})
}

func (r *recordingTestLogger) TestFinished(method string, outcome Outcome, debugOutput framework.CapturedOutput) {
	r.finished = append(r.finished, recordedFinish{method, outcome, debugOutput})
}

type counterSuite struct {
	counter int
	seen    []string
}

func runToConsole[S any](suite *Suite[S]) (string, error) {
	var buf bytes.Buffer
	err := Run(suite, RunConfiguration{TestLogger: ConsoleTestLogger{Out: &buf, NoColor: true}})
	return buf.String(), err
}

func outputLines(output string) []string {
	return strings.Split(strings.TrimSuffix(output, "\n"), "\n")
}
