package main

import (
	_ "embed" // this is required in order for go:embed to work
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/mynotes/simple-test-runner/framework"
	"github.com/mynotes/simple-test-runner/framework/data"
	"github.com/mynotes/simple-test-runner/framework/quicktest"
	"github.com/mynotes/simple-test-runner/samples"
)

//go:embed VERSION
var versionString string

func main() {
	var params commandParams
	if !params.Read(os.Args) {
		os.Exit(1)
	}

	if err := run(params); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(params commandParams) error {
	debugLogger := framework.NullLogger()
	if params.debugAll {
		debugLogger = log.New(os.Stdout, "", log.LstdFlags)
	}
	debugLogger.Printf("simple-test-runner v%s", strings.TrimSpace(versionString))

	suite, err := samples.CalculatorTests()
	if err != nil {
		return err
	}
	if params.dataFile != "" {
		manifest, err := data.LoadInlineDataFile(params.dataFile)
		if err != nil {
			return err
		}
		if err := data.ApplyTo(manifest, suite); err != nil {
			return fmt.Errorf("cannot use %q: %w", params.dataFile, err)
		}
	}

	return quicktest.Run(suite, quicktest.RunConfiguration{
		TestLogger: quicktest.ConsoleTestLogger{
			NoColor:              params.noColor,
			DebugOutputOnFailure: params.debug || params.debugAll,
			DebugOutputOnSuccess: params.debugAll,
		},
		DebugLogger: debugLogger,
	})
}
