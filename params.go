package main

import (
	"flag"
	"fmt"
	"os"
)

type commandParams struct {
	dataFile string
	debug    bool
	debugAll bool
	noColor  bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ContinueOnError)
	fs.StringVar(&c.dataFile, "data", "", "JSON or YAML file with additional inline data for the suite")
	fs.BoolVar(&c.debug, "debug", false, "show debug output of failed tests")
	fs.BoolVar(&c.debugAll, "debug-all", false, "show debug output of all tests, and runner diagnostics")
	fs.BoolVar(&c.noColor, "no-color", false, "do not colour pass and fail lines")

	if err := fs.Parse(args[1:]); err != nil {
		return false
	}
	if fs.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "unexpected arguments: %v\n", fs.Args())
		fs.Usage()
		return false
	}
	return true
}
