package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/alessio/shellescape"
)

type commandParams struct {
	baseURL string
	debug   bool
}

func (c *commandParams) Read(args []string) bool {
	fs := flag.NewFlagSet("", flag.ExitOnError)
	fs.StringVar(&c.baseURL, "url", defaultBaseURL, "base URL of the Traction tenant proxy")
	fs.BoolVar(&c.debug, "debug", false, "log full request and response details for every step")

	if err := fs.Parse(args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		fs.Usage()
		return false
	}
	c.baseURL = strings.TrimRight(c.baseURL, "/")
	return true
}

// RetryCommand builds a copy-pasteable command line that reruns the flow
// with the same parameters.
func (c commandParams) RetryCommand(executable string) string {
	var b commandBuilder
	b.add(executable)
	if c.baseURL != defaultBaseURL {
		b.add("-url", c.baseURL)
	}
	if c.debug {
		b.add("-debug")
	}
	return b.String()
}

type commandBuilder []string

func (b *commandBuilder) add(args ...string) {
	for _, a := range args {
		*b = append(*b, shellescape.Quote(a))
	}
}

func (b commandBuilder) String() string {
	return strings.Join(b, " ")
}
