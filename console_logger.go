package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/bcgov/traction-flow-tests/framework"
	"github.com/bcgov/traction-flow-tests/logging"
)

// ConsoleStepLogger prints step progress to standard output as the flow
// runs. Captured request/response output for a step is dumped after the
// step finishes, depending on the debug settings.
type ConsoleStepLogger struct {
	DebugOutputOnFailure bool
	DebugOutputOnSuccess bool
}

func (c *ConsoleStepLogger) StepStarted(id framework.StepID) {
	fmt.Printf("=== %s\n", id)
}

func (c *ConsoleStepLogger) StepError(id framework.StepID, err error) {
	for _, line := range strings.Split(err.Error(), "\n") {
		fmt.Printf("  ERROR: %s\n", line)
	}
}

func (c *ConsoleStepLogger) StepWarning(id framework.StepID, message string) {
	fmt.Printf("  WARNING: %s\n", message)
}

func (c *ConsoleStepLogger) StepFinished(id framework.StepID, failed bool, debugOutput logging.CapturedOutput) {
	if failed {
		fmt.Printf("  FAILED: %s\n", id)
	}
	if len(debugOutput) > 0 &&
		((failed && c.DebugOutputOnFailure) || (!failed && c.DebugOutputOnSuccess)) {
		debugOutput.Dump(os.Stdout, "    DEBUG ")
	}
}
