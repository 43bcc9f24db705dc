package framework

import (
	"errors"
	"fmt"
	"runtime/debug"

	"github.com/bcgov/traction-flow-tests/logging"
)

type environment struct {
	results    Results
	stepLogger StepLogger
}

// Context represents a step in progress. It is used similarly to *testing.T:
// it implements require.TestingT so standard assertions from assert/require
// can be used inside step code, and it accumulates errors and warnings that
// become the step's recorded result.
type Context struct {
	env         *environment
	id          StepID
	debugLogger logging.CapturingLogger
	failed      bool
	errors      []error
	warnings    []string
}

// RunFlow executes an action that runs any number of named steps via
// Context.Run, and returns the accumulated results.
func RunFlow(stepLogger StepLogger, action func(*Context)) Results {
	if stepLogger == nil {
		stepLogger = nullStepLogger{}
	}
	env := &environment{stepLogger: stepLogger}
	c := &Context{env: env}
	c.run(action, false)
	return env.results
}

func (c *Context) run(action func(*Context), record bool) {
	defer func() {
		if r := recover(); r != nil {
			c.failed = true
			var addError error
			if _, ok := r.(*Context); ok {
				if len(c.errors) == 0 {
					addError = errors.New("step failed with no error message")
				}
			} else {
				addError = fmt.Errorf("unexpected panic in step: %+v\n%s", r, string(debug.Stack()))
			}
			if addError != nil {
				c.errors = append(c.errors, addError)
				c.env.stepLogger.StepError(c.id, addError)
			}
		}
		if !record {
			return
		}
		result := StepResult{StepID: c.id, Errors: c.errors, Warnings: c.warnings}
		c.env.results.Steps = append(c.env.results.Steps, result)
		if c.failed {
			c.env.results.Failures = append(c.env.results.Failures, result)
		}
	}()

	action(c)
}

func (c *Context) ID() StepID {
	return c.id
}

// Run executes a named step and records its result. It returns false if the
// step failed, so the caller can stop the flow at the first failure.
func (c *Context) Run(name string, action func(*Context)) bool {
	id := StepID(name)
	c.env.stepLogger.StepStarted(id)
	c1 := &Context{
		id:  id,
		env: c.env,
	}
	c1.run(action, true)
	c.env.stepLogger.StepFinished(id, c1.failed, c1.debugLogger.Output())
	return !c1.failed
}

func (c *Context) Errorf(format string, args ...interface{}) {
	c.failed = true
	err := fmt.Errorf(format, args...)
	c.errors = append(c.errors, err)
	c.env.stepLogger.StepError(c.id, err)
}

func (c *Context) FailNow() {
	panic(c)
}

// Warnf records an advisory finding. Warnings are reported and kept in the
// step's result but never cause the step to fail; required checks use
// Errorf instead.
func (c *Context) Warnf(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	c.warnings = append(c.warnings, message)
	c.env.stepLogger.StepWarning(c.id, message)
}

func (c *Context) Debug(message string, args ...interface{}) {
	c.debugLogger.Printf(message, args...)
}

func (c *Context) DebugLogger() logging.Logger {
	return &c.debugLogger
}
