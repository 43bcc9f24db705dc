package framework

import "github.com/bcgov/traction-flow-tests/logging"

type StepLogger interface {
	StepStarted(id StepID)
	StepError(id StepID, err error)
	StepWarning(id StepID, message string)
	StepFinished(id StepID, failed bool, debugOutput logging.CapturedOutput)
}

type nullStepLogger struct{}

func (n nullStepLogger) StepStarted(StepID)                                {}
func (n nullStepLogger) StepError(StepID, error)                           {}
func (n nullStepLogger) StepWarning(StepID, string)                        {}
func (n nullStepLogger) StepFinished(StepID, bool, logging.CapturedOutput) {}

func NullStepLogger() StepLogger { return nullStepLogger{} }
