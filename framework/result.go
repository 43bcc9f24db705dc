package framework

// StepID identifies a step in the flow by its display name.
type StepID string

func (s StepID) String() string { return string(s) }

// StepResult is the recorded outcome of a single executed step.
type StepResult struct {
	StepID   StepID
	Errors   []error
	Warnings []string
}

func (r StepResult) Failed() bool { return len(r.Errors) > 0 }

// Results accumulates the outcomes of every step that was executed, in
// execution order. Steps that were never reached do not appear in Steps;
// because the flow stops at the first failure, a run that did not execute
// every step always has at least one entry in Failures.
type Results struct {
	Steps    []StepResult
	Failures []StepResult
}

func (r Results) OK() bool {
	return len(r.Failures) == 0
}
