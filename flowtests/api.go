package flowtests

import (
	"github.com/bcgov/traction-flow-tests/client"
	"github.com/bcgov/traction-flow-tests/framework"
)

// T represents one step of the onboarding flow in progress.
//
// It implements the same basic functionality as Go's testing.T, but outside
// of the Go test runner, so assertions from the assert and require packages
// can be used in step code by passing the *T as if it were a *testing.T.
//
// Every T carries the shared Session being built up by the flow and a client
// whose request/response logging is bound to this step's debug output.
type T struct {
	context *framework.Context
	client  *client.TenantProxyClient
	session *Session
}

func newStepScope(context *framework.Context, apiClient *client.TenantProxyClient, session *Session) *T {
	return &T{
		context: context,
		client:  apiClient.WithLogger(context.DebugLogger()),
		session: session,
	}
}

func (t *T) Errorf(format string, args ...interface{}) {
	t.context.Errorf(format, args...)
}

func (t *T) FailNow() {
	t.context.FailNow()
}

// Warnf records an advisory finding that does not fail the step.
func (t *T) Warnf(format string, args ...interface{}) {
	t.context.Warnf(format, args...)
}

func (t *T) Debug(message string, args ...interface{}) {
	t.context.Debug(message, args...)
}

// RequireSession fails the step immediately if a session value that an
// earlier step should have stored is missing. Steps call this before
// sending any request, so a broken step dependency never produces a
// malformed request on the wire.
func (t *T) RequireSession(value, description string) {
	if value == "" {
		t.Errorf("no %s in session; an earlier step did not run or did not complete", description)
		t.FailNow()
	}
}
