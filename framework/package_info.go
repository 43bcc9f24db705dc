// Package framework contains the generic machinery for running an ordered
// flow of named steps against a remote service.
//
// The general model is:
//
// 1. A flow is a fixed sequence of named steps, each of which interacts with
// the remote service and records a pass/fail outcome. The flow stops at the
// first failing step.
//
// 2. Each step runs with a Context that works like Go's *testing.T: it
// collects errors and advisory warnings, supports assertions from
// assert/require, and captures debug output (such as request and response
// dumps) that can be replayed after the step finishes.
//
// 3. The accumulated Results drive both the end-of-run summary and the
// process exit code.
//
// The domain-specific code that knows what is being exercised is responsible
// for the step implementations, the HTTP client used to reach the service,
// and the ordered list of step names.
package framework
