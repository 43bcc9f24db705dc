// Package flowtests implements the Traction tenant onboarding flow as an
// ordered sequence of steps: reserve a tenant, check in for a bearer token,
// validate configuration, create a cheqd DID, assign it as the public DID,
// and confirm the tenant is ready to issue.
package flowtests

import (
	"github.com/bcgov/traction-flow-tests/client"
	"github.com/bcgov/traction-flow-tests/framework"
)

const (
	stepCreateReservation    = "create reservation"
	stepTenantCheckIn        = "tenant check-in"
	stepValidateConfig       = "validate configuration"
	stepCreateDID            = "create cheqd DID"
	stepAssignPublicDID      = "assign public DID"
	stepValidateIssuerStatus = "validate issuer status"
)

var flowSteps = []struct {
	name string
	run  func(*T)
}{
	{stepCreateReservation, DoCreateReservationStep},
	{stepTenantCheckIn, DoCheckInStep},
	{stepValidateConfig, DoValidateConfigStep},
	{stepCreateDID, DoCreateDIDStep},
	{stepAssignPublicDID, DoAssignPublicDIDStep},
	{stepValidateIssuerStatus, DoValidateIssuerStep},
}

// AllSteps lists the step names in the order they run, for use in the
// end-of-run summary.
var AllSteps = stepNames()

func stepNames() []string {
	names := make([]string, 0, len(flowSteps))
	for _, step := range flowSteps {
		names = append(names, step.name)
	}
	return names
}

// RunFlow executes the onboarding steps in order against the given client,
// stopping at the first failure. Steps after a failed one are never
// attempted and do not appear in the results.
func RunFlow(apiClient *client.TenantProxyClient, stepLogger framework.StepLogger) framework.Results {
	return framework.RunFlow(stepLogger, func(c *framework.Context) {
		session := &Session{}
		for _, step := range flowSteps {
			run := step.run
			ok := c.Run(step.name, func(c1 *framework.Context) {
				run(newStepScope(c1, apiClient, session))
			})
			if !ok {
				break
			}
		}
	})
}
