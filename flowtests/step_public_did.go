package flowtests

import (
	"github.com/stretchr/testify/require"
)

// DoAssignPublicDIDStep sets the created DID as the tenant's public DID and
// then reads the public DID back. The readback guards against the service
// silently assigning something other than what was submitted; a mismatch
// fails the step even though the assignment call itself returned 200.
func DoAssignPublicDIDStep(t *T) {
	t.RequireSession(t.session.Token, "tenant token")
	t.RequireSession(t.session.CreatedDID, "created DID")

	err := t.client.AssignPublicDID(t.session.Token, t.session.CreatedDID)
	require.NoError(t, err)
	t.Debug("Public DID assignment accepted for %s", t.session.CreatedDID)

	observed, err := t.client.PublicDID(t.session.Token)
	require.NoError(t, err)
	if observed != t.session.CreatedDID {
		t.Errorf("public DID mismatch after assignment: submitted %q but service reports %q",
			t.session.CreatedDID, observed)
		return
	}
	t.Debug("Public DID assignment verified")
}

// DoValidateIssuerStep confirms the tenant ends the flow with a public DID
// assigned, which is what makes it ready to issue credentials.
func DoValidateIssuerStep(t *T) {
	t.RequireSession(t.session.Token, "tenant token")

	did, err := t.client.PublicDID(t.session.Token)
	require.NoError(t, err)
	if did == "" {
		t.Errorf("tenant has no public DID; not ready to issue")
		return
	}
	t.Debug("Tenant has public DID %s; ready for issuance", did)
}
