package flowtests

import (
	"github.com/stretchr/testify/require"
)

// DoCheckInStep exchanges the stored reservation password for the tenant's
// bearer token, which every later step uses for authentication.
func DoCheckInStep(t *T) {
	t.RequireSession(t.session.ReservationID, "reservation ID")
	t.RequireSession(t.session.ReservationPassword, "reservation password")

	token, err := t.client.CheckIn(t.session.ReservationID, t.session.ReservationPassword)
	require.NoError(t, err)

	t.session.Token = token
	t.Debug("Check-in successful, token length %d", len(token))
}
