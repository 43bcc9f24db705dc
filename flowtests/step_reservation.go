package flowtests

import (
	"fmt"
	"time"

	"github.com/bcgov/traction-flow-tests/client"

	"github.com/stretchr/testify/require"
)

const contactEmail = "test@example.com"

// DoCreateReservationStep requests a self-service reservation for a new
// tenant. The tenant name is derived from the current time so that each run
// creates a distinct tenant.
func DoCreateReservationStep(t *T) {
	tenantName := fmt.Sprintf("test-tenant-%d", time.Now().Unix())
	t.Debug("Requesting reservation for tenant %q", tenantName)

	reservation, err := t.client.CreateReservation(client.ReservationRequest{
		TenantName:   tenantName,
		ContactEmail: contactEmail,
	})
	require.NoError(t, err)

	t.session.ReservationID = reservation.ID
	t.session.ReservationPassword = reservation.Password
	t.Debug("Reservation created: %s", reservation.ID)
}
