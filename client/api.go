package client

import (
	"fmt"
	"net/url"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// ReservationRequest contains the parameters for a self-service tenant
// reservation.
type ReservationRequest struct {
	TenantName   string `json:"tenant_name"`
	ContactEmail string `json:"contact_email"`
}

// Reservation is the identifier and one-time password issued for a new
// reservation, copied verbatim from the proxy's response.
type Reservation struct {
	ID       string
	Password string
}

type checkInRequest struct {
	ReservationPassword string `json:"reservation_pwd"`
}

// CreateReservation requests a new self-service tenant reservation. A 200
// response that does not contain both the reservation ID and the one-time
// password is an error.
func (c *TenantProxyClient) CreateReservation(req ReservationRequest) (Reservation, error) {
	resp, err := c.do("POST", "/multitenancy/reservations", nil, req, "")
	if err != nil {
		return Reservation{}, err
	}
	if resp.StatusCode != 200 {
		return Reservation{}, c.statusError("POST", "/multitenancy/reservations", resp)
	}
	body := ldvalue.Parse(resp.Body)
	reservation := Reservation{
		ID:       body.GetByKey("reservation_id").StringValue(),
		Password: body.GetByKey("reservation_pwd").StringValue(),
	}
	if reservation.ID == "" || reservation.Password == "" {
		return Reservation{}, fmt.Errorf(
			"reservation response did not include reservation_id and reservation_pwd: %s", string(resp.Body))
	}
	return reservation, nil
}

// CheckIn exchanges a reservation's one-time password for a tenant bearer
// token. A 200 response without a token is an error, distinct from a
// non-200 status.
func (c *TenantProxyClient) CheckIn(reservationID, password string) (string, error) {
	path := fmt.Sprintf("/multitenancy/reservations/%s/check-in", url.PathEscape(reservationID))
	resp, err := c.do("POST", path, nil, checkInRequest{ReservationPassword: password}, "")
	if err != nil {
		return "", err
	}
	if resp.StatusCode != 200 {
		return "", c.statusError("POST", path, resp)
	}
	token := ldvalue.Parse(resp.Body).GetByKey("token").StringValue()
	if token == "" {
		return "", fmt.Errorf("check-in response did not include a token: %s", string(resp.Body))
	}
	return token, nil
}

// TenantConfig fetches the tenant's own configuration.
func (c *TenantProxyClient) TenantConfig(token string) (ldvalue.Value, error) {
	return c.getJSON("/tenant/config", token)
}

// ServerConfig fetches the server-wide configuration, which includes plugin
// settings and the wallet type.
func (c *TenantProxyClient) ServerConfig(token string) (ldvalue.Value, error) {
	return c.getJSON("/status/config", token)
}

func (c *TenantProxyClient) getJSON(path, token string) (ldvalue.Value, error) {
	resp, err := c.do("GET", path, nil, nil, token)
	if err != nil {
		return ldvalue.Null(), err
	}
	if resp.StatusCode != 200 {
		return ldvalue.Null(), c.statusError("GET", path, resp)
	}
	return ldvalue.Parse(resp.Body), nil
}

// CreateDID asks the cheqd registrar integration to create a DID, using
// whatever request shape the caller provides. On a 200 response it returns
// the created identifier; a 200 response with no extractable identifier is
// an error.
func (c *TenantProxyClient) CreateDID(token string, params ldvalue.Value) (string, error) {
	resp, err := c.do("POST", "/did/cheqd/create", nil, params, token)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != 200 {
		return "", c.statusError("POST", "/did/cheqd/create", resp)
	}
	did := didFromBody(ldvalue.Parse(resp.Body))
	if did == "" {
		return "", fmt.Errorf("DID creation returned HTTP 200 but no DID was found in the response: %s", string(resp.Body))
	}
	return did, nil
}

// AssignPublicDID sets the given DID as the tenant's public DID.
func (c *TenantProxyClient) AssignPublicDID(token, did string) error {
	query := url.Values{"did": []string{did}}
	resp, err := c.do("POST", "/wallet/did/public", query, struct{}{}, token)
	if err != nil {
		return err
	}
	if resp.StatusCode != 200 {
		return c.statusError("POST", "/wallet/did/public", resp)
	}
	return nil
}

// PublicDID fetches the tenant's current public DID. It returns an empty
// string, with no error, if the tenant has none assigned.
func (c *TenantProxyClient) PublicDID(token string) (string, error) {
	resp, err := c.do("GET", "/wallet/did/public", nil, nil, token)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != 200 {
		return "", c.statusError("GET", "/wallet/did/public", resp)
	}
	return didFromBody(ldvalue.Parse(resp.Body)), nil
}

// didFromBody extracts a DID from a response body, checking the top-level
// "did" property first and "result.did" second. The proxy is not consistent
// about which shape it uses, so both are accepted and neither is treated as
// canonical.
func didFromBody(body ldvalue.Value) string {
	if did := body.GetByKey("did").StringValue(); did != "" {
		return did
	}
	return body.GetByKey("result").GetByKey("did").StringValue()
}
