package flowtests

import (
	"encoding/json"
	"io/ioutil"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/bcgov/traction-flow-tests/client"
	"github.com/bcgov/traction-flow-tests/framework"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTenantProxy implements just enough of the tenant proxy API to drive
// the whole flow, with knobs for the failure modes the flow must handle.
type fakeTenantProxy struct {
	reservationPwd    string
	token             string
	checkInStatus     int
	didFailures       int      // create-DID calls to reject with 500 before accepting one
	didResponseNested bool     // return the DID at result.did instead of top level
	did               string
	didRequests       []string // raw bodies of every create-DID call
	assignedDID       string
	reportedDID       string   // overrides assignedDID in public DID readbacks when set
	lock              sync.Mutex
}

func newFakeTenantProxy() *fakeTenantProxy {
	return &fakeTenantProxy{
		reservationPwd: "pwd-123",
		token:          "token-abc",
		checkInStatus:  200,
		did:            "did:cheqd:testnet:1234",
	}
}

func (f *fakeTenantProxy) handler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		f.lock.Lock()
		defer f.lock.Unlock()

		switch {
		case r.Method == "POST" && r.URL.Path == "/multitenancy/reservations":
			writeJSON(w, map[string]interface{}{
				"reservation_id":  "res-1",
				"reservation_pwd": f.reservationPwd,
			})

		case r.Method == "POST" && strings.HasSuffix(r.URL.Path, "/check-in"):
			if f.checkInStatus != 200 {
				w.WriteHeader(f.checkInStatus)
				return
			}
			writeJSON(w, map[string]interface{}{"token": f.token})

		case r.Method == "GET" && r.URL.Path == "/tenant/config":
			writeJSON(w, map[string]interface{}{"tenant_id": "tenant-1"})

		case r.Method == "GET" && r.URL.Path == "/status/config":
			writeJSON(w, map[string]interface{}{
				"config": map[string]interface{}{
					"plugin_config": map[string]interface{}{
						"cheqd": map[string]interface{}{
							"network":       "xanadu",
							"registrar_url": "http://registrar.local",
							"resolver_url":  "http://resolver.local",
						},
					},
					"wallet": map[string]interface{}{"type": "askar-anoncreds"},
				},
			})

		case r.Method == "POST" && r.URL.Path == "/did/cheqd/create":
			body, _ := ioutil.ReadAll(r.Body)
			f.didRequests = append(f.didRequests, string(body))
			if len(f.didRequests) <= f.didFailures {
				w.WriteHeader(500)
				return
			}
			if f.didResponseNested {
				writeJSON(w, map[string]interface{}{
					"result": map[string]interface{}{"did": f.did},
				})
			} else {
				writeJSON(w, map[string]interface{}{"did": f.did})
			}

		case r.Method == "POST" && r.URL.Path == "/wallet/did/public":
			f.assignedDID = r.URL.Query().Get("did")
			writeJSON(w, map[string]interface{}{})

		case r.Method == "GET" && r.URL.Path == "/wallet/did/public":
			did := f.assignedDID
			if f.reportedDID != "" {
				did = f.reportedDID
			}
			if did == "" {
				writeJSON(w, map[string]interface{}{"result": nil})
				return
			}
			writeJSON(w, map[string]interface{}{
				"result": map[string]interface{}{"did": did},
			})

		default:
			w.WriteHeader(404)
		}
	})
}

func writeJSON(w http.ResponseWriter, content interface{}) {
	w.Header().Set("Content-Type", "application/json")
	data, _ := json.Marshal(content)
	_, _ = w.Write(data)
}

func runFlowAgainst(f *fakeTenantProxy) framework.Results {
	server := httptest.NewServer(f.handler())
	defer server.Close()
	return RunFlow(client.NewTenantProxyClient(server.URL), nil)
}

func stepIDs(results framework.Results) []string {
	var ids []string
	for _, s := range results.Steps {
		ids = append(ids, string(s.StepID))
	}
	return ids
}

func TestFlowPassesEndToEnd(t *testing.T) {
	fake := newFakeTenantProxy()
	results := runFlowAgainst(fake)

	assert.True(t, results.OK())
	assert.Equal(t, AllSteps, stepIDs(results))
	assert.Equal(t, fake.did, fake.assignedDID)
	assert.Len(t, fake.didRequests, 1, "first DID request shape should have been accepted")
}

func TestFlowPassesWithNestedDIDResponseShape(t *testing.T) {
	fake := newFakeTenantProxy()
	fake.didResponseNested = true
	results := runFlowAgainst(fake)

	assert.True(t, results.OK())
	assert.Equal(t, fake.did, fake.assignedDID)
}

func TestFlowStopsWhenCheckInFails(t *testing.T) {
	fake := newFakeTenantProxy()
	fake.checkInStatus = 401
	results := runFlowAgainst(fake)

	assert.False(t, results.OK())
	require.Equal(t, []string{stepCreateReservation, stepTenantCheckIn}, stepIDs(results))
	assert.True(t, results.Steps[1].Failed())

	// No step after check-in ever reached the service.
	assert.Empty(t, fake.didRequests)
	assert.Equal(t, "", fake.assignedDID)
}

func TestDIDCreationFallsBackThroughRequestShapes(t *testing.T) {
	fake := newFakeTenantProxy()
	fake.didFailures = 2
	results := runFlowAgainst(fake)

	assert.True(t, results.OK())
	require.Len(t, fake.didRequests, 3)
	assert.JSONEq(t,
		`{"options":{"network":"xanadu","key_type":"ed25519"}}`,
		fake.didRequests[0])
	assert.JSONEq(t,
		`{"options":{"network":"xanadu","key_type":"ed25519","method_specific_id_algo":"uuid"}}`,
		fake.didRequests[1])
	assert.JSONEq(t,
		`{"options":{"network":"xanadu","key_type":"ed25519"},"features":{}}`,
		fake.didRequests[2])

	// The two rejected shapes are visible as warnings on the step result.
	var didStep framework.StepResult
	for _, s := range results.Steps {
		if s.StepID == framework.StepID(stepCreateDID) {
			didStep = s
		}
	}
	assert.Len(t, didStep.Warnings, 2)
	assert.Equal(t, fake.did, fake.assignedDID, "later steps should use the DID from the successful shape")
}

func TestDIDCreationFailsAfterAllShapesRejected(t *testing.T) {
	fake := newFakeTenantProxy()
	fake.didFailures = len(didCreateVariants)
	results := runFlowAgainst(fake)

	assert.False(t, results.OK())
	require.Len(t, fake.didRequests, len(didCreateVariants))
	require.Len(t, results.Failures, 1)
	failure := results.Failures[0]
	assert.Equal(t, framework.StepID(stepCreateDID), failure.StepID)
	assert.Len(t, failure.Warnings, len(didCreateVariants))
	assert.Equal(t, "", fake.assignedDID, "assignment should never have been attempted")
}

func TestFlowFailsOnPublicDIDReadbackMismatch(t *testing.T) {
	fake := newFakeTenantProxy()
	fake.reportedDID = "did:cheqd:testnet:other"
	results := runFlowAgainst(fake)

	assert.False(t, results.OK())
	require.Len(t, results.Failures, 1)
	failure := results.Failures[0]
	assert.Equal(t, framework.StepID(stepAssignPublicDID), failure.StepID)
	require.Len(t, failure.Errors, 1)
	assert.Contains(t, failure.Errors[0].Error(), "mismatch")
	assert.Contains(t, failure.Errors[0].Error(), fake.did)
	assert.Contains(t, failure.Errors[0].Error(), fake.reportedDID)

	// The mismatch is the last step executed; issuer validation never runs.
	assert.Equal(t, stepAssignPublicDID, stepIDs(results)[len(results.Steps)-1])
	assert.Len(t, results.Steps, 5)
}
