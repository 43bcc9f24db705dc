package flowtests

import (
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const (
	didNetwork = "xanadu"
	didKeyType = "ed25519"
)

// didCreateVariant is one candidate request shape for the DID creation
// endpoint. The accepted shape varies by deployment and plugin version, so
// the step tries each variant in declared order until one is accepted.
type didCreateVariant struct {
	name   string
	params ldvalue.Value
}

var didCreateVariants = []didCreateVariant{
	{
		name: "options only",
		params: ldvalue.ObjectBuild().
			Set("options", didOptions(false)).
			Build(),
	},
	{
		name: "options with uuid ID algorithm",
		params: ldvalue.ObjectBuild().
			Set("options", didOptions(true)).
			Build(),
	},
	{
		name: "options with empty features",
		params: ldvalue.ObjectBuild().
			Set("options", didOptions(false)).
			Set("features", ldvalue.ObjectBuild().Build()).
			Build(),
	},
}

func didOptions(withIDAlgo bool) ldvalue.Value {
	b := ldvalue.ObjectBuild().
		Set("network", ldvalue.String(didNetwork)).
		Set("key_type", ldvalue.String(didKeyType))
	if withIDAlgo {
		b.Set("method_specific_id_algo", ldvalue.String("uuid"))
	}
	return b.Build()
}

// DoCreateDIDStep creates a cheqd DID through the proxy's registrar
// integration. Each request-shape variant is attempted in order; the first
// one that yields an identifier wins and the rest are skipped. A variant's
// failure is recorded as a warning so each rejection stays visible, but the
// step only fails once every variant has been exhausted.
func DoCreateDIDStep(t *T) {
	t.RequireSession(t.session.Token, "tenant token")

	for _, variant := range didCreateVariants {
		t.Debug("Trying DID creation request shape %q", variant.name)
		did, err := t.client.CreateDID(t.session.Token, variant.params)
		if err != nil {
			t.Warnf("DID creation request shape %q was not accepted: %s", variant.name, err)
			continue
		}
		t.session.CreatedDID = did
		t.Debug("cheqd DID created: %s", did)
		return
	}
	t.Errorf("all %d DID creation request shapes failed", len(didCreateVariants))
}
