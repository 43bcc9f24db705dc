package flowtests

import (
	"github.com/stretchr/testify/require"
	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// requiredWalletType is what the cheqd integration expects the server's
// wallet to be configured as.
const requiredWalletType = "askar-anoncreds"

// DoValidateConfigStep fetches the tenant configuration, which must succeed,
// and then the server configuration, which is advisory: the server config is
// diagnostic information about the deployment's cheqd settings, so problems
// retrieving or interpreting it are reported as warnings and do not fail
// the step.
func DoValidateConfigStep(t *T) {
	t.RequireSession(t.session.Token, "tenant token")

	_, err := t.client.TenantConfig(t.session.Token)
	require.NoError(t, err)
	t.Debug("Tenant configuration retrieved")

	serverConfig, err := t.client.ServerConfig(t.session.Token)
	if err != nil {
		t.Warnf("could not retrieve server configuration, continuing without it: %s", err)
		return
	}
	t.Debug("Server configuration retrieved")

	cheqdConfig := serverConfig.GetByKey("config").GetByKey("plugin_config").GetByKey("cheqd")
	if cheqdConfig.IsNull() {
		t.Warnf("server configuration has no cheqd plugin settings")
	} else {
		t.Debug("cheqd network: %s", settingOrNotSet(cheqdConfig.GetByKey("network")))
		t.Debug("cheqd registrar URL: %s", settingOrNotSet(cheqdConfig.GetByKey("registrar_url")))
		t.Debug("cheqd resolver URL: %s", settingOrNotSet(cheqdConfig.GetByKey("resolver_url")))
	}

	walletType := serverConfig.GetByKey("config").GetByKey("wallet").GetByKey("type").StringValue()
	if walletType != requiredWalletType {
		t.Warnf("wallet type is %q; cheqd DID creation expects %q", walletType, requiredWalletType)
	}
}

func settingOrNotSet(value ldvalue.Value) string {
	if s := value.StringValue(); s != "" {
		return s
	}
	return "not set"
}
