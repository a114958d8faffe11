package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinek810/zabbix-hostctl/internal/spec"
	"github.com/cinek810/zabbix-hostctl/internal/zabbix"
)

// baselineAPI returns a fake whose live state exactly matches baselineSpec.
func baselineAPI() *fakeAPI {
	return &fakeAPI{
		host: zabbix.Host{HostID: "10105", Host: "web-01", Status: 0, ProxyHostID: "0"},
		groups: map[string]string{
			"Linux servers": "2",
			"Databases":     "5",
		},
		liveGroups: []zabbix.HostGroup{{GroupID: "2", Name: "Linux servers"}},
		templates: map[string]string{
			"Template OS Linux":  "10001",
			"Template App MySQL": "10002",
		},
		liveTemplateIDs: []string{"10001"},
		proxies:         map[string]string{"proxy-dc1": "10084"},
		liveInterfaces: []zabbix.HostInterface{
			{InterfaceID: "119", Type: zabbix.Agent, Main: 1, UseIP: 1, IP: "192.0.2.10", DNS: "", Port: "10050"},
		},
	}
}

func baselineSpec() spec.HostSpec {
	s := spec.HostSpec{
		Host:      "web-01",
		Groups:    []string{"Linux servers"},
		Templates: []string{"Template OS Linux"},
		Interfaces: []spec.InterfaceSpec{
			{Type: "agent", IP: "192.0.2.10", Port: "10050", UseIP: true, Main: true},
		},
	}
	s.ApplyDefaults()
	return s
}

func reconcileWith(t *testing.T, api *fakeAPI, s spec.HostSpec, opts ...Option) Result {
	t.Helper()
	result, err := New(api, opts...).Reconcile(context.Background(), s)
	require.NoError(t, err)
	return result
}

func TestAbsentHostAbsentStateIsNoOp(t *testing.T) {
	api := baselineAPI()
	api.host = zabbix.Host{}

	s := baselineSpec()
	s.State = spec.StateAbsent

	result := reconcileWith(t, api, s)
	assert.False(t, result.Changed)
	assert.Equal(t, ActionUnchanged, result.Action)
	assert.Zero(t, api.writeCount())
}

func TestPresentHostAbsentStateDeletes(t *testing.T) {
	api := baselineAPI()
	s := baselineSpec()
	s.State = spec.StateAbsent

	result := reconcileWith(t, api, s)
	assert.True(t, result.Changed)
	assert.Equal(t, ActionDeleted, result.Action)
	require.Len(t, api.deleted, 1)
	assert.Equal(t, "10105", api.deleted[0])
}

func TestCreateRequiresInterface(t *testing.T) {
	api := baselineAPI()
	api.host = zabbix.Host{}

	s := baselineSpec()
	s.Interfaces = nil

	_, err := New(api).Reconcile(context.Background(), s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "at least one interface")
	assert.Zero(t, api.writeCount())
}

func TestCreateLinksTemplatesAndProxy(t *testing.T) {
	api := baselineAPI()
	api.host = zabbix.Host{}

	s := baselineSpec()
	s.Proxy = "proxy-dc1"

	result := reconcileWith(t, api, s)
	assert.True(t, result.Changed)
	assert.Equal(t, ActionCreated, result.Action)

	require.Len(t, api.created, 1)
	created := api.created[0]
	assert.Equal(t, "web-01", created.Host)
	assert.Equal(t, "10084", created.ProxyHostID)
	require.Len(t, created.Interfaces, 1)
	assert.Equal(t, zabbix.Agent, created.Interfaces[0].Type)

	require.Len(t, api.linked, 1)
	assert.Equal(t, "10500", api.linked[0].hostID)
	assert.Equal(t, []string{"10001"}, api.linked[0].templateIDs)
	assert.Empty(t, api.linked[0].clearIDs)
}

func TestMatchingLiveStateIsUnchanged(t *testing.T) {
	api := baselineAPI()
	result := reconcileWith(t, api, baselineSpec())
	assert.False(t, result.Changed)
	assert.Equal(t, ActionUnchanged, result.Action)
	assert.Zero(t, api.writeCount())

	// Idempotence: a second run with no external change stays unchanged.
	again := reconcileWith(t, api, baselineSpec())
	assert.False(t, again.Changed)
	assert.Zero(t, api.writeCount())
}

func TestMergeModeOnlyAdds(t *testing.T) {
	api := baselineAPI()
	api.liveGroups = append(api.liveGroups, zabbix.HostGroup{GroupID: "9", Name: "Staging"})

	s := baselineSpec()
	s.Groups = []string{"Linux servers", "Databases"}
	merge := false
	s.Replace = &merge

	result := reconcileWith(t, api, s)
	assert.True(t, result.Changed)
	require.Len(t, api.updated, 1)
	// The update carries the union: desired plus the live-only group.
	assert.ElementsMatch(t, []string{"2", "5", "9"}, groupIDsOf(api.updated[0]))
	for _, detail := range result.Details {
		assert.NotContains(t, detail, "remove")
	}
}

func TestMergeModeUnchangedWhenDesiredIsSubset(t *testing.T) {
	api := baselineAPI()
	api.liveGroups = append(api.liveGroups, zabbix.HostGroup{GroupID: "9", Name: "Staging"})
	api.liveTemplateIDs = []string{"10001", "10002"}

	s := baselineSpec()
	merge := false
	s.Replace = &merge

	result := reconcileWith(t, api, s)
	assert.False(t, result.Changed)
	assert.Zero(t, api.writeCount())
}

func TestReplaceModeRemovesExtras(t *testing.T) {
	api := baselineAPI()
	api.liveGroups = append(api.liveGroups, zabbix.HostGroup{GroupID: "9", Name: "Staging"})
	api.liveTemplateIDs = []string{"10001", "10099"}

	result := reconcileWith(t, api, baselineSpec())
	assert.True(t, result.Changed)

	require.Len(t, api.updated, 1)
	assert.ElementsMatch(t, []string{"2"}, groupIDsOf(api.updated[0]))

	require.Len(t, api.linked, 1)
	assert.Equal(t, []string{"10001"}, api.linked[0].templateIDs)
	assert.Equal(t, []string{"10099"}, api.linked[0].clearIDs)
}

func TestInterfacesMatchedByType(t *testing.T) {
	api := baselineAPI()
	api.liveInterfaces = append(api.liveInterfaces,
		zabbix.HostInterface{InterfaceID: "120", Type: zabbix.SNMP, Main: 1, UseIP: 1, IP: "192.0.2.10", Port: "161"})

	s := baselineSpec()
	s.Interfaces = []spec.InterfaceSpec{
		{Type: "agent", IP: "192.0.2.10", Port: "10051", UseIP: true, Main: true},
		{Type: "jmx", IP: "192.0.2.10", Port: "12345", UseIP: true, Main: true},
	}
	s.ApplyDefaults()

	result := reconcileWith(t, api, s)
	assert.True(t, result.Changed)

	// The agent interface is updated in place, keeping its identity.
	require.Len(t, api.ifaceUpdated, 1)
	assert.Equal(t, "119", api.ifaceUpdated[0].InterfaceID)
	assert.Equal(t, "10051", api.ifaceUpdated[0].Port)

	// The unmatched desired type is created on the live host.
	require.Len(t, api.ifaceCreated, 1)
	assert.Equal(t, zabbix.JMX, api.ifaceCreated[0].Type)
	assert.Equal(t, "10105", api.ifaceCreated[0].HostID)

	// The leftover live type is removed in replace mode.
	assert.Equal(t, []string{"120"}, api.ifaceDeleted)
}

func TestMergeModeKeepsLeftoverInterfaces(t *testing.T) {
	api := baselineAPI()
	api.liveInterfaces = append(api.liveInterfaces,
		zabbix.HostInterface{InterfaceID: "120", Type: zabbix.SNMP, Main: 1, UseIP: 1, IP: "192.0.2.10", Port: "161"})

	s := baselineSpec()
	merge := false
	s.Replace = &merge

	result := reconcileWith(t, api, s)
	assert.False(t, result.Changed)
	assert.Empty(t, api.ifaceDeleted)
}

func TestEmptyInterfaceListLeavesLiveInterfacesAlone(t *testing.T) {
	api := baselineAPI()
	s := baselineSpec()
	s.Interfaces = nil

	result := reconcileWith(t, api, s)
	assert.False(t, result.Changed)
	assert.Empty(t, api.ifaceDeleted)
}

func TestCheckModeIssuesNoWrites(t *testing.T) {
	api := baselineAPI()
	s := baselineSpec()
	s.Status = spec.StatusDisabled

	result := reconcileWith(t, api, s, WithCheckMode(true))
	assert.True(t, result.Changed)
	assert.True(t, result.Check)
	assert.Equal(t, ActionUpdated, result.Action)
	assert.Zero(t, api.writeCount())
}

func TestCheckModeReportsUnchangedAccurately(t *testing.T) {
	api := baselineAPI()
	result := reconcileWith(t, api, baselineSpec(), WithCheckMode(true))
	assert.False(t, result.Changed)
	assert.Zero(t, api.writeCount())
}

func TestStatusAndProxyDrift(t *testing.T) {
	api := baselineAPI()
	s := baselineSpec()
	s.Status = spec.StatusDisabled
	s.Proxy = "proxy-dc1"

	result := reconcileWith(t, api, s)
	assert.True(t, result.Changed)
	require.Len(t, api.updated, 1)
	assert.Equal(t, 1, api.updated[0].Status)
	assert.Equal(t, "10084", api.updated[0].ProxyHostID)
	assert.Contains(t, result.Details, "status: enabled -> disabled")
	assert.Contains(t, result.Details, "proxy_hostid: 0 -> 10084")
}

func TestMissingGroupIsFatal(t *testing.T) {
	api := baselineAPI()
	s := baselineSpec()
	s.Groups = []string{"No Such Group"}

	_, err := New(api).Reconcile(context.Background(), s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, zabbix.ErrNotFound))
	assert.Zero(t, api.writeCount())
}

func TestMissingProxyIsFatal(t *testing.T) {
	api := baselineAPI()
	s := baselineSpec()
	s.Proxy = "no-such-proxy"

	_, err := New(api).Reconcile(context.Background(), s)
	require.Error(t, err)
	assert.True(t, errors.Is(err, zabbix.ErrNotFound))
}

func groupIDsOf(params zabbix.UpdateHostParams) []string {
	ids := make([]string, 0, len(params.Groups))
	for _, ref := range params.Groups {
		ids = append(ids, ref.GroupID)
	}
	return ids
}
